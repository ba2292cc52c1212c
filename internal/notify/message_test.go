package notify

import (
	"strings"
	"testing"

	"github.com/Amarhadpad/artistgrade/internal/domain/model"
)

func TestStatusChanged(t *testing.T) {
	order := &model.Order{
		OrderID:  "ORD007",
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Status:   model.OrderStatusCompleted,
	}

	msg := StatusChanged(order)
	if msg.To != "jane@example.com" {
		t.Fatalf("unexpected recipient %q", msg.To)
	}
	if msg.Subject != "Your Order ORD007 Status Updated" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	if !strings.Contains(msg.Body, "Jane Doe") {
		t.Fatalf("expected body to address the customer, got %q", msg.Body)
	}
	if !strings.Contains(msg.Body, "Completed") {
		t.Fatalf("expected body to carry the new status, got %q", msg.Body)
	}
}

func TestRequestReceived(t *testing.T) {
	request := &model.CustomRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Product: "Portrait",
	}

	msg := RequestReceived(request)
	if msg.To != "jane@example.com" {
		t.Fatalf("unexpected recipient %q", msg.To)
	}
	if msg.Subject != "Custom Product Request Received" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	if !strings.Contains(msg.Body, "Portrait") {
		t.Fatalf("expected body to mention the product, got %q", msg.Body)
	}
}
