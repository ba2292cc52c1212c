package notify

import (
	"fmt"

	"github.com/Amarhadpad/artistgrade/internal/domain/model"
)

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// StatusChanged composes the customer email sent after an order status
// update.
func StatusChanged(order *model.Order) Message {
	return Message{
		To:      order.Email,
		Subject: fmt.Sprintf("Your Order %s Status Updated", order.OrderID),
		Body: fmt.Sprintf(
			"Hello %s,\n\nYour order status has been updated to: %s.\n\nThank you for shopping with us!\n\n- ArtistGrade",
			order.FullName, order.Status,
		),
	}
}

// RequestReceived composes the confirmation email for a custom product
// request.
func RequestReceived(request *model.CustomRequest) Message {
	return Message{
		To:      request.Email,
		Subject: "Custom Product Request Received",
		Body: fmt.Sprintf(
			"Hi %s,\n\nWe received your request for %q. Our team will contact you soon.\n\n- ArtistGrade",
			request.Name, request.Product,
		),
	}
}
