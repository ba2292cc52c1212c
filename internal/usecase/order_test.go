package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	domainErrors "github.com/Amarhadpad/artistgrade/internal/domain/errors"
	"github.com/Amarhadpad/artistgrade/internal/domain/model"
	testhelpers "github.com/Amarhadpad/artistgrade/internal/test"
	"github.com/Amarhadpad/artistgrade/internal/usecase"
)

func validOrder() *model.Order {
	return &model.Order{
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "555-0100",
		Address:       "1 Main St",
		City:          "Springfield",
		State:         "IL",
		Zip:           "62701",
		TransactionID: "txn-100",
		CartItems:     []model.CartItem{{Name: "Canvas", Price: 20, Quantity: 2}},
		TotalAmount:   40,
	}
}

func TestOrderCreateAssignsSequentialIDs(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := usecase.NewOrderUseCase(repo)

	for i, want := range []string{"ORD001", "ORD002", "ORD003"} {
		got, err := uc.Create(context.Background(), validOrder())
		if err != nil {
			t.Fatalf("create %d returned error: %v", i, err)
		}
		if got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	}
}

func TestOrderCreateSetsPendingStatus(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := usecase.NewOrderUseCase(repo)

	order := validOrder()
	order.Status = model.OrderStatusCompleted
	if _, err := uc.Create(context.Background(), order); err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending status, got %v", order.Status)
	}
}

func TestOrderCreateConcurrentAssignsDistinctIDs(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := usecase.NewOrderUseCase(repo)

	const n = 16
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := uc.Create(context.Background(), validOrder())
			if err != nil {
				t.Errorf("create %d returned error: %v", i, err)
				return
			}
			ids[i] = id
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("order id %s assigned twice", id)
		}
		seen[id] = true
	}
}

func TestOrderCreateRetriesOnCollision(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	seq := 0
	repo.NextOrderIDFn = func(context.Context) (string, error) {
		seq++
		return fmt.Sprintf("ORD%03d", seq), nil
	}
	attempts := 0
	repo.CreateFn = func(ctx context.Context, order *model.Order) error {
		attempts++
		if attempts == 1 {
			return domainErrors.ErrAlreadyExists
		}
		return nil
	}

	uc := usecase.NewOrderUseCase(repo)
	id, err := uc.Create(context.Background(), validOrder())
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if id != "ORD002" {
		t.Fatalf("expected retried id ORD002, got %s", id)
	}
}

func TestOrderCreateGivesUpAfterRepeatedCollisions(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	repo.NextOrderIDFn = func(context.Context) (string, error) { return "ORD001", nil }
	repo.CreateFn = func(context.Context, *model.Order) error { return domainErrors.ErrAlreadyExists }

	uc := usecase.NewOrderUseCase(repo)
	if _, err := uc.Create(context.Background(), validOrder()); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected collision error, got %v", err)
	}
}

func TestOrderCreateValidation(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := usecase.NewOrderUseCase(repo)

	tests := []struct {
		name   string
		mutate func(*model.Order)
		want   error
	}{
		{name: "missing full name", mutate: func(o *model.Order) { o.FullName = "" }, want: domainErrors.ErrMissingField},
		{name: "blank email", mutate: func(o *model.Order) { o.Email = "   " }, want: domainErrors.ErrMissingField},
		{name: "missing transaction", mutate: func(o *model.Order) { o.TransactionID = "" }, want: domainErrors.ErrMissingField},
		{name: "negative total", mutate: func(o *model.Order) { o.TotalAmount = -1 }, want: domainErrors.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := validOrder()
			tt.mutate(order)
			if _, err := uc.Create(context.Background(), order); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if count, _ := repo.Count(context.Background()); count != 0 {
		t.Fatalf("rejected orders must not be stored, got %d", count)
	}
}

func TestOrderCreateAcceptsZeroTotalAndEmptyCart(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := usecase.NewOrderUseCase(repo)

	order := validOrder()
	order.CartItems = nil
	order.TotalAmount = 0
	if _, err := uc.Create(context.Background(), order); err != nil {
		t.Fatalf("create returned error: %v", err)
	}
}

func TestOrderUpdateStatus(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := usecase.NewOrderUseCase(repo)

	id, err := uc.Create(context.Background(), validOrder())
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	updated, err := uc.UpdateStatus(context.Background(), id, "Canceled")
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Status != model.OrderStatusCanceled {
		t.Fatalf("unexpected status %v", updated.Status)
	}

	// any known status may replace any other
	updated, err = uc.UpdateStatus(context.Background(), id, "Pending")
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Status != model.OrderStatusPending {
		t.Fatalf("unexpected status %v", updated.Status)
	}
}

func TestOrderUpdateStatusRejectsUnknown(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := usecase.NewOrderUseCase(repo)

	id, err := uc.Create(context.Background(), validOrder())
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	if _, err := uc.UpdateStatus(context.Background(), id, "Shipped"); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status error, got %v", err)
	}

	stored, err := uc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if stored.Status != model.OrderStatusPending {
		t.Fatalf("expected status unchanged, got %v", stored.Status)
	}
}

func TestOrderUpdateStatusNotFound(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := usecase.NewOrderUseCase(repo)

	if _, err := uc.UpdateStatus(context.Background(), "ORD404", "Completed"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestOrderDeleteIdempotency(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := usecase.NewOrderUseCase(repo)

	id, err := uc.Create(context.Background(), validOrder())
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	if err := uc.Delete(context.Background(), id); err != nil {
		t.Fatalf("first delete returned error: %v", err)
	}
	if err := uc.Delete(context.Background(), id); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestOrderListAndCount(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := usecase.NewOrderUseCase(repo)

	for i := 0; i < 3; i++ {
		if _, err := uc.Create(context.Background(), validOrder()); err != nil {
			t.Fatalf("create returned error: %v", err)
		}
	}

	orders, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}

	count, err := uc.Count(context.Background())
	if err != nil || count != 3 {
		t.Fatalf("unexpected count %d err=%v", count, err)
	}
}
