package usecase

import (
	"context"
	"errors"
	"fmt"

	domainErrors "github.com/Amarhadpad/artistgrade/internal/domain/errors"
	"github.com/Amarhadpad/artistgrade/internal/domain/model"
	"github.com/Amarhadpad/artistgrade/internal/domain/repository"
)

// maxOrderIDAttempts bounds the retry loop when an assigned identifier
// collides with an existing row.
const maxOrderIDAttempts = 3

// OrderUseCase encapsulates the order lifecycle.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Create validates the checkout payload, assigns the next order identifier
// and persists the order with Pending status. The identifier comes from the
// repository sequence; a unique-constraint collision triggers a bounded
// re-assignment loop.
func (u *OrderUseCase) Create(ctx context.Context, order *model.Order) (string, error) {
	if err := ValidateOrder(order); err != nil {
		return "", err
	}

	order.Status = model.OrderStatusPending

	for attempt := 0; attempt < maxOrderIDAttempts; attempt++ {
		id, err := u.orders.NextOrderID(ctx)
		if err != nil {
			return "", fmt.Errorf("assign order id: %w", err)
		}
		order.OrderID = id

		err = u.orders.Create(ctx, order)
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return "", err
		}
		return id, nil
	}

	return "", fmt.Errorf("assign order id: %w", domainErrors.ErrAlreadyExists)
}

// Get returns the order by its public identifier.
func (u *OrderUseCase) Get(ctx context.Context, orderID string) (*model.Order, error) {
	return u.orders.GetByOrderID(ctx, orderID)
}

// List returns all orders sorted by creation date descending.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// Delete removes the order.
func (u *OrderUseCase) Delete(ctx context.Context, orderID string) error {
	return u.orders.Delete(ctx, orderID)
}

// UpdateStatus validates and persists a new status, returning the updated
// order. Transitions are deliberately unconstrained: any known status may
// replace any other.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, rawStatus string) (*model.Order, error) {
	status, ok := model.ParseOrderStatus(rawStatus)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrInvalidStatus, rawStatus)
	}
	return u.orders.UpdateStatus(ctx, orderID, status)
}

// Count reports the number of stored orders.
func (u *OrderUseCase) Count(ctx context.Context) (int64, error) {
	return u.orders.Count(ctx)
}
