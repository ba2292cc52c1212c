package repository

import (
	"context"

	"github.com/Amarhadpad/artistgrade/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
// NextOrderID draws from an atomically incremented sequence owned by the
// store, so concurrent checkouts never observe the same value.
type OrderRepository interface {
	NextOrderID(ctx context.Context) (string, error)
	Create(ctx context.Context, order *model.Order) error
	GetByOrderID(ctx context.Context, orderID string) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	Delete(ctx context.Context, orderID string) error
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error)
	Count(ctx context.Context) (int64, error)
}
