package usecase

import (
	"context"

	"github.com/Amarhadpad/artistgrade/internal/domain/model"
)

// DashboardUseCase aggregates record totals for the admin dashboard.
type DashboardUseCase struct {
	orders   *OrderUseCase
	products *ProductUseCase
	users    *UserUseCase
}

// NewDashboardUseCase constructs DashboardUseCase.
func NewDashboardUseCase(orders *OrderUseCase, products *ProductUseCase, users *UserUseCase) *DashboardUseCase {
	return &DashboardUseCase{orders: orders, products: products, users: users}
}

// Counts returns the totals shown on the dashboard landing page.
func (u *DashboardUseCase) Counts(ctx context.Context) (*model.DashboardCounts, error) {
	products, err := u.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := u.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	users, err := u.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &model.DashboardCounts{
		TotalProducts: products,
		TotalOrders:   orders,
		TotalUsers:    users,
	}, nil
}
