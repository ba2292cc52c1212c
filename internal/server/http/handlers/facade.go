package handlers

import (
	"context"

	"github.com/Amarhadpad/artistgrade/internal/domain/model"
	"github.com/Amarhadpad/artistgrade/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, params usecase.RegisterParams) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseSession(token string) (int64, error)
	User(ctx context.Context, id int64) (*model.User, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, order *model.Order) (string, error)
	Order(ctx context.Context, orderID string) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
	UpdateOrderStatus(ctx context.Context, orderID, rawStatus string) (*model.Order, error)
}

// ProductFacade encapsulates catalog operations exposed via HTTP.
type ProductFacade interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	Product(ctx context.Context, id int64) (*model.Product, error)
	Products(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id int64, update usecase.ProductUpdate) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// UserFacade provides user administration operations.
type UserFacade interface {
	User(ctx context.Context, id int64) (*model.User, error)
	Users(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id int64, update usecase.UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// RequestFacade handles custom product inquiries.
type RequestFacade interface {
	SubmitRequest(ctx context.Context, request *model.CustomRequest) error
	Requests(ctx context.Context) ([]model.CustomRequest, error)
}

// DashboardFacade aggregates admin dashboard totals.
type DashboardFacade interface {
	DashboardCounts(ctx context.Context) (*model.DashboardCounts, error)
}

// MediaFacade exposes image hosting operations.
type MediaFacade interface {
	UploadImage(ctx context.Context, filename, contentType string, data []byte) (*model.MediaAsset, error)
	Images(ctx context.Context) ([]model.MediaAsset, error)
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	OrderFacade
	ProductFacade
	UserFacade
	RequestFacade
	DashboardFacade
	MediaFacade
}
