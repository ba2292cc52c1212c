package test

import (
	"context"

	domainErrors "github.com/Amarhadpad/artistgrade/internal/domain/errors"
	"github.com/Amarhadpad/artistgrade/internal/domain/model"
	"github.com/Amarhadpad/artistgrade/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, usecase.RegisterParams) (*model.User, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (int64, error)
	UserFn         func(context.Context, int64) (*model.User, error)
}

// Register returns a stored user for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, params usecase.RegisterParams) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, params)
	}
	return &model.User{ID: 1, FullName: params.FullName, Username: params.Username, Email: params.Email}, nil
}

// Authenticate returns a user and session token on success.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email}, "token", nil
}

// ParseSession returns stored identifier for authenticated user.
func (s AuthFacadeStub) ParseSession(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// User returns the configured user.
func (s AuthFacadeStub) User(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id, Email: "user@example.com"}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn       func(context.Context, *model.Order) (string, error)
	GetFn          func(context.Context, string) (*model.Order, error)
	ListFn         func(context.Context) ([]model.Order, error)
	DeleteFn       func(context.Context, string) error
	UpdateStatusFn func(context.Context, string, string) (*model.Order, error)
}

// CreateOrder delegates to provided function or assigns a fixed identifier.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, order *model.Order) (string, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	return "ORD001", nil
}

// Order returns the configured order or not found.
func (s OrderFacadeStub) Order(ctx context.Context, orderID string) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, orderID)
	}
	return &model.Order{OrderID: orderID, Status: model.OrderStatusPending}, nil
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Order{{OrderID: "ORD001"}}, nil
}

// DeleteOrder executes the configured handler.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, orderID string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, orderID)
	}
	return nil
}

// UpdateOrderStatus applies the override or echoes the change back.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, orderID, rawStatus string) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, rawStatus)
	}
	status, ok := model.ParseOrderStatus(rawStatus)
	if !ok {
		return nil, domainErrors.ErrInvalidStatus
	}
	return &model.Order{OrderID: orderID, Status: status}, nil
}

// ProductFacadeStub provides controllable behaviour for catalog endpoints.
type ProductFacadeStub struct {
	CreateFn func(context.Context, *model.Product) error
	GetFn    func(context.Context, int64) (*model.Product, error)
	ListFn   func(context.Context) ([]model.Product, error)
	UpdateFn func(context.Context, int64, usecase.ProductUpdate) (*model.Product, error)
	DeleteFn func(context.Context, int64) error
}

// CreateProduct assigns an identifier on success.
func (s ProductFacadeStub) CreateProduct(ctx context.Context, product *model.Product) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	product.ID = 1
	return nil
}

// Product returns the configured product.
func (s ProductFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "Canvas"}, nil
}

// Products returns predefined products.
func (s ProductFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "Canvas"}}, nil
}

// UpdateProduct applies the override or returns the patched product.
func (s ProductFacadeStub) UpdateProduct(ctx context.Context, id int64, update usecase.ProductUpdate) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, update)
	}
	product := &model.Product{ID: id, Name: "Canvas"}
	if update.Name != nil {
		product.Name = *update.Name
	}
	return product, nil
}

// DeleteProduct executes the configured handler.
func (s ProductFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// UserFacadeStub provides controllable behaviour for user administration.
type UserFacadeStub struct {
	UserFn   func(context.Context, int64) (*model.User, error)
	UsersFn  func(context.Context) ([]model.User, error)
	UpdateFn func(context.Context, int64, usecase.UserUpdate) (*model.User, error)
	DeleteFn func(context.Context, int64) error
}

// User returns the configured user.
func (s UserFacadeStub) User(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id, Email: "user@example.com"}, nil
}

// Users returns predefined users.
func (s UserFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{{ID: 1, Email: "user@example.com"}}, nil
}

// UpdateUser applies the override or returns the patched user.
func (s UserFacadeStub) UpdateUser(ctx context.Context, id int64, update usecase.UserUpdate) (*model.User, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, update)
	}
	user := &model.User{ID: id, Email: "user@example.com"}
	if update.FullName != nil {
		user.FullName = *update.FullName
	}
	return user, nil
}

// DeleteUser executes the configured handler.
func (s UserFacadeStub) DeleteUser(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// RequestFacadeStub simulates custom product inquiries.
type RequestFacadeStub struct {
	SubmitFn func(context.Context, *model.CustomRequest) error
	ListFn   func(context.Context) ([]model.CustomRequest, error)
}

// SubmitRequest executes the configured handler.
func (s RequestFacadeStub) SubmitRequest(ctx context.Context, request *model.CustomRequest) error {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, request)
	}
	request.ID = 1
	return nil
}

// Requests returns predefined inquiries.
func (s RequestFacadeStub) Requests(ctx context.Context) ([]model.CustomRequest, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.CustomRequest{{ID: 1, Name: "Jane", Product: "Portrait"}}, nil
}

// DashboardFacadeStub returns configured dashboard totals.
type DashboardFacadeStub struct {
	CountsFn func(context.Context) (*model.DashboardCounts, error)
}

// DashboardCounts returns preset totals.
func (s DashboardFacadeStub) DashboardCounts(ctx context.Context) (*model.DashboardCounts, error) {
	if s.CountsFn != nil {
		return s.CountsFn(ctx)
	}
	return &model.DashboardCounts{TotalProducts: 3, TotalOrders: 2, TotalUsers: 1}, nil
}

// MediaFacadeStub simulates image hosting operations.
type MediaFacadeStub struct {
	UploadFn func(context.Context, string, string, []byte) (*model.MediaAsset, error)
	ImagesFn func(context.Context) ([]model.MediaAsset, error)
}

// UploadImage returns a hosted asset for the supplied file.
func (s MediaFacadeStub) UploadImage(ctx context.Context, filename, contentType string, data []byte) (*model.MediaAsset, error) {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, filename, contentType, data)
	}
	return &model.MediaAsset{URL: "https://cdn.example.com/" + filename, PublicID: "shop/" + filename}, nil
}

// Images returns predefined assets.
func (s MediaFacadeStub) Images(ctx context.Context) ([]model.MediaAsset, error) {
	if s.ImagesFn != nil {
		return s.ImagesFn(ctx)
	}
	return []model.MediaAsset{{URL: "https://cdn.example.com/a.png", PublicID: "shop/a"}}, nil
}

// StoreFacadeStub aggregates facade dependencies for HTTP layer tests.
type StoreFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	ProductFacadeStub
	UserFacadeStub
	RequestFacadeStub
	DashboardFacadeStub
	MediaFacadeStub
}

// User disambiguates between the embedded auth and user stubs.
func (s StoreFacadeStub) User(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFacadeStub.UserFn != nil {
		return s.UserFacadeStub.User(ctx, id)
	}
	return s.AuthFacadeStub.User(ctx, id)
}
