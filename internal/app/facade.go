package app

import (
	"context"

	"github.com/Amarhadpad/artistgrade/internal/adapter/media"
	"github.com/Amarhadpad/artistgrade/internal/domain/model"
	"github.com/Amarhadpad/artistgrade/internal/notify"
	"github.com/Amarhadpad/artistgrade/internal/usecase"
)

// NotificationDispatcher accepts messages for background delivery.
type NotificationDispatcher interface {
	Enqueue(msg notify.Message)
}

type StoreFacade struct {
	users     *usecase.UserUseCase
	orders    *usecase.OrderUseCase
	products  *usecase.ProductUseCase
	requests  *usecase.RequestUseCase
	dashboard *usecase.DashboardUseCase
	notifier  NotificationDispatcher
	media     media.Client
}

func NewStoreFacade(
	users *usecase.UserUseCase,
	orders *usecase.OrderUseCase,
	products *usecase.ProductUseCase,
	requests *usecase.RequestUseCase,
	dashboard *usecase.DashboardUseCase,
	notifier NotificationDispatcher,
	mediaClient media.Client,
) *StoreFacade {
	return &StoreFacade{
		users:     users,
		orders:    orders,
		products:  products,
		requests:  requests,
		dashboard: dashboard,
		notifier:  notifier,
		media:     mediaClient,
	}
}

func (f *StoreFacade) Register(ctx context.Context, params usecase.RegisterParams) (*model.User, error) {
	return f.users.Register(ctx, params)
}

func (f *StoreFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.users.Authenticate(ctx, email, password)
}

func (f *StoreFacade) ParseSession(token string) (int64, error) {
	return f.users.ParseSession(token)
}

func (f *StoreFacade) User(ctx context.Context, id int64) (*model.User, error) {
	return f.users.GetByID(ctx, id)
}

func (f *StoreFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.users.List(ctx)
}

func (f *StoreFacade) UpdateUser(ctx context.Context, id int64, update usecase.UserUpdate) (*model.User, error) {
	return f.users.Update(ctx, id, update)
}

func (f *StoreFacade) DeleteUser(ctx context.Context, id int64) error {
	return f.users.Delete(ctx, id)
}

func (f *StoreFacade) CreateOrder(ctx context.Context, order *model.Order) (string, error) {
	return f.orders.Create(ctx, order)
}

func (f *StoreFacade) Order(ctx context.Context, orderID string) (*model.Order, error) {
	return f.orders.Get(ctx, orderID)
}

func (f *StoreFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *StoreFacade) DeleteOrder(ctx context.Context, orderID string) error {
	return f.orders.Delete(ctx, orderID)
}

// UpdateOrderStatus persists the new status and schedules a customer email.
// Delivery happens in the background and never affects the returned result.
func (f *StoreFacade) UpdateOrderStatus(ctx context.Context, orderID, rawStatus string) (*model.Order, error) {
	updated, err := f.orders.UpdateStatus(ctx, orderID, rawStatus)
	if err != nil {
		return nil, err
	}
	f.notifier.Enqueue(notify.StatusChanged(updated))
	return updated, nil
}

func (f *StoreFacade) CreateProduct(ctx context.Context, product *model.Product) error {
	return f.products.Create(ctx, product)
}

func (f *StoreFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.products.Get(ctx, id)
}

func (f *StoreFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.products.List(ctx)
}

func (f *StoreFacade) UpdateProduct(ctx context.Context, id int64, update usecase.ProductUpdate) (*model.Product, error) {
	return f.products.Update(ctx, id, update)
}

func (f *StoreFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.products.Delete(ctx, id)
}

// SubmitRequest stores a custom product request and schedules the
// confirmation email.
func (f *StoreFacade) SubmitRequest(ctx context.Context, request *model.CustomRequest) error {
	if err := f.requests.Submit(ctx, request); err != nil {
		return err
	}
	f.notifier.Enqueue(notify.RequestReceived(request))
	return nil
}

func (f *StoreFacade) Requests(ctx context.Context) ([]model.CustomRequest, error) {
	return f.requests.List(ctx)
}

func (f *StoreFacade) DashboardCounts(ctx context.Context) (*model.DashboardCounts, error) {
	return f.dashboard.Counts(ctx)
}

func (f *StoreFacade) UploadImage(ctx context.Context, filename, contentType string, data []byte) (*model.MediaAsset, error) {
	return f.media.Upload(ctx, filename, contentType, data)
}

func (f *StoreFacade) Images(ctx context.Context) ([]model.MediaAsset, error) {
	return f.media.List(ctx)
}
