package test

import (
	"context"
	"fmt"
	"sync"

	domainErrors "github.com/Amarhadpad/artistgrade/internal/domain/errors"
	"github.com/Amarhadpad/artistgrade/internal/domain/model"
)

// OrderRepositoryStub stores orders in-memory for tests. NextOrderID draws
// from an atomic counter, so concurrent callers observe distinct values.
type OrderRepositoryStub struct {
	NextOrderIDFn  func(context.Context) (string, error)
	CreateFn       func(context.Context, *model.Order) error
	UpdateStatusFn func(context.Context, string, model.OrderStatus) (*model.Order, error)

	mu     sync.Mutex
	seq    int64
	Orders []model.Order
	Err    error
}

// Lock exposes internal mutex for external synchronization.
func (s *OrderRepositoryStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *OrderRepositoryStub) Unlock() { s.mu.Unlock() }

// NextOrderID returns the next value of the in-memory sequence.
func (s *OrderRepositoryStub) NextOrderID(ctx context.Context) (string, error) {
	if s.NextOrderIDFn != nil {
		return s.NextOrderIDFn(ctx)
	}
	if s.Err != nil {
		return "", s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return fmt.Sprintf("ORD%03d", s.seq), nil
}

// Create appends the order unless its identifier is already taken.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.Orders {
		if o.OrderID == order.OrderID {
			return domainErrors.ErrAlreadyExists
		}
	}
	order.ID = int64(len(s.Orders) + 1)
	s.Orders = append(s.Orders, *order)
	return nil
}

// GetByOrderID fetches order by public identifier or returns not found.
func (s *OrderRepositoryStub) GetByOrderID(ctx context.Context, orderID string) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.Orders {
		if o.OrderID == orderID {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns stored orders.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, len(s.Orders))
	copy(out, s.Orders)
	return out, nil
}

// Delete removes the order or reports not found.
func (s *OrderRepositoryStub) Delete(ctx context.Context, orderID string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.Orders {
		if o.OrderID == orderID {
			s.Orders = append(s.Orders[:i], s.Orders[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// UpdateStatus changes the stored status and returns the updated order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Orders {
		if s.Orders[i].OrderID == orderID {
			s.Orders[i].Status = status
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Count returns the number of stored orders.
func (s *OrderRepositoryStub) Count(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.Orders)), nil
}

// ProductRepositoryStub stores products in-memory for tests.
type ProductRepositoryStub struct {
	mu       sync.Mutex
	next     int64
	Products map[int64]*model.Product
	Err      error
}

// NewProductRepositoryStub constructs stub repository with initialized map.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[int64]*model.Product), next: 1}
}

// Create assigns an identifier and stores the product.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Products == nil {
		s.Products = make(map[int64]*model.Product)
	}
	if s.next == 0 {
		s.next = 1
	}
	product.ID = s.next
	s.next++
	stored := *product
	s.Products[product.ID] = &stored
	return nil
}

// GetByID fetches product by identifier or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if product, ok := s.Products[id]; ok {
		copied := *product
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns stored products ordered by identifier.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Product, 0, len(s.Products))
	for id := int64(1); id < s.next; id++ {
		if product, ok := s.Products[id]; ok {
			out = append(out, *product)
		}
	}
	return out, nil
}

// Update replaces the stored product or reports not found.
func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Products[product.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	stored := *product
	s.Products[product.ID] = &stored
	return nil
}

// Delete removes the product or reports not found.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Products, id)
	return nil
}

// Count returns the number of stored products.
func (s *ProductRepositoryStub) Count(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.Products)), nil
}

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	mu      sync.Mutex
	next    int64
	ByEmail map[string]*model.User
	ByID    map[int64]*model.User
	Err     error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[int64]*model.User),
		next:    1,
	}
}

// Create registers the user unless the email is already taken.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ByEmail == nil {
		s.ByEmail = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.ByEmail[user.Email]; exists {
		return domainErrors.ErrAlreadyExists
	}
	if s.next == 0 {
		s.next = 1
	}
	user.ID = s.next
	s.next++
	stored := *user
	s.ByEmail[user.Email] = &stored
	s.ByID[user.ID] = &stored
	return nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.ByEmail[email]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.ByID[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns stored users ordered by identifier.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.User, 0, len(s.ByID))
	for id := int64(1); id < s.next; id++ {
		if user, ok := s.ByID[id]; ok {
			out = append(out, *user)
		}
	}
	return out, nil
}

// Update replaces the stored user or reports not found.
func (s *UserRepositoryStub) Update(ctx context.Context, user *model.User) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.ByID[user.ID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByEmail, old.Email)
	stored := *user
	s.ByID[user.ID] = &stored
	s.ByEmail[user.Email] = &stored
	return nil
}

// Delete removes the user or reports not found.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByEmail, user.Email)
	delete(s.ByID, id)
	return nil
}

// Count returns the number of stored users.
func (s *UserRepositoryStub) Count(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.ByID)), nil
}

// EnsureAdmin seeds the admin account when it does not exist yet.
func (s *UserRepositoryStub) EnsureAdmin(ctx context.Context, fullName, username, email, passwordHash string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	_, exists := s.ByEmail[email]
	s.mu.Unlock()
	if exists {
		return nil
	}
	return s.Create(ctx, &model.User{
		FullName:     fullName,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		IsAdmin:      true,
	})
}

// RequestRepositoryStub stores custom product requests for tests.
type RequestRepositoryStub struct {
	mu       sync.Mutex
	Requests []model.CustomRequest
	Err      error
}

// Create appends the request.
func (s *RequestRepositoryStub) Create(ctx context.Context, request *model.CustomRequest) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	request.ID = int64(len(s.Requests) + 1)
	s.Requests = append(s.Requests, *request)
	return nil
}

// List returns stored requests.
func (s *RequestRepositoryStub) List(ctx context.Context) ([]model.CustomRequest, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CustomRequest, len(s.Requests))
	copy(out, s.Requests)
	return out, nil
}
