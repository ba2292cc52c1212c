package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/Amarhadpad/artistgrade/internal/domain/errors"
	"github.com/Amarhadpad/artistgrade/internal/domain/model"
	"github.com/Amarhadpad/artistgrade/internal/domain/repository"
)

// ProductUpdate carries optional field changes for a product. Nil fields
// keep the stored value.
type ProductUpdate struct {
	Name     *string
	Category *string
	Price    *float64
	Stock    *int64
	Image    *string
}

// ProductUseCase manages the catalog.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// Create validates and stores a new product.
func (u *ProductUseCase) Create(ctx context.Context, product *model.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("%w: name", domainErrors.ErrMissingField)
	}
	if product.Price < 0 {
		return fmt.Errorf("%w: price", domainErrors.ErrInvalidAmount)
	}
	if product.Stock < 0 {
		return fmt.Errorf("%w: stock", domainErrors.ErrInvalidAmount)
	}
	return u.products.Create(ctx, product)
}

// Get fetches a product by identifier.
func (u *ProductUseCase) Get(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// List returns products newest first.
func (u *ProductUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// Update applies a partial update on top of the stored product.
func (u *ProductUseCase) Update(ctx context.Context, id int64, update ProductUpdate) (*model.Product, error) {
	product, err := u.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil && strings.TrimSpace(*update.Name) != "" {
		product.Name = *update.Name
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.Price != nil {
		if *update.Price < 0 {
			return nil, fmt.Errorf("%w: price", domainErrors.ErrInvalidAmount)
		}
		product.Price = *update.Price
	}
	if update.Stock != nil {
		if *update.Stock < 0 {
			return nil, fmt.Errorf("%w: stock", domainErrors.ErrInvalidAmount)
		}
		product.Stock = *update.Stock
	}
	if update.Image != nil {
		product.Image = *update.Image
	}

	if err := u.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product.
func (u *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return u.products.Delete(ctx, id)
}

// Count reports the number of catalog products.
func (u *ProductUseCase) Count(ctx context.Context) (int64, error) {
	return u.products.Count(ctx)
}
