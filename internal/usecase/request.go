package usecase

import (
	"context"

	"github.com/Amarhadpad/artistgrade/internal/domain/model"
	"github.com/Amarhadpad/artistgrade/internal/domain/repository"
)

// RequestUseCase stores custom product requests.
type RequestUseCase struct {
	requests repository.RequestRepository
}

// NewRequestUseCase constructs RequestUseCase.
func NewRequestUseCase(requests repository.RequestRepository) *RequestUseCase {
	return &RequestUseCase{requests: requests}
}

// Submit validates and stores a custom product request.
func (u *RequestUseCase) Submit(ctx context.Context, request *model.CustomRequest) error {
	if err := requireFields(map[string]string{
		"name":    request.Name,
		"email":   request.Email,
		"product": request.Product,
	}); err != nil {
		return err
	}
	return u.requests.Create(ctx, request)
}

// List returns stored requests newest first.
func (u *RequestUseCase) List(ctx context.Context) ([]model.CustomRequest, error) {
	return u.requests.List(ctx)
}
