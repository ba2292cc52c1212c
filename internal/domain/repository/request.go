package repository

import (
	"context"

	"github.com/Amarhadpad/artistgrade/internal/domain/model"
)

// RequestRepository stores custom product requests.
type RequestRepository interface {
	Create(ctx context.Context, request *model.CustomRequest) error
	List(ctx context.Context) ([]model.CustomRequest, error)
}
