package repository

import (
	"context"

	"github.com/Amarhadpad/artistgrade/internal/domain/model"
)

// UserRepository describes persistence operations for store users.
// EnsureAdmin seeds the configured admin account when it does not exist yet.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	EnsureAdmin(ctx context.Context, fullName, username, email, passwordHash string) error
}
