package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/Amarhadpad/artistgrade/internal/domain/errors"
	"github.com/Amarhadpad/artistgrade/internal/domain/model"
	"github.com/Amarhadpad/artistgrade/internal/domain/repository"
	pkgAuth "github.com/Amarhadpad/artistgrade/internal/pkg/auth"
	"github.com/Amarhadpad/artistgrade/internal/pkg/session"
)

// RegisterParams is the registration payload.
type RegisterParams struct {
	FullName        string
	Username        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	Gender          string
}

// UserUpdate carries optional field changes for a user.
type UserUpdate struct {
	FullName *string
	Username *string
	Email    *string
	Phone    *string
	Gender   *string
}

// UserUseCase handles user lifecycle and session management.
type UserUseCase struct {
	users    repository.UserRepository
	hasher   pkgAuth.PasswordHasher
	sessions *session.Manager
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, sessions *session.Manager) *UserUseCase {
	return &UserUseCase{users: users, hasher: hasher, sessions: sessions}
}

// Register creates a new user account.
func (u *UserUseCase) Register(ctx context.Context, params RegisterParams) (*model.User, error) {
	if err := requireFields(map[string]string{
		"fullName":        params.FullName,
		"username":        params.Username,
		"email":           params.Email,
		"password":        params.Password,
		"confirmPassword": params.ConfirmPassword,
	}); err != nil {
		return nil, err
	}
	if params.Password != params.ConfirmPassword {
		return nil, domainErrors.ErrPasswordMismatch
	}

	hash, err := u.hasher.Hash(params.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FullName:     strings.TrimSpace(params.FullName),
		Username:     strings.TrimSpace(params.Username),
		Email:        strings.TrimSpace(params.Email),
		Phone:        params.Phone,
		PasswordHash: hash,
		Gender:       params.Gender,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate validates credentials and returns a session token.
func (u *UserUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.sessions.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ParseSession extracts the user ID from a session token.
func (u *UserUseCase) ParseSession(token string) (int64, error) {
	if token == "" {
		return 0, session.ErrInvalidSession
	}
	return u.sessions.Parse(token)
}

// GetByID fetches a user by identifier.
func (u *UserUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// List returns users newest first.
func (u *UserUseCase) List(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

// Update applies a partial update on top of the stored user.
func (u *UserUseCase) Update(ctx context.Context, id int64, update UserUpdate) (*model.User, error) {
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.FullName != nil && strings.TrimSpace(*update.FullName) != "" {
		user.FullName = *update.FullName
	}
	if update.Username != nil && strings.TrimSpace(*update.Username) != "" {
		user.Username = *update.Username
	}
	if update.Email != nil && strings.TrimSpace(*update.Email) != "" {
		user.Email = *update.Email
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Gender != nil {
		user.Gender = *update.Gender
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user account.
func (u *UserUseCase) Delete(ctx context.Context, id int64) error {
	return u.users.Delete(ctx, id)
}

// Count reports the number of registered users.
func (u *UserUseCase) Count(ctx context.Context) (int64, error) {
	return u.users.Count(ctx)
}
