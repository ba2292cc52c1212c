package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/Amarhadpad/artistgrade/internal/config"
	"github.com/Amarhadpad/artistgrade/internal/domain/repository"
	"github.com/Amarhadpad/artistgrade/internal/pkg/auth"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.ProductRepository { return s.Products() },
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.RequestRepository { return s.Requests() },
	),
	fx.Invoke(registerLifecycle),
	fx.Invoke(seedAdmin),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}

type seedParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Users  repository.UserRepository
	Hasher auth.PasswordHasher
}

// seedAdmin makes sure the configured admin credential exists as a regular
// user row. The credential is seed data, not a special case in login logic.
func seedAdmin(p seedParams) error {
	hash, err := p.Hasher.Hash(p.Config.AdminPassword)
	if err != nil {
		return err
	}
	return p.Users.EnsureAdmin(p.Ctx, p.Config.AdminFullName, p.Config.AdminUsername, p.Config.AdminEmail, hash)
}
