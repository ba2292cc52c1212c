package auth

import (
	"go.uber.org/fx"

	"github.com/Amarhadpad/artistgrade/internal/config"
	"github.com/Amarhadpad/artistgrade/internal/pkg/session"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newSessionManager),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type sessionParams struct {
	fx.In

	Config *config.Config
}

func newSessionManager(p sessionParams) *session.Manager {
	return session.New(p.Config.SessionSecret, 0)
}
