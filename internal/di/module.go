package di

import (
	"go.uber.org/fx"

	"github.com/Amarhadpad/artistgrade/internal/adapter/media"
	"github.com/Amarhadpad/artistgrade/internal/app"
	"github.com/Amarhadpad/artistgrade/internal/config"
	"github.com/Amarhadpad/artistgrade/internal/logger"
	"github.com/Amarhadpad/artistgrade/internal/notify"
	"github.com/Amarhadpad/artistgrade/internal/pkg/auth"
	"github.com/Amarhadpad/artistgrade/internal/server/http/router"
	"github.com/Amarhadpad/artistgrade/internal/storage/postgres"
	"github.com/Amarhadpad/artistgrade/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		media.Module,
		notify.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
