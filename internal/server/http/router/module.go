package router

import (
	"go.uber.org/fx"

	"github.com/Amarhadpad/artistgrade/internal/app"
	"github.com/Amarhadpad/artistgrade/internal/server/http/handlers"
	"github.com/Amarhadpad/artistgrade/internal/storage/postgres"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(
		func(facade *app.StoreFacade) handlers.StoreFacade { return facade },
		func(storage *postgres.Storage) HealthChecker { return storage },
		Setup,
	),
)
