package media

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/Amarhadpad/artistgrade/internal/config"
)

// Module exposes media client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.MediaServiceURL, p.Config.MediaFolder, p.Logger)
}
