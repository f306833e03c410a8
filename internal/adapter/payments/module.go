package payments

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/sellerdesk/merchanthub/internal/config"
)

// Module exposes payments client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.PaymentsAPIAddress, p.Config.PaymentsAPIKey, p.Logger)
}
