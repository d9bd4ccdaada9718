package pricefeed

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/quickfuel/fuelquote/internal/config"
)

// Module exposes the price feed client to the fx graph. When no feed address
// is configured the client is nil and the fixed rate stands.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if p.Config.PriceFeedAddress == "" {
		return nil, nil
	}
	return NewHTTPClient(p.Config.PriceFeedAddress, p.Logger)
}
