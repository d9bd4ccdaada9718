package pricing

import (
	"go.uber.org/fx"

	"github.com/quickfuel/fuelquote/internal/config"
)

// Module provides the pricing policy to the fx graph. The cached rate doubles
// as the policy so the feed refresher can update it in place.
var Module = fx.Options(
	fx.Provide(newCachedRate),
	fx.Provide(func(c *CachedRate) Policy { return c }),
)

type rateParams struct {
	fx.In

	Config *config.Config
}

func newCachedRate(p rateParams) *CachedRate {
	return NewCachedRate(p.Config.PricePerGallon)
}
