package di

import (
	"go.uber.org/fx"

	"github.com/quickfuel/fuelquote/internal/adapter/pricefeed"
	"github.com/quickfuel/fuelquote/internal/app"
	"github.com/quickfuel/fuelquote/internal/config"
	"github.com/quickfuel/fuelquote/internal/logger"
	"github.com/quickfuel/fuelquote/internal/pkg/auth"
	"github.com/quickfuel/fuelquote/internal/pricing"
	"github.com/quickfuel/fuelquote/internal/server/http/router"
	"github.com/quickfuel/fuelquote/internal/storage/postgres"
	"github.com/quickfuel/fuelquote/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		pricing.Module,
		pricefeed.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
