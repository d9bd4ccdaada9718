package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/quickfuel/fuelquote/internal/adapter/pricefeed"
	"github.com/quickfuel/fuelquote/internal/app"
	"github.com/quickfuel/fuelquote/internal/config"
	"github.com/quickfuel/fuelquote/internal/domain/repository"
	"github.com/quickfuel/fuelquote/internal/storage/postgres"
	"github.com/quickfuel/fuelquote/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:           ":0",
		DatabaseURI:          "postgres://stub",
		SessionSecret:        "secret",
		PricePerGallon:       2.50,
		PriceRefreshInterval: time.Millisecond,
		ShutdownTimeout:      time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	profileRepo := test.NewProfileRepositoryStub()
	quoteRepo := &test.QuoteRepositoryStub{}
	feedStub := &test.PriceFeedStub{Rate: 2.50}

	var facade *app.FuelQuoteFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.ProfileRepository(profileRepo)),
			fx.Replace(repository.QuoteRepository(quoteRepo)),
			fx.Replace(pricefeed.Client(feedStub)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected fuel quote facade instance")
	}
}
