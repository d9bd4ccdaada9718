package handlers

import (
	"context"

	"github.com/quickfuel/fuelquote/internal/domain/model"
	"github.com/quickfuel/fuelquote/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, password, passwordConfirm string) error
	Authenticate(ctx context.Context, username, password string) (token string, hasProfile bool, err error)
	ParseToken(token string) (int64, error)
}

// ProfileFacade encapsulates delivery profile operations exposed via HTTP.
type ProfileFacade interface {
	Profile(ctx context.Context, userID int64) (*model.Profile, error)
	SaveProfile(ctx context.Context, userID int64, fields usecase.ProfileFields) (*model.Profile, error)
}

// QuoteFacade provides quote related operations.
type QuoteFacade interface {
	CreateQuote(ctx context.Context, userID int64, gallons float64, deliveryDate string) (*model.Quote, error)
	QuoteHistory(ctx context.Context, userID int64) ([]model.Quote, error)
	CurrentPrice(ctx context.Context) float64
}

// FuelQuoteFacade aggregates the full set of operations used across handlers.
type FuelQuoteFacade interface {
	AuthFacade
	ProfileFacade
	QuoteFacade
}
