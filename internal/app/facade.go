package app

import (
	"context"

	"github.com/quickfuel/fuelquote/internal/domain/model"
	"github.com/quickfuel/fuelquote/internal/pricing"
	"github.com/quickfuel/fuelquote/internal/usecase"
)

type FuelQuoteFacade struct {
	auth     *usecase.AuthUseCase
	profiles *usecase.ProfileUseCase
	quotes   *usecase.QuoteUseCase
	policy   pricing.Policy
}

func NewFuelQuoteFacade(auth *usecase.AuthUseCase, profiles *usecase.ProfileUseCase, quotes *usecase.QuoteUseCase, policy pricing.Policy) *FuelQuoteFacade {
	return &FuelQuoteFacade{auth: auth, profiles: profiles, quotes: quotes, policy: policy}
}

func (f *FuelQuoteFacade) Register(ctx context.Context, username, password, passwordConfirm string) error {
	_, err := f.auth.Register(ctx, username, password, passwordConfirm)
	return err
}

func (f *FuelQuoteFacade) Authenticate(ctx context.Context, username, password string) (string, bool, error) {
	_, token, hasProfile, err := f.auth.Authenticate(ctx, username, password)
	return token, hasProfile, err
}

func (f *FuelQuoteFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *FuelQuoteFacade) Profile(ctx context.Context, userID int64) (*model.Profile, error) {
	return f.profiles.Get(ctx, userID)
}

func (f *FuelQuoteFacade) SaveProfile(ctx context.Context, userID int64, fields usecase.ProfileFields) (*model.Profile, error) {
	return f.profiles.Upsert(ctx, userID, fields)
}

func (f *FuelQuoteFacade) CreateQuote(ctx context.Context, userID int64, gallons float64, deliveryDate string) (*model.Quote, error) {
	return f.quotes.Create(ctx, userID, gallons, deliveryDate)
}

func (f *FuelQuoteFacade) QuoteHistory(ctx context.Context, userID int64) ([]model.Quote, error) {
	return f.quotes.History(ctx, userID)
}

func (f *FuelQuoteFacade) CurrentPrice(ctx context.Context) float64 {
	return f.policy.PricePerGallon(ctx)
}
