package test

import (
	"context"
	"time"

	"github.com/quickfuel/fuelquote/internal/domain/model"
	"github.com/quickfuel/fuelquote/internal/usecase"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn     func(ctx context.Context, username, password, passwordConfirm string) error
	AuthenticateFn func(ctx context.Context, username, password string) (string, bool, error)
	ParseTokenFn   func(token string) (int64, error)
}

// Register delegates to provided function or succeeds.
func (s AuthFacadeStub) Register(ctx context.Context, username, password, passwordConfirm string) error {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, password, passwordConfirm)
	}
	return nil
}

// Authenticate delegates or returns a default session with a profile present.
func (s AuthFacadeStub) Authenticate(ctx context.Context, username, password string) (string, bool, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, username, password)
	}
	return "session-token", true, nil
}

// ParseToken delegates or accepts any token as user 1.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return 1, nil
}

// ProfileFacadeStub simulates profile operations.
type ProfileFacadeStub struct {
	ProfileFn     func(context.Context, int64) (*model.Profile, error)
	SaveProfileFn func(context.Context, int64, usecase.ProfileFields) (*model.Profile, error)
}

// Profile returns configured profile or a default one.
func (s ProfileFacadeStub) Profile(ctx context.Context, userID int64) (*model.Profile, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.Profile{UserID: userID, FullName: "Test User", Address1: "1 Main St", City: "Houston", State: "TX", Zipcode: "77001"}, nil
}

// SaveProfile delegates or echoes the submitted fields.
func (s ProfileFacadeStub) SaveProfile(ctx context.Context, userID int64, fields usecase.ProfileFields) (*model.Profile, error) {
	if s.SaveProfileFn != nil {
		return s.SaveProfileFn(ctx, userID, fields)
	}
	return &model.Profile{
		UserID:   userID,
		FullName: fields.FullName,
		Address1: fields.Address1,
		Address2: fields.Address2,
		City:     fields.City,
		State:    fields.State,
		Zipcode:  fields.Zipcode,
	}, nil
}

// QuoteFacadeStub simulates quote operations.
type QuoteFacadeStub struct {
	CreateQuoteFn  func(context.Context, int64, float64, string) (*model.Quote, error)
	HistoryFn      func(context.Context, int64) ([]model.Quote, error)
	CurrentPriceFn func(context.Context) float64
}

// CreateQuote delegates or returns a quote priced at 2.50.
func (s QuoteFacadeStub) CreateQuote(ctx context.Context, userID int64, gallons float64, deliveryDate string) (*model.Quote, error) {
	if s.CreateQuoteFn != nil {
		return s.CreateQuoteFn(ctx, userID, gallons, deliveryDate)
	}
	date, _ := time.Parse(model.DateLayout, deliveryDate)
	return &model.Quote{
		UserID:           userID,
		GallonsRequested: gallons,
		DeliveryAddress:  "1 Main St",
		DeliveryDate:     date,
		PricePerGallon:   2.50,
		TotalDue:         2.50 * gallons,
	}, nil
}

// QuoteHistory returns preconfigured history.
func (s QuoteFacadeStub) QuoteHistory(ctx context.Context, userID int64) ([]model.Quote, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, userID)
	}
	return []model.Quote{{UserID: userID, GallonsRequested: 100, PricePerGallon: 2.50, TotalDue: 250, DeliveryDate: time.Unix(0, 0)}}, nil
}

// CurrentPrice returns configured rate or the default fixed rate.
func (s QuoteFacadeStub) CurrentPrice(ctx context.Context) float64 {
	if s.CurrentPriceFn != nil {
		return s.CurrentPriceFn(ctx)
	}
	return 2.50
}

// FuelQuoteFacadeStub aggregates all facade stubs for router tests.
type FuelQuoteFacadeStub struct {
	AuthFacadeStub
	ProfileFacadeStub
	QuoteFacadeStub
}

// PriceFeedStub implements the price feed client for worker tests.
type PriceFeedStub struct {
	RateFn func(context.Context) (float64, error)
	Rate   float64
	Err    error
}

// CurrentRate returns configured rate or error.
func (s *PriceFeedStub) CurrentRate(ctx context.Context) (float64, error) {
	if s.RateFn != nil {
		return s.RateFn(ctx)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Rate, nil
}
