package usecase

import (
	"context"
	"errors"
	"time"

	domainErrors "github.com/quickfuel/fuelquote/internal/domain/errors"
	"github.com/quickfuel/fuelquote/internal/domain/model"
	"github.com/quickfuel/fuelquote/internal/domain/repository"
	"github.com/quickfuel/fuelquote/internal/pricing"
)

// QuoteUseCase validates quote requests, prices them, and persists the result.
type QuoteUseCase struct {
	quotes   repository.QuoteRepository
	profiles repository.ProfileRepository
	policy   pricing.Policy
}

// NewQuoteUseCase constructs QuoteUseCase.
func NewQuoteUseCase(quotes repository.QuoteRepository, profiles repository.ProfileRepository, policy pricing.Policy) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes, profiles: profiles, policy: policy}
}

// Create prices and persists a quote for the user. The price and total are
// always computed here; client-supplied amounts are never consulted. Requires
// an existing delivery profile for the address.
func (u *QuoteUseCase) Create(ctx context.Context, userID int64, gallons float64, deliveryDate string) (*model.Quote, error) {
	if gallons <= 0 {
		return nil, domainErrors.ErrValidation
	}

	date, err := time.Parse(model.DateLayout, deliveryDate)
	if err != nil {
		return nil, domainErrors.ErrValidation
	}

	profile, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrProfileRequired
		}
		return nil, err
	}

	price := u.policy.PricePerGallon(ctx)
	quote := &model.Quote{
		UserID:           userID,
		GallonsRequested: gallons,
		DeliveryAddress:  profile.DeliveryAddress(),
		DeliveryDate:     date,
		PricePerGallon:   price,
		TotalDue:         price * gallons,
	}

	return u.quotes.Create(ctx, quote)
}

// History returns the user's quotes ordered by delivery date ascending.
func (u *QuoteUseCase) History(ctx context.Context, userID int64) ([]model.Quote, error) {
	return u.quotes.ListByUser(ctx, userID)
}
