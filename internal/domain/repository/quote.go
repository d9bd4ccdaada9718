package repository

import (
	"context"

	"github.com/quickfuel/fuelquote/internal/domain/model"
)

// QuoteRepository provides access to the append-only quote history.
type QuoteRepository interface {
	Create(ctx context.Context, quote *model.Quote) (*model.Quote, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Quote, error)
}
