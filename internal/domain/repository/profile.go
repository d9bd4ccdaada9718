package repository

import (
	"context"

	"github.com/quickfuel/fuelquote/internal/domain/model"
)

// ProfileRepository describes persistence operations for delivery profiles.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*model.Profile, error)
	Upsert(ctx context.Context, profile *model.Profile) (*model.Profile, error)
}
