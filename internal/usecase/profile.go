package usecase

import (
	"context"

	"github.com/quickfuel/fuelquote/internal/domain/model"
	"github.com/quickfuel/fuelquote/internal/domain/repository"
)

// ProfileFields carries the submitted profile form values.
type ProfileFields struct {
	FullName string
	Address1 string
	Address2 string
	City     string
	State    string
	Zipcode  string
}

// ProfileUseCase manages the single delivery profile per user.
type ProfileUseCase struct {
	profiles repository.ProfileRepository
}

// NewProfileUseCase constructs ProfileUseCase.
func NewProfileUseCase(profiles repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profiles: profiles}
}

// Get returns the user's profile or ErrNotFound.
func (u *ProfileUseCase) Get(ctx context.Context, userID int64) (*model.Profile, error) {
	return u.profiles.GetByUserID(ctx, userID)
}

// Upsert creates the profile on first submission and updates all fields in
// place on subsequent ones. Identical submissions are idempotent.
func (u *ProfileUseCase) Upsert(ctx context.Context, userID int64, fields ProfileFields) (*model.Profile, error) {
	normalized, err := ValidateProfileFields(fields)
	if err != nil {
		return nil, err
	}

	profile := &model.Profile{
		UserID:   userID,
		FullName: normalized.FullName,
		Address1: normalized.Address1,
		Address2: normalized.Address2,
		City:     normalized.City,
		State:    normalized.State,
		Zipcode:  normalized.Zipcode,
	}

	return u.profiles.Upsert(ctx, profile)
}
