package test

import (
	"context"
	"errors"
	"sort"

	domainErrors "github.com/quickfuel/fuelquote/internal/domain/errors"
	"github.com/quickfuel/fuelquote/internal/domain/model"
)

var errMismatch = errors.New("hash mismatch")

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Username: username, PasswordHash: passwordHash}
	s.Next++
	s.Users[username] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProfileRepositoryStub stores at most one profile per user.
type ProfileRepositoryStub struct {
	Profiles map[int64]*model.Profile
	GetErr   error
	UpsertFn func(context.Context, *model.Profile) (*model.Profile, error)
	Err      error
}

// NewProfileRepositoryStub constructs stub repository with initialized map.
func NewProfileRepositoryStub() *ProfileRepositoryStub {
	return &ProfileRepositoryStub{Profiles: make(map[int64]*model.Profile)}
}

// GetByUserID returns the stored profile or not found.
func (s *ProfileRepositoryStub) GetByUserID(ctx context.Context, userID int64) (*model.Profile, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.GetErr != nil {
		return nil, s.GetErr
	}
	if profile, ok := s.Profiles[userID]; ok {
		return profile, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Upsert stores the profile keyed by user.
func (s *ProfileRepositoryStub) Upsert(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	if s.UpsertFn != nil {
		return s.UpsertFn(ctx, profile)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Profiles == nil {
		s.Profiles = make(map[int64]*model.Profile)
	}
	stored := *profile
	s.Profiles[profile.UserID] = &stored
	return &stored, nil
}

// QuoteRepositoryStub keeps quotes in-memory, append-only.
type QuoteRepositoryStub struct {
	Quotes   []model.Quote
	Next     int64
	CreateFn func(context.Context, *model.Quote) (*model.Quote, error)
	ListFn   func(context.Context, int64) ([]model.Quote, error)
	Err      error
}

// Create appends the quote and assigns an identifier.
func (s *QuoteRepositoryStub) Create(ctx context.Context, quote *model.Quote) (*model.Quote, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, quote)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *quote
	stored.ID = s.Next
	s.Next++
	s.Quotes = append(s.Quotes, stored)
	return &stored, nil
}

// ListByUser returns the user's quotes ordered by delivery date ascending.
func (s *QuoteRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Quote, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Quote
	for _, q := range s.Quotes {
		if q.UserID == userID {
			result = append(result, q)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DeliveryDate.Before(result[j].DeliveryDate) })
	return result, nil
}
