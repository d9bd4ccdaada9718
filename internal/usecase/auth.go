package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/quickfuel/fuelquote/internal/domain/errors"
	"github.com/quickfuel/fuelquote/internal/domain/model"
	"github.com/quickfuel/fuelquote/internal/domain/repository"
	pkgAuth "github.com/quickfuel/fuelquote/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle and session token management.
type AuthUseCase struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, profiles repository.ProfileRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, profiles: profiles, hasher: hasher, tokens: strategy}
}

// Register creates a new user. The caller still has to log in afterwards;
// registration does not establish a session.
func (u *AuthUseCase) Register(ctx context.Context, username, password, passwordConfirm string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	if password != passwordConfirm {
		return nil, domainErrors.ErrPasswordMismatch
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, username, hash)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}

	return usr, nil
}

// Authenticate validates credentials and returns a session token plus whether
// the user already has a delivery profile (drives the post-login redirect).
// Unknown usernames and wrong passwords fail identically.
func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (*model.User, string, bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", false, domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", false, domainErrors.ErrInvalidCredentials
		}
		return nil, "", false, err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", false, domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", false, err
	}

	hasProfile := true
	if _, err := u.profiles.GetByUserID(ctx, usr.ID); err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", false, err
		}
		hasProfile = false
	}

	return usr, token, hasProfile, nil
}

// ParseToken extracts user ID from provided session token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
