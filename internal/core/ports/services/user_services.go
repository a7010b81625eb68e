package services

import (
	"context"
	"time"

	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
)

// UserSvcFacade defines operations for admin users.
type UserSvcFacade interface {
	// GetUserByID retrieves a user by their ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by their username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// Authenticate verifies a username/password pair and returns the user on
	// success, apperrors.ErrUnauthorized otherwise.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// StoreRefreshToken hashes and persists a refresh token for the user.
	StoreRefreshToken(ctx context.Context, userID string, refreshToken string, expiryTime time.Time) error

	// ClearRefreshToken invalidates the user's stored refresh token (logout).
	ClearRefreshToken(ctx context.Context, userID string) error

	// EnsureInitialAdmin creates the named admin user if it does not exist
	// yet, so a fresh deployment has a usable login.
	EnsureInitialAdmin(ctx context.Context, username, password, name string) error
}

// TokenSvcFacade defines operations for issuing and validating tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a new JWT access token for the given user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a new opaque refresh token for the given user.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAndParseRefreshToken validates a refresh token string and
	// returns the associated user.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error)
}
