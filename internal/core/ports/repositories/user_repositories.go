package repositories

import (
	"context"
	"time"

	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by their username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateRefreshTokenHash stores (or clears, with empty hash and nil
	// expiry) the refresh token hash for a user.
	UpdateRefreshTokenHash(ctx context.Context, userID string, tokenHash string, expiryTime *time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
