package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NgurahFajar/damar-exchange-backend/internal/apperrors"
	"github.com/NgurahFajar/damar-exchange-backend/internal/core/domain"
	portsrepo "github.com/NgurahFajar/damar-exchange-backend/internal/core/ports/repositories"
	"github.com/NgurahFajar/damar-exchange-backend/internal/utils"
	"github.com/google/uuid"
)

// UserService provides business logic for admin users.
type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, normalizeUsername(username))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username in service: %w", err)
	}
	return user, nil
}

// Authenticate verifies a username/password pair. Unknown usernames and bad
// passwords both come back as ErrUnauthorized so the response does not leak
// which part was wrong.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, normalizeUsername(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load user for authentication: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

func (s *UserService) StoreRefreshToken(ctx context.Context, userID string, refreshToken string, expiryTime time.Time) error {
	hash := utils.HashRefreshToken(refreshToken)
	if err := s.userRepo.UpdateRefreshTokenHash(ctx, userID, hash, &expiryTime); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (s *UserService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshTokenHash(ctx, userID, "", nil); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

// EnsureInitialAdmin creates the named admin user if it does not exist yet.
// Called at startup so a fresh deployment has a usable login.
func (s *UserService) EnsureInitialAdmin(ctx context.Context, username, password, name string) error {
	username = normalizeUsername(username)

	_, err := s.userRepo.FindUserByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check for initial admin: %w", err)
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash initial admin password: %w", err)
	}

	userID := uuid.NewString()
	now := time.Now()
	user := domain.User{
		UserID:       userID,
		Username:     username,
		PasswordHash: passwordHash,
		Name:         name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		// A concurrent boot may have created it in the meantime.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("failed to create initial admin: %w", err)
	}
	return nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
