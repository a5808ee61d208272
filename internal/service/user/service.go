// Package user implements profile operations for authenticated users.
package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	TouchLastActive(ctx context.Context, id uuid.UUID, at time.Time) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// tokenRepo revokes sessions when an account is deactivated or a password changes.
type tokenRepo interface {
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
}

// passwordHasher defines the password hashing interface needed by the user service.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

// Service implements user profile operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenRepo
	hasher passwordHasher
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, tokens tokenRepo, hasher passwordHasher) *Service {
	return &Service{
		log:    logger.With("service", "user"),
		users:  users,
		tokens: tokens,
		hasher: hasher,
	}
}
