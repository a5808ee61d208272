// Package business implements business profile management: creation with
// owner promotion, profile updates, public listings and admin status changes.
package business

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/config"
	"github.com/zooner-app/zooner-backend/internal/domain"
)

// businessRepo defines the business repository interface needed by the business service.
type businessRepo interface {
	Create(ctx context.Context, b *domain.Business) (*domain.Business, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Business, error)
	Update(ctx context.Context, b *domain.Business) (*domain.Business, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BusinessStatus) error
	List(ctx context.Context, filter domain.BusinessFilter) ([]domain.Business, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Business, error)
}

// userRepo promotes an owner to the business role on first business creation.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) error
}

// townRepo validates the town a business registers under.
type townRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Town, error)
}

// categoryRepo validates the optional business category.
type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
}

// analyticsRepo records profile views for the owner dashboard.
type analyticsRepo interface {
	IncrementProfileViews(ctx context.Context, businessID uuid.UUID, date time.Time) error
}

// txManager runs a function within a database transaction.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements business profile operations.
type Service struct {
	log        *slog.Logger
	businesses businessRepo
	users      userRepo
	towns      townRepo
	categories categoryRepo
	analytics  analyticsRepo
	tx         txManager
	cfg        config.PlatformConfig
}

// NewService creates a new business service instance.
func NewService(
	logger *slog.Logger,
	businesses businessRepo,
	users userRepo,
	towns townRepo,
	categories categoryRepo,
	analytics analyticsRepo,
	tx txManager,
	cfg config.PlatformConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "business"),
		businesses: businesses,
		users:      users,
		towns:      towns,
		categories: categories,
		analytics:  analytics,
		tx:         tx,
		cfg:        cfg,
	}
}
