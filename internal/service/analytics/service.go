// Package analytics serves the owner dashboard and computes the daily
// per-business metric rollups.
package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

// analyticsRepo defines the analytics repository interface needed by the analytics service.
type analyticsRepo interface {
	Upsert(ctx context.Context, a *domain.BusinessAnalytics) error
	ListRange(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]domain.BusinessAnalytics, error)
	SumEngagement(ctx context.Context, businessID uuid.UUID) (*domain.EngagementTotals, error)
	ListActiveBusinessIDs(ctx context.Context) ([]uuid.UUID, error)
}

// businessRepo authorizes dashboard access.
type businessRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
}

// followRepo counts new followers for the rollup window.
type followRepo interface {
	CountSince(ctx context.Context, businessID uuid.UUID, since time.Time) (int, error)
}

// Service implements analytics operations.
type Service struct {
	log        *slog.Logger
	analytics  analyticsRepo
	businesses businessRepo
	follows    followRepo
}

// NewService creates a new analytics service instance.
func NewService(logger *slog.Logger, analytics analyticsRepo, businesses businessRepo, follows followRepo) *Service {
	return &Service{
		log:        logger.With("service", "analytics"),
		analytics:  analytics,
		businesses: businesses,
		follows:    follows,
	}
}
