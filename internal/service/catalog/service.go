// Package catalog serves the reference data businesses register under:
// towns and business categories.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

// townRepo defines the town repository interface needed by the catalog service.
type townRepo interface {
	Create(ctx context.Context, t *domain.Town) (*domain.Town, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Town, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Town, error)
	ListActive(ctx context.Context) ([]domain.Town, error)
}

// categoryRepo defines the category repository interface needed by the catalog service.
type categoryRepo interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	ListActive(ctx context.Context) ([]domain.Category, error)
}

// Service implements catalog operations.
type Service struct {
	log        *slog.Logger
	towns      townRepo
	categories categoryRepo
}

// NewService creates a new catalog service instance.
func NewService(logger *slog.Logger, towns townRepo, categories categoryRepo) *Service {
	return &Service{
		log:        logger.With("service", "catalog"),
		towns:      towns,
		categories: categories,
	}
}
