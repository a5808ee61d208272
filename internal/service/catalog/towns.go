package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

// ListTowns returns all active towns ordered by name.
func (s *Service) ListTowns(ctx context.Context) ([]domain.Town, error) {
	towns, err := s.towns.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListTowns: %w", err)
	}
	return towns, nil
}

// GetTownBySlug returns a single town by its URL slug.
func (s *Service) GetTownBySlug(ctx context.Context, slug string) (*domain.Town, error) {
	town, err := s.towns.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetTownBySlug: %w", err)
	}
	return town, nil
}

// CreateTown registers a new town. Admin only, enforced at the transport layer.
func (s *Service) CreateTown(ctx context.Context, input CreateTownInput) (*domain.Town, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	town := &domain.Town{
		ID:        uuid.New(),
		Name:      input.Name,
		Slug:      domain.Slugify(input.Name),
		Country:   input.Country,
		Region:    input.Region,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		IsActive:  true,
	}

	created, err := s.towns.Create(ctx, town)
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateTown: %w", err)
	}

	s.log.InfoContext(ctx, "town created",
		slog.String("town_id", created.ID.String()),
		slog.String("slug", created.Slug))

	return created, nil
}
