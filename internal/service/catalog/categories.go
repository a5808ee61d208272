package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

// ListCategories returns all active categories in display order.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListCategories: %w", err)
	}
	return categories, nil
}

// GetCategoryBySlug returns a single category by its URL slug.
func (s *Service) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	category, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetCategoryBySlug: %w", err)
	}
	return category, nil
}

// CreateCategory registers a new business category. Admin only, enforced at
// the transport layer.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	category := &domain.Category{
		ID:          uuid.New(),
		Name:        input.Name,
		Slug:        domain.Slugify(input.Name),
		Description: input.Description,
		Icon:        input.Icon,
		Color:       input.Color,
		SortOrder:   input.SortOrder,
		IsActive:    true,
	}

	created, err := s.categories.Create(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateCategory: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("category_id", created.ID.String()),
		slog.String("slug", created.Slug))

	return created, nil
}
