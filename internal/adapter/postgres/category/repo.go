// Package category implements the Category repository using PostgreSQL.
package category

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/zooner-app/zooner-backend/internal/adapter/postgres"
	"github.com/zooner-app/zooner-backend/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const categoryColumns = `id, name, slug, description, icon, color, sort_order, is_active, created_at`

// Create inserts a new category.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var category domain.Category
	err := pgxscan.Get(ctx, q, &category,
		`INSERT INTO categories (id, name, slug, description, icon, color, sort_order, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+categoryColumns,
		c.ID, c.Name, c.Slug, c.Description, c.Icon, c.Color, c.SortOrder, c.IsActive, c.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "category", c.ID)
	}

	return &category, nil
}

// GetByID returns a category by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var category domain.Category
	err := pgxscan.Get(ctx, q, &category, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}

	return &category, nil
}

// GetBySlug returns a category by its slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var category domain.Category
	err := pgxscan.Get(ctx, q, &category, `SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug)
	if err != nil {
		return nil, postgres.MapError(err, "category", uuid.Nil)
	}

	return &category, nil
}

// ListActive returns all active categories ordered by sort_order, then name.
func (r *Repo) ListActive(ctx context.Context) ([]domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	categories := []domain.Category{}
	err := pgxscan.Select(ctx, q, &categories,
		`SELECT `+categoryColumns+` FROM categories WHERE is_active ORDER BY sort_order, name`,
	)
	if err != nil {
		return nil, postgres.MapError(err, "category", uuid.Nil)
	}

	return categories, nil
}
