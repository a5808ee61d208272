// Package town implements the Town repository using PostgreSQL.
package town

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/zooner-app/zooner-backend/internal/adapter/postgres"
	"github.com/zooner-app/zooner-backend/internal/domain"
)

// Repo provides town persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new town repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const townColumns = `id, name, slug, country, region, latitude, longitude, is_active, created_at`

// Create inserts a new town.
func (r *Repo) Create(ctx context.Context, t *domain.Town) (*domain.Town, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var town domain.Town
	err := pgxscan.Get(ctx, q, &town,
		`INSERT INTO towns (id, name, slug, country, region, latitude, longitude, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+townColumns,
		t.ID, t.Name, t.Slug, t.Country, t.Region, t.Latitude, t.Longitude, t.IsActive, t.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "town", t.ID)
	}

	return &town, nil
}

// GetByID returns a town by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Town, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var town domain.Town
	err := pgxscan.Get(ctx, q, &town, `SELECT `+townColumns+` FROM towns WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "town", id)
	}

	return &town, nil
}

// GetBySlug returns a town by its slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Town, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var town domain.Town
	err := pgxscan.Get(ctx, q, &town, `SELECT `+townColumns+` FROM towns WHERE slug = $1`, slug)
	if err != nil {
		return nil, postgres.MapError(err, "town", uuid.Nil)
	}

	return &town, nil
}

// ListActive returns all active towns ordered by name.
func (r *Repo) ListActive(ctx context.Context) ([]domain.Town, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	towns := []domain.Town{}
	err := pgxscan.Select(ctx, q, &towns,
		`SELECT `+townColumns+` FROM towns WHERE is_active ORDER BY name`,
	)
	if err != nil {
		return nil, postgres.MapError(err, "town", uuid.Nil)
	}

	return towns, nil
}
