// Package follow implements the Follow repository using PostgreSQL.
package follow

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/zooner-app/zooner-backend/internal/adapter/postgres"
	"github.com/zooner-app/zooner-backend/internal/domain"
)

// Repo provides follow persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new follow repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Insert creates a follow for the (user, business) pair if one does not exist.
// Returns true when a new row was inserted, false when the pair already existed.
// The UNIQUE constraint on the pair serializes concurrent toggles.
func (r *Repo) Insert(ctx context.Context, f *domain.Follow) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`INSERT INTO follows (id, user_id, business_id, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, business_id) DO NOTHING`,
		f.ID, f.UserID, f.BusinessID, f.CreatedAt,
	)
	if err != nil {
		return false, postgres.MapError(err, "follow", f.ID)
	}

	return tag.RowsAffected() == 1, nil
}

// Delete removes the follow for the (user, business) pair.
// Returns true when a row was deleted, false when none existed.
func (r *Repo) Delete(ctx context.Context, userID, businessID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM follows WHERE user_id = $1 AND business_id = $2`,
		userID, businessID,
	)
	if err != nil {
		return false, postgres.MapError(err, "follow", uuid.Nil)
	}

	return tag.RowsAffected() == 1, nil
}

// Exists reports whether the user follows the business.
func (r *Repo) Exists(ctx context.Context, userID, businessID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM follows WHERE user_id = $1 AND business_id = $2)`,
		userID, businessID,
	).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "follow", uuid.Nil)
	}

	return exists, nil
}

// ListBusinessIDsByUser returns the IDs of all businesses the user follows.
func (r *Repo) ListBusinessIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ids := []uuid.UUID{}
	err := pgxscan.Select(ctx, q, &ids,
		`SELECT business_id FROM follows WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "follow", uuid.Nil)
	}

	return ids, nil
}

// ListFollowerIDsByBusiness returns the IDs of all users following the business.
// Used when fanning out notifications for a new post.
func (r *Repo) ListFollowerIDsByBusiness(ctx context.Context, businessID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ids := []uuid.UUID{}
	err := pgxscan.Select(ctx, q, &ids,
		`SELECT user_id FROM follows WHERE business_id = $1`,
		businessID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "follow", uuid.Nil)
	}

	return ids, nil
}

// CountSince returns the number of follows created for the business on or
// after the given instant. Used by the analytics rollup.
func (r *Repo) CountSince(ctx context.Context, businessID uuid.UUID, since time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx,
		`SELECT count(*) FROM follows WHERE business_id = $1 AND created_at >= $2`,
		businessID, since,
	).Scan(&count)
	if err != nil {
		return 0, postgres.MapError(err, "follow", uuid.Nil)
	}

	return count, nil
}
