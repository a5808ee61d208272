// Package like implements the Like repository using PostgreSQL.
package like

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/zooner-app/zooner-backend/internal/adapter/postgres"
	"github.com/zooner-app/zooner-backend/internal/domain"
)

// Repo provides like persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new like repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Insert creates a like for the (user, post) pair if one does not exist.
// Returns true when a new row was inserted, false when the pair already existed.
// The UNIQUE constraint on the pair serializes concurrent toggles.
func (r *Repo) Insert(ctx context.Context, l *domain.Like) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`INSERT INTO likes (id, user_id, post_id, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, post_id) DO NOTHING`,
		l.ID, l.UserID, l.PostID, l.CreatedAt,
	)
	if err != nil {
		return false, postgres.MapError(err, "like", l.ID)
	}

	return tag.RowsAffected() == 1, nil
}

// Delete removes the like for the (user, post) pair.
// Returns true when a row was deleted, false when none existed.
func (r *Repo) Delete(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM likes WHERE user_id = $1 AND post_id = $2`,
		userID, postID,
	)
	if err != nil {
		return false, postgres.MapError(err, "like", uuid.Nil)
	}

	return tag.RowsAffected() == 1, nil
}

// Exists reports whether the user has liked the post.
func (r *Repo) Exists(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM likes WHERE user_id = $1 AND post_id = $2)`,
		userID, postID,
	).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "like", uuid.Nil)
	}

	return exists, nil
}
