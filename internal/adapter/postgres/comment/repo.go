// Package comment implements the Comment repository using PostgreSQL.
package comment

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/zooner-app/zooner-backend/internal/adapter/postgres"
	"github.com/zooner-app/zooner-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const commentColumns = `id, user_id, post_id, parent_id, content, is_active, created_at, updated_at`

// Create inserts a new comment and returns the persisted domain.Comment.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var comment domain.Comment
	err := pgxscan.Get(ctx, q, &comment,
		`INSERT INTO comments (id, user_id, post_id, parent_id, content, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+commentColumns,
		c.ID, c.UserID, c.PostID, c.ParentID, c.Content, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "comment", c.ID)
	}

	return &comment, nil
}

// GetByID returns a comment by primary key, active or not.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var comment domain.Comment
	err := pgxscan.Get(ctx, q, &comment,
		`SELECT `+commentColumns+` FROM comments WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}

	return &comment, nil
}

// ListByPost returns active comments on the post, oldest first so threads
// read top to bottom.
func (r *Repo) ListByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	comments := []domain.Comment{}
	err := pgxscan.Select(ctx, q, &comments,
		`SELECT `+commentColumns+`
		 FROM comments
		 WHERE post_id = $1 AND is_active
		 ORDER BY created_at
		 LIMIT $2 OFFSET $3`,
		postID, limit, offset,
	)
	if err != nil {
		return nil, postgres.MapError(err, "comment", uuid.Nil)
	}

	return comments, nil
}

// Deactivate soft-deletes a comment. The comments_count adjustment happens in
// the same transaction at the service layer.
func (r *Repo) Deactivate(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE comments SET is_active = FALSE, updated_at = now() WHERE id = $1 AND is_active`,
		id,
	)
	if err != nil {
		return postgres.MapError(err, "comment", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "comment", id)
	}

	return nil
}
