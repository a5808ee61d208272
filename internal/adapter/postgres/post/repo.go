// Package post implements the Post repository using PostgreSQL.
package post

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/zooner-app/zooner-backend/internal/adapter/postgres"
	"github.com/zooner-app/zooner-backend/internal/domain"
)

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new post repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const postColumns = `p.id, p.business_id, p.author_id, p.caption, p.post_type, p.image, p.video,
	p.tags, p.category_id, p.likes_count, p.comments_count, p.shares_count, p.views_count,
	p.is_active, p.is_featured, p.is_pinned, p.published_at, p.created_at, p.updated_at`

// Create inserts a new post and returns the persisted domain.Post.
func (r *Repo) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tags, err := marshalTags(p.Tags)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", p.ID, err)
	}

	_, err = q.Exec(ctx,
		`INSERT INTO posts (id, business_id, author_id, caption, post_type, image, video, tags,
		                    category_id, is_active, published_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.BusinessID, p.AuthorID, p.Caption, string(p.Type), p.Image, p.Video, tags,
		p.CategoryID, p.IsActive, p.PublishedAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "post", p.ID)
	}

	return r.GetByID(ctx, p.ID)
}

// GetByID returns a post by primary key, active or not.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row postRow
	err := pgxscan.Get(ctx, q, &row,
		`SELECT `+postColumns+` FROM posts p WHERE p.id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "post", id)
	}

	return row.toDomain()
}

// Update modifies the mutable content fields of a post.
func (r *Repo) Update(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tags, err := marshalTags(p.Tags)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", p.ID, err)
	}

	tag, err := q.Exec(ctx,
		`UPDATE posts
		 SET caption = $2, post_type = $3, image = $4, video = $5, tags = $6, category_id = $7,
		     is_pinned = $8, updated_at = now()
		 WHERE id = $1`,
		p.ID, p.Caption, string(p.Type), p.Image, p.Video, tags, p.CategoryID, p.IsPinned,
	)
	if err != nil {
		return nil, postgres.MapError(err, "post", p.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "post", p.ID)
	}

	return r.GetByID(ctx, p.ID)
}

// Delete removes a post. Likes and comments cascade at the database level.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "post", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "post", id)
	}

	return nil
}

// List returns active posts matching the filter, newest published first.
// Only posts of active businesses appear in the feed.
func (r *Repo) List(ctx context.Context, viewerID *uuid.UUID, filter domain.PostFilter) ([]domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(postColumns).
		From("posts p").
		Join("businesses b ON b.id = p.business_id").
		Where("p.is_active").
		Where(squirrel.Eq{"b.status": string(domain.BusinessStatusActive)})

	if filter.BusinessID != nil {
		query = query.Where(squirrel.Eq{"p.business_id": *filter.BusinessID})
	}
	if filter.Type != nil {
		query = query.Where(squirrel.Eq{"p.post_type": string(*filter.Type)})
	}
	if filter.CategoryID != nil {
		query = query.Where(squirrel.Eq{"p.category_id": *filter.CategoryID})
	}
	if filter.TownName != nil {
		query = query.
			Join("towns t ON t.id = b.town_id").
			Where(squirrel.ILike{"t.name": "%" + *filter.TownName + "%"})
	}
	if filter.FollowingOnly && viewerID != nil {
		query = query.Where(
			"p.business_id IN (SELECT business_id FROM follows WHERE user_id = ?)",
			*viewerID,
		)
	}

	query = query.OrderBy("p.published_at DESC", "p.created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("post list: build query: %w", err)
	}

	var rows []postRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "post", uuid.Nil)
	}

	return toDomainList(rows)
}

// Search returns active posts whose caption contains the query,
// case-insensitive, newest published first. A non-nil townName restricts
// results to businesses in matching towns.
func (r *Repo) Search(ctx context.Context, search string, townName *string, limit int) ([]domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []postRow
	err := pgxscan.Select(ctx, q, &rows,
		`SELECT `+postColumns+`
		 FROM posts p
		 JOIN businesses b ON b.id = p.business_id
		 JOIN towns t ON t.id = b.town_id
		 WHERE p.is_active AND b.status = 'active' AND p.caption ILIKE $1
		   AND ($2::text IS NULL OR t.name ILIKE '%' || $2 || '%')
		 ORDER BY p.published_at DESC
		 LIMIT $3`,
		"%"+search+"%", townName, limit,
	)
	if err != nil {
		return nil, postgres.MapError(err, "post", uuid.Nil)
	}

	return toDomainList(rows)
}

// AdjustLikesCount atomically adds delta to likes_count and returns the new value.
func (r *Repo) AdjustLikesCount(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	return r.adjustCounter(ctx, id, "likes_count", delta)
}

// AdjustCommentsCount atomically adds delta to comments_count and returns the new value.
func (r *Repo) AdjustCommentsCount(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	return r.adjustCounter(ctx, id, "comments_count", delta)
}

// IncrementViews adds one to views_count and returns the new value.
func (r *Repo) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	return r.adjustCounter(ctx, id, "views_count", 1)
}

// IncrementShares adds one to shares_count and returns the new value.
func (r *Repo) IncrementShares(ctx context.Context, id uuid.UUID) (int, error) {
	return r.adjustCounter(ctx, id, "shares_count", 1)
}

func (r *Repo) adjustCounter(ctx context.Context, id uuid.UUID, column string, delta int) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx,
		`UPDATE posts SET `+column+` = `+column+` + $2, updated_at = now()
		 WHERE id = $1 RETURNING `+column,
		id, delta,
	).Scan(&count)
	if err != nil {
		return 0, postgres.MapError(err, "post", id)
	}

	return count, nil
}

// RecountLikes rewrites likes_count from the likes table for all posts where
// the stored value drifted. Returns the number of rows fixed.
func (r *Repo) RecountLikes(ctx context.Context) (int, error) {
	return r.recount(ctx,
		`UPDATE posts p
		 SET likes_count = c.cnt, updated_at = now()
		 FROM (SELECT p2.id, count(l.id) AS cnt
		       FROM posts p2 LEFT JOIN likes l ON l.post_id = p2.id
		       GROUP BY p2.id) c
		 WHERE c.id = p.id AND p.likes_count <> c.cnt`,
	)
}

// RecountComments rewrites comments_count from the comments table for all
// posts where the stored value drifted. Only active comments are counted.
func (r *Repo) RecountComments(ctx context.Context) (int, error) {
	return r.recount(ctx,
		`UPDATE posts p
		 SET comments_count = c.cnt, updated_at = now()
		 FROM (SELECT p2.id, count(cm.id) AS cnt
		       FROM posts p2 LEFT JOIN comments cm ON cm.post_id = p2.id AND cm.is_active
		       GROUP BY p2.id) c
		 WHERE c.id = p.id AND p.comments_count <> c.cnt`,
	)
}

func (r *Repo) recount(ctx context.Context, sql string) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, sql)
	if err != nil {
		return 0, postgres.MapError(err, "post", uuid.Nil)
	}

	return int(tag.RowsAffected()), nil
}

// marshalTags encodes the tag list as JSON for the jsonb column.
// A nil slice is stored as an empty array, not NULL.
func marshalTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("marshal tags: %w", err)
	}
	return data, nil
}

// postRow mirrors the posts table for scany.
type postRow struct {
	ID            uuid.UUID       `db:"id"`
	BusinessID    uuid.UUID       `db:"business_id"`
	AuthorID      uuid.UUID       `db:"author_id"`
	Caption       string          `db:"caption"`
	PostType      string          `db:"post_type"`
	Image         *string         `db:"image"`
	Video         *string         `db:"video"`
	Tags          json.RawMessage `db:"tags"`
	CategoryID    *uuid.UUID      `db:"category_id"`
	LikesCount    int             `db:"likes_count"`
	CommentsCount int             `db:"comments_count"`
	SharesCount   int             `db:"shares_count"`
	ViewsCount    int             `db:"views_count"`
	IsActive      bool            `db:"is_active"`
	IsFeatured    bool            `db:"is_featured"`
	IsPinned      bool            `db:"is_pinned"`
	PublishedAt   time.Time       `db:"published_at"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

func (row postRow) toDomain() (*domain.Post, error) {
	tags := []string{}
	if len(row.Tags) > 0 {
		if err := json.Unmarshal(row.Tags, &tags); err != nil {
			return nil, fmt.Errorf("post %s: unmarshal tags: %w", row.ID, err)
		}
	}

	return &domain.Post{
		ID:            row.ID,
		BusinessID:    row.BusinessID,
		AuthorID:      row.AuthorID,
		Caption:       row.Caption,
		Type:          domain.PostType(row.PostType),
		Image:         row.Image,
		Video:         row.Video,
		Tags:          tags,
		CategoryID:    row.CategoryID,
		LikesCount:    row.LikesCount,
		CommentsCount: row.CommentsCount,
		SharesCount:   row.SharesCount,
		ViewsCount:    row.ViewsCount,
		IsActive:      row.IsActive,
		IsFeatured:    row.IsFeatured,
		IsPinned:      row.IsPinned,
		PublishedAt:   row.PublishedAt,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

func toDomainList(rows []postRow) ([]domain.Post, error) {
	result := make([]domain.Post, 0, len(rows))
	for _, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	return result, nil
}
