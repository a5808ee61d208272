// Package business implements the Business repository using PostgreSQL.
package business

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

// Repo provides business persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new business repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// businessColumns are always selected with the town name joined in.
const businessColumns = `b.id, b.owner_id, b.name, b.slug, b.description, b.town_id, t.name AS town_name,
	b.address, b.latitude, b.longitude, b.category_id, b.phone, b.email, b.website,
	b.hero_image, b.logo, b.business_hours, b.status, b.is_featured, b.is_verified,
	b.followers_count, b.posts_count, b.created_at, b.updated_at`

const businessFrom = ` FROM businesses b JOIN towns t ON t.id = b.town_id`

// Create inserts a new business and returns it with the town name resolved.
func (r *Repo) Create(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	hours, err := json.Marshal(b.Hours)
	if err != nil {
		return nil, fmt.Errorf("business %s: marshal hours: %w", b.ID, err)
	}

	_, err = q.Exec(ctx,
		`INSERT INTO businesses (id, owner_id, name, slug, description, town_id, address, latitude, longitude,
		                         category_id, phone, email, website, hero_image, logo, business_hours, status,
		                         created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		b.ID, b.OwnerID, b.Name, b.Slug, b.Description, b.TownID, b.Address, b.Latitude, b.Longitude,
		b.CategoryID, b.Phone, b.Email, b.Website, b.HeroImage, b.Logo, hours, string(b.Status),
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "business", b.ID)
	}

	return r.GetByID(ctx, b.ID)
}

// GetByID returns a business by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row businessRow
	err := pgxscan.Get(ctx, q, &row,
		`SELECT `+businessColumns+businessFrom+` WHERE b.id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "business", id)
	}

	return row.toDomain()
}

// GetBySlug returns a business by its slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Business, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row businessRow
	err := pgxscan.Get(ctx, q, &row,
		`SELECT `+businessColumns+businessFrom+` WHERE b.slug = $1`, slug)
	if err != nil {
		return nil, postgres.MapError(err, "business", uuid.Nil)
	}

	return row.toDomain()
}

// Update modifies the mutable fields of a business. Slug, owner, status and
// the denormalized counters are not touched here.
func (r *Repo) Update(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	hours, err := json.Marshal(b.Hours)
	if err != nil {
		return nil, fmt.Errorf("business %s: marshal hours: %w", b.ID, err)
	}

	tag, err := q.Exec(ctx,
		`UPDATE businesses
		 SET name = $2, description = $3, town_id = $4, address = $5, latitude = $6, longitude = $7,
		     category_id = $8, phone = $9, email = $10, website = $11, hero_image = $12, logo = $13,
		     business_hours = $14, updated_at = now()
		 WHERE id = $1`,
		b.ID, b.Name, b.Description, b.TownID, b.Address, b.Latitude, b.Longitude,
		b.CategoryID, b.Phone, b.Email, b.Website, b.HeroImage, b.Logo, hours,
	)
	if err != nil {
		return nil, postgres.MapError(err, "business", b.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "business", b.ID)
	}

	return r.GetByID(ctx, b.ID)
}

// UpdateStatus changes the moderation status of a business.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BusinessStatus) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE businesses SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return postgres.MapError(err, "business", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "business", id)
	}

	return nil
}

// List returns businesses matching the filter.
func (r *Repo) List(ctx context.Context, filter domain.BusinessFilter) ([]domain.Business, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(businessColumns).
		From("businesses b").
		Join("towns t ON t.id = b.town_id")

	if filter.Status != nil {
		query = query.Where(squirrel.Eq{"b.status": string(*filter.Status)})
	}
	if filter.TownName != nil {
		query = query.Where(squirrel.ILike{"t.name": "%" + *filter.TownName + "%"})
	}
	if filter.CategoryID != nil {
		query = query.Where(squirrel.Eq{"b.category_id": *filter.CategoryID})
	}
	if filter.Featured != nil {
		query = query.Where(squirrel.Eq{"b.is_featured": *filter.Featured})
	}
	if filter.Search != nil {
		pattern := "%" + *filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"b.name": pattern},
			squirrel.ILike{"b.description": pattern},
		})
	}

	query = query.OrderBy(sortClause(filter.SortBy, filter.SortOrder))
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("business list: build query: %w", err)
	}

	var rows []businessRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "business", uuid.Nil)
	}

	return toDomainList(rows)
}

// Search returns active businesses whose name or description contains the
// query, case-insensitive, newest first. A non-nil townName restricts
// results to matching towns.
func (r *Repo) Search(ctx context.Context, search string, townName *string, limit int) ([]domain.Business, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []businessRow
	err := pgxscan.Select(ctx, q, &rows,
		`SELECT `+businessColumns+businessFrom+`
		 WHERE b.status = 'active' AND (b.name ILIKE $1 OR b.description ILIKE $1)
		   AND ($2::text IS NULL OR t.name ILIKE '%' || $2 || '%')
		 ORDER BY b.created_at DESC
		 LIMIT $3`,
		"%"+search+"%", townName, limit,
	)
	if err != nil {
		return nil, postgres.MapError(err, "business", uuid.Nil)
	}

	return toDomainList(rows)
}

// CountByOwner returns the number of businesses owned by the given user.
func (r *Repo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx,
		`SELECT count(*) FROM businesses WHERE owner_id = $1`, ownerID,
	).Scan(&count)
	if err != nil {
		return 0, postgres.MapError(err, "business", uuid.Nil)
	}

	return count, nil
}

// ListByOwner returns all businesses owned by the given user, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Business, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []businessRow
	err := pgxscan.Select(ctx, q, &rows,
		`SELECT `+businessColumns+businessFrom+` WHERE b.owner_id = $1 ORDER BY b.created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "business", uuid.Nil)
	}

	return toDomainList(rows)
}

// AdjustFollowersCount atomically adds delta to followers_count and returns
// the new value. The CHECK constraint rejects negative results.
func (r *Repo) AdjustFollowersCount(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	return r.adjustCounter(ctx, id, "followers_count", delta)
}

// AdjustPostsCount atomically adds delta to posts_count and returns the new value.
func (r *Repo) AdjustPostsCount(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	return r.adjustCounter(ctx, id, "posts_count", delta)
}

func (r *Repo) adjustCounter(ctx context.Context, id uuid.UUID, column string, delta int) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx,
		`UPDATE businesses SET `+column+` = `+column+` + $2, updated_at = now()
		 WHERE id = $1 RETURNING `+column,
		id, delta,
	).Scan(&count)
	if err != nil {
		return 0, postgres.MapError(err, "business", id)
	}

	return count, nil
}

// RecountFollowers rewrites followers_count from the follows table for all
// businesses where the stored value drifted. Returns the number of rows fixed.
func (r *Repo) RecountFollowers(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE businesses b
		 SET followers_count = c.cnt, updated_at = now()
		 FROM (SELECT b2.id, count(f.id) AS cnt
		       FROM businesses b2 LEFT JOIN follows f ON f.business_id = b2.id
		       GROUP BY b2.id) c
		 WHERE c.id = b.id AND b.followers_count <> c.cnt`,
	)
	if err != nil {
		return 0, postgres.MapError(err, "business", uuid.Nil)
	}

	return int(tag.RowsAffected()), nil
}

// RecountPosts rewrites posts_count from the posts table for all businesses
// where the stored value drifted. Only active posts are counted.
func (r *Repo) RecountPosts(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE businesses b
		 SET posts_count = c.cnt, updated_at = now()
		 FROM (SELECT b2.id, count(p.id) AS cnt
		       FROM businesses b2 LEFT JOIN posts p ON p.business_id = b2.id AND p.is_active
		       GROUP BY b2.id) c
		 WHERE c.id = b.id AND b.posts_count <> c.cnt`,
	)
	if err != nil {
		return 0, postgres.MapError(err, "business", uuid.Nil)
	}

	return int(tag.RowsAffected()), nil
}

// sortClause whitelists sortable columns; anything else falls back to created_at DESC.
func sortClause(sortBy, sortOrder string) string {
	column := "b.created_at"
	if sortBy == "followers_count" {
		column = "b.followers_count"
	}
	order := "DESC"
	if sortOrder == "ASC" {
		order = "ASC"
	}
	return column + " " + order
}

// businessRow mirrors the businesses table (plus joined town name) for scany.
type businessRow struct {
	ID             uuid.UUID       `db:"id"`
	OwnerID        uuid.UUID       `db:"owner_id"`
	Name           string          `db:"name"`
	Slug           string          `db:"slug"`
	Description    string          `db:"description"`
	TownID         uuid.UUID       `db:"town_id"`
	TownName       string          `db:"town_name"`
	Address        string          `db:"address"`
	Latitude       *float64        `db:"latitude"`
	Longitude      *float64        `db:"longitude"`
	CategoryID     *uuid.UUID      `db:"category_id"`
	Phone          string          `db:"phone"`
	Email          string          `db:"email"`
	Website        string          `db:"website"`
	HeroImage      *string         `db:"hero_image"`
	Logo           *string         `db:"logo"`
	BusinessHours  json.RawMessage `db:"business_hours"`
	Status         string          `db:"status"`
	IsFeatured     bool            `db:"is_featured"`
	IsVerified     bool            `db:"is_verified"`
	FollowersCount int             `db:"followers_count"`
	PostsCount     int             `db:"posts_count"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

func (row businessRow) toDomain() (*domain.Business, error) {
	var hours domain.BusinessHours
	if len(row.BusinessHours) > 0 {
		if err := json.Unmarshal(row.BusinessHours, &hours); err != nil {
			return nil, fmt.Errorf("business %s: unmarshal hours: %w", row.ID, err)
		}
	}

	return &domain.Business{
		ID:             row.ID,
		OwnerID:        row.OwnerID,
		Name:           row.Name,
		Slug:           row.Slug,
		Description:    row.Description,
		TownID:         row.TownID,
		TownName:       row.TownName,
		Address:        row.Address,
		Latitude:       row.Latitude,
		Longitude:      row.Longitude,
		CategoryID:     row.CategoryID,
		Phone:          row.Phone,
		Email:          row.Email,
		Website:        row.Website,
		HeroImage:      row.HeroImage,
		Logo:           row.Logo,
		Hours:          hours,
		Status:         domain.BusinessStatus(row.Status),
		IsFeatured:     row.IsFeatured,
		IsVerified:     row.IsVerified,
		FollowersCount: row.FollowersCount,
		PostsCount:     row.PostsCount,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}

func toDomainList(rows []businessRow) ([]domain.Business, error) {
	result := make([]domain.Business, 0, len(rows))
	for _, row := range rows {
		b, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, *b)
	}
	return result, nil
}
