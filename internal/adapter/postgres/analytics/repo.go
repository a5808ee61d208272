// Package analytics implements the BusinessAnalytics repository using PostgreSQL.
package analytics

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/zooner-app/zooner-backend/internal/adapter/postgres"
	"github.com/zooner-app/zooner-backend/internal/domain"
)

// Repo provides daily analytics persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analytics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const analyticsColumns = `id, business_id, date, profile_views, post_views, new_followers,
	total_likes, total_comments, total_shares, engagement_rate, reach, created_at, updated_at`

// Upsert writes the daily snapshot for (business, date), replacing any
// previous values for that day. profile_views is left alone on conflict
// because the request path increments it independently.
func (r *Repo) Upsert(ctx context.Context, a *domain.BusinessAnalytics) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO business_analytics (id, business_id, date, profile_views, post_views, new_followers,
		                                 total_likes, total_comments, total_shares, engagement_rate, reach,
		                                 created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (business_id, date) DO UPDATE
		 SET post_views = EXCLUDED.post_views,
		     new_followers = EXCLUDED.new_followers,
		     total_likes = EXCLUDED.total_likes,
		     total_comments = EXCLUDED.total_comments,
		     total_shares = EXCLUDED.total_shares,
		     engagement_rate = EXCLUDED.engagement_rate,
		     reach = EXCLUDED.reach,
		     updated_at = now()`,
		a.ID, a.BusinessID, a.Date, a.ProfileViews, a.PostViews, a.NewFollowers,
		a.TotalLikes, a.TotalComments, a.TotalShares, a.EngagementRate, a.Reach,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "business_analytics", a.ID)
	}

	return nil
}

// IncrementProfileViews bumps profile_views for (business, today), creating
// the row on first view of the day.
func (r *Repo) IncrementProfileViews(ctx context.Context, businessID uuid.UUID, date time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO business_analytics (id, business_id, date, profile_views)
		 VALUES ($1, $2, $3, 1)
		 ON CONFLICT (business_id, date) DO UPDATE
		 SET profile_views = business_analytics.profile_views + 1, updated_at = now()`,
		uuid.New(), businessID, date,
	)
	return postgres.MapError(err, "business_analytics", uuid.Nil)
}

// ListRange returns daily snapshots for the business between from and to
// inclusive, oldest first.
func (r *Repo) ListRange(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]domain.BusinessAnalytics, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	snapshots := []domain.BusinessAnalytics{}
	err := pgxscan.Select(ctx, q, &snapshots,
		`SELECT `+analyticsColumns+`
		 FROM business_analytics
		 WHERE business_id = $1 AND date BETWEEN $2 AND $3
		 ORDER BY date`,
		businessID, from, to,
	)
	if err != nil {
		return nil, postgres.MapError(err, "business_analytics", uuid.Nil)
	}

	return snapshots, nil
}

// SumEngagement aggregates the denormalized post counters for the business.
// Used by the dashboard and the daily rollup.
func (r *Repo) SumEngagement(ctx context.Context, businessID uuid.UUID) (*domain.EngagementTotals, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var totals domain.EngagementTotals
	err := pgxscan.Get(ctx, q, &totals,
		`SELECT count(*) AS post_count,
		        COALESCE(sum(likes_count), 0) AS total_likes,
		        COALESCE(sum(comments_count), 0) AS total_comments,
		        COALESCE(sum(shares_count), 0) AS total_shares,
		        COALESCE(sum(views_count), 0) AS total_views
		 FROM posts
		 WHERE business_id = $1 AND is_active`,
		businessID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "business_analytics", uuid.Nil)
	}

	return &totals, nil
}

// ListActiveBusinessIDs returns the IDs of all active businesses.
// The rollup binary iterates over them.
func (r *Repo) ListActiveBusinessIDs(ctx context.Context) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ids := []uuid.UUID{}
	err := pgxscan.Select(ctx, q, &ids,
		`SELECT id FROM businesses WHERE status = 'active' ORDER BY id`,
	)
	if err != nil {
		return nil, postgres.MapError(err, "business_analytics", uuid.Nil)
	}

	return ids, nil
}
