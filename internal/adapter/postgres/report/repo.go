// Package report implements the ReportedContent repository using PostgreSQL.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/zooner-app/zooner-backend/internal/adapter/postgres"
	"github.com/zooner-app/zooner-backend/internal/domain"
)

// Repo provides moderation report persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new report repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const reportColumns = `id, reporter_id, report_type, reason, reported_post_id, reported_business_id,
	reported_user_id, status, admin_notes, reviewed_by, reviewed_at, created_at`

// Create inserts a new report in pending status.
func (r *Repo) Create(ctx context.Context, report *domain.ReportedContent) (*domain.ReportedContent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	postID, businessID, userID := splitTarget(report.Target)

	var row reportRow
	err := pgxscan.Get(ctx, q, &row,
		`INSERT INTO reported_content (id, reporter_id, report_type, reason, reported_post_id,
		                               reported_business_id, reported_user_id, status, admin_notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+reportColumns,
		report.ID, report.ReporterID, string(report.Type), report.Reason,
		postID, businessID, userID, string(report.Status), report.AdminNotes, report.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "reported_content", report.ID)
	}

	return row.toDomain()
}

// GetByID returns a report by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReportedContent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row reportRow
	err := pgxscan.Get(ctx, q, &row,
		`SELECT `+reportColumns+` FROM reported_content WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "reported_content", id)
	}

	return row.toDomain()
}

// GetByIDForUpdate returns a report locked for the duration of the enclosing
// transaction. The moderation service uses it to serialize reviews.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.ReportedContent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row reportRow
	err := pgxscan.Get(ctx, q, &row,
		`SELECT `+reportColumns+` FROM reported_content WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		return nil, postgres.MapError(err, "reported_content", id)
	}

	return row.toDomain()
}

// Review moves a pending report into a terminal status and stamps the
// reviewer exactly once. The WHERE clause refuses any other transition.
func (r *Repo) Review(ctx context.Context, id uuid.UUID, status domain.ReportStatus, adminNotes string, reviewerID uuid.UUID, reviewedAt time.Time) (*domain.ReportedContent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row reportRow
	err := pgxscan.Get(ctx, q, &row,
		`UPDATE reported_content
		 SET status = $2, admin_notes = $3,
		     reviewed_by = COALESCE(reviewed_by, $4),
		     reviewed_at = COALESCE(reviewed_at, $5)
		 WHERE id = $1 AND status = 'pending'
		 RETURNING `+reportColumns,
		id, string(status), adminNotes, reviewerID, reviewedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "reported_content", id)
	}

	return row.toDomain()
}

// List returns reports matching the filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.ReportFilter) ([]domain.ReportedContent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(reportColumns).
		From("reported_content").
		OrderBy("created_at DESC")

	if filter.Status != nil {
		query = query.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("report list: build query: %w", err)
	}

	var rows []reportRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "reported_content", uuid.Nil)
	}

	reports := make([]domain.ReportedContent, 0, len(rows))
	for _, row := range rows {
		report, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}

	return reports, nil
}

// splitTarget maps the tagged target onto the three nullable FK columns.
// Exactly one is non-nil; the table CHECK enforces the same.
func splitTarget(t domain.ReportTarget) (postID, businessID, userID *uuid.UUID) {
	id := t.ID
	switch t.Kind {
	case domain.ReportTargetPost:
		postID = &id
	case domain.ReportTargetBusiness:
		businessID = &id
	case domain.ReportTargetUser:
		userID = &id
	}
	return postID, businessID, userID
}

// reportRow mirrors the reported_content table for scany.
type reportRow struct {
	ID                 uuid.UUID  `db:"id"`
	ReporterID         uuid.UUID  `db:"reporter_id"`
	ReportType         string     `db:"report_type"`
	Reason             string     `db:"reason"`
	ReportedPostID     *uuid.UUID `db:"reported_post_id"`
	ReportedBusinessID *uuid.UUID `db:"reported_business_id"`
	ReportedUserID     *uuid.UUID `db:"reported_user_id"`
	Status             string     `db:"status"`
	AdminNotes         string     `db:"admin_notes"`
	ReviewedBy         *uuid.UUID `db:"reviewed_by"`
	ReviewedAt         *time.Time `db:"reviewed_at"`
	CreatedAt          time.Time  `db:"created_at"`
}

func (row reportRow) toDomain() (*domain.ReportedContent, error) {
	var target domain.ReportTarget
	switch {
	case row.ReportedPostID != nil:
		target = domain.PostTarget(*row.ReportedPostID)
	case row.ReportedBusinessID != nil:
		target = domain.BusinessTarget(*row.ReportedBusinessID)
	case row.ReportedUserID != nil:
		target = domain.UserTarget(*row.ReportedUserID)
	default:
		return nil, fmt.Errorf("reported_content %s: no target set", row.ID)
	}

	return &domain.ReportedContent{
		ID:         row.ID,
		ReporterID: row.ReporterID,
		Type:       domain.ReportType(row.ReportType),
		Reason:     row.Reason,
		Target:     target,
		Status:     domain.ReportStatus(row.Status),
		AdminNotes: row.AdminNotes,
		ReviewedBy: row.ReviewedBy,
		ReviewedAt: row.ReviewedAt,
		CreatedAt:  row.CreatedAt,
	}, nil
}

