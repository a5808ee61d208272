// Package notification implements the Notification repository using PostgreSQL.
package notification

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/zooner-app/zooner-backend/internal/adapter/postgres"
	"github.com/zooner-app/zooner-backend/internal/domain"
)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const notificationColumns = `id, recipient_id, sender_id, notification_type, title, message,
	related_post_id, related_business_id, related_chat_id, is_read, is_sent, read_at, created_at`

// Create inserts a new notification.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO notifications (id, recipient_id, sender_id, notification_type, title, message,
		                            related_post_id, related_business_id, related_chat_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		n.ID, n.Recipient, n.Sender, string(n.Type), n.Title, n.Message,
		n.PostID, n.BusinessID, n.ChatID, n.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "notification", n.ID)
	}

	return nil
}

// CreateBatch inserts many notifications in a single batch round trip.
// Used when fanning out to all followers of a business.
func (r *Repo) CreateBatch(ctx context.Context, notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, n := range notifications {
		batch.Queue(
			`INSERT INTO notifications (id, recipient_id, sender_id, notification_type, title, message,
			                            related_post_id, related_business_id, related_chat_id, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			n.ID, n.Recipient, n.Sender, string(n.Type), n.Title, n.Message,
			n.PostID, n.BusinessID, n.ChatID, n.CreatedAt,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range notifications {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "notification", uuid.Nil)
		}
	}

	return nil
}

// ListByRecipient returns the recipient's notifications, newest first.
func (r *Repo) ListByRecipient(ctx context.Context, recipientID uuid.UUID, filter domain.NotificationFilter) ([]domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql := `SELECT ` + notificationColumns + ` FROM notifications WHERE recipient_id = $1`
	if filter.UnreadOnly {
		sql += ` AND NOT is_read`
	}
	sql += ` ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	var rows []notificationRow
	err := pgxscan.Select(ctx, q, &rows, sql, recipientID, filter.Limit, filter.Offset)
	if err != nil {
		return nil, postgres.MapError(err, "notification", uuid.Nil)
	}

	notifications := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, row.toDomain())
	}

	return notifications, nil
}

// MarkRead marks one notification as read if it belongs to the recipient.
// Idempotent on already-read notifications.
func (r *Repo) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE notifications
		 SET is_read = TRUE, read_at = COALESCE(read_at, now())
		 WHERE id = $1 AND recipient_id = $2`,
		id, recipientID,
	)
	if err != nil {
		return postgres.MapError(err, "notification", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "notification", id)
	}

	return nil
}

// MarkAllRead marks all of the recipient's unread notifications as read.
// Returns the number of notifications marked.
func (r *Repo) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE notifications
		 SET is_read = TRUE, read_at = COALESCE(read_at, now())
		 WHERE recipient_id = $1 AND NOT is_read`,
		recipientID,
	)
	if err != nil {
		return 0, postgres.MapError(err, "notification", uuid.Nil)
	}

	return int(tag.RowsAffected()), nil
}

// CountUnread returns the number of unread notifications for the recipient.
func (r *Repo) CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx,
		`SELECT count(*) FROM notifications WHERE recipient_id = $1 AND NOT is_read`,
		recipientID,
	).Scan(&count)
	if err != nil {
		return 0, postgres.MapError(err, "notification", uuid.Nil)
	}

	return count, nil
}

// ListUnsent returns up to limit notifications not yet delivered by the
// external worker, oldest first.
func (r *Repo) ListUnsent(ctx context.Context, limit int) ([]domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []notificationRow
	err := pgxscan.Select(ctx, q, &rows,
		`SELECT `+notificationColumns+`
		 FROM notifications WHERE NOT is_sent
		 ORDER BY created_at
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, postgres.MapError(err, "notification", uuid.Nil)
	}

	notifications := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, row.toDomain())
	}

	return notifications, nil
}

// MarkSent flags the given notifications as delivered.
func (r *Repo) MarkSent(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`UPDATE notifications SET is_sent = TRUE WHERE id = ANY($1)`,
		ids,
	)
	return postgres.MapError(err, "notification", uuid.Nil)
}

// notificationRow mirrors the notifications table for scany.
type notificationRow struct {
	ID                uuid.UUID  `db:"id"`
	RecipientID       uuid.UUID  `db:"recipient_id"`
	SenderID          *uuid.UUID `db:"sender_id"`
	NotificationType  string     `db:"notification_type"`
	Title             string     `db:"title"`
	Message           string     `db:"message"`
	RelatedPostID     *uuid.UUID `db:"related_post_id"`
	RelatedBusinessID *uuid.UUID `db:"related_business_id"`
	RelatedChatID     *uuid.UUID `db:"related_chat_id"`
	IsRead            bool       `db:"is_read"`
	IsSent            bool       `db:"is_sent"`
	ReadAt            *time.Time `db:"read_at"`
	CreatedAt         time.Time  `db:"created_at"`
}

func (row notificationRow) toDomain() domain.Notification {
	return domain.Notification{
		ID:         row.ID,
		Recipient:  row.RecipientID,
		Sender:     row.SenderID,
		Type:       domain.NotificationType(row.NotificationType),
		Title:      row.Title,
		Message:    row.Message,
		PostID:     row.RelatedPostID,
		BusinessID: row.RelatedBusinessID,
		ChatID:     row.RelatedChatID,
		IsRead:     row.IsRead,
		IsSent:     row.IsSent,
		ReadAt:     row.ReadAt,
		CreatedAt:  row.CreatedAt,
	}
}
