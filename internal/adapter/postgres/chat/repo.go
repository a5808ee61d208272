// Package chat implements the Chat and Message repository using PostgreSQL.
// Chats and their participant rows always change together, so one package
// owns all three tables.
package chat

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/zooner-app/zooner-backend/internal/adapter/postgres"
	"github.com/zooner-app/zooner-backend/internal/domain"
)

// Repo provides chat and message persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new chat repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a chat together with its participant rows.
// Callers run this inside a transaction.
func (r *Repo) Create(ctx context.Context, c *domain.Chat) (*domain.Chat, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO chats (id, business_id, chat_type, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.BusinessID, string(c.Type), c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "chat", c.ID)
	}

	for _, pid := range c.ParticipantIDs {
		_, err := q.Exec(ctx,
			`INSERT INTO chat_participants (chat_id, user_id) VALUES ($1, $2)`,
			c.ID, pid,
		)
		if err != nil {
			return nil, postgres.MapError(err, "chat_participant", c.ID)
		}
	}

	return r.GetByID(ctx, c.ID)
}

// GetByID returns a chat with its participant IDs loaded.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Chat, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row chatRow
	err := pgxscan.Get(ctx, q, &row,
		`SELECT id, business_id, chat_type, is_active, created_at, updated_at
		 FROM chats WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "chat", id)
	}

	participants, err := r.participantIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	chat := row.toDomain(participants)
	return &chat, nil
}

// ListByUser returns the active chats the user participates in, most
// recently updated first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Chat, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []chatRow
	err := pgxscan.Select(ctx, q, &rows,
		`SELECT c.id, c.business_id, c.chat_type, c.is_active, c.created_at, c.updated_at
		 FROM chats c
		 JOIN chat_participants cp ON cp.chat_id = c.id
		 WHERE cp.user_id = $1 AND c.is_active
		 ORDER BY c.updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "chat", uuid.Nil)
	}

	chats := make([]domain.Chat, 0, len(rows))
	for _, row := range rows {
		participants, err := r.participantIDs(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		chats = append(chats, row.toDomain(participants))
	}

	return chats, nil
}

// FindUserBusinessChat returns the existing user-to-business chat between the
// user and the business, or ErrNotFound.
func (r *Repo) FindUserBusinessChat(ctx context.Context, userID, businessID uuid.UUID) (*domain.Chat, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var chatID uuid.UUID
	err := q.QueryRow(ctx,
		`SELECT c.id
		 FROM chats c
		 JOIN chat_participants cp ON cp.chat_id = c.id
		 WHERE c.business_id = $1 AND c.chat_type = $2 AND cp.user_id = $3 AND c.is_active
		 LIMIT 1`,
		businessID, string(domain.ChatTypeUserBusiness), userID,
	).Scan(&chatID)
	if err != nil {
		return nil, postgres.MapError(err, "chat", uuid.Nil)
	}

	return r.GetByID(ctx, chatID)
}

// Touch bumps the chat's updated_at so it sorts to the top of listings.
func (r *Repo) Touch(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, `UPDATE chats SET updated_at = now() WHERE id = $1`, id)
	return postgres.MapError(err, "chat", id)
}

func (r *Repo) participantIDs(ctx context.Context, chatID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ids := []uuid.UUID{}
	err := pgxscan.Select(ctx, q, &ids,
		`SELECT user_id FROM chat_participants WHERE chat_id = $1 ORDER BY user_id`,
		chatID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "chat_participant", chatID)
	}

	return ids, nil
}

// ---------------------------------------------------------------------------
// Message operations
// ---------------------------------------------------------------------------

const messageColumns = `id, chat_id, sender_id, content, message_type, attachment, is_read, read_at, created_at, updated_at`

// CreateMessage inserts a new message and returns the persisted domain.Message.
func (r *Repo) CreateMessage(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row messageRow
	err := pgxscan.Get(ctx, q, &row,
		`INSERT INTO messages (id, chat_id, sender_id, content, message_type, attachment, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+messageColumns,
		m.ID, m.ChatID, m.SenderID, m.Content, string(m.Type), m.Attachment, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "message", m.ID)
	}

	message := row.toDomain()
	return &message, nil
}

// ListMessages returns messages in the chat, newest first.
func (r *Repo) ListMessages(ctx context.Context, chatID uuid.UUID, limit, offset int) ([]domain.Message, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []messageRow
	err := pgxscan.Select(ctx, q, &rows,
		`SELECT `+messageColumns+`
		 FROM messages
		 WHERE chat_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		chatID, limit, offset,
	)
	if err != nil {
		return nil, postgres.MapError(err, "message", uuid.Nil)
	}

	messages := make([]domain.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, row.toDomain())
	}

	return messages, nil
}

// MarkMessagesRead marks all messages in the chat not sent by the reader as
// read. Returns the number of messages marked.
func (r *Repo) MarkMessagesRead(ctx context.Context, chatID, readerID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`UPDATE messages
		 SET is_read = TRUE, read_at = now(), updated_at = now()
		 WHERE chat_id = $1 AND sender_id <> $2 AND NOT is_read`,
		chatID, readerID,
	)
	if err != nil {
		return 0, postgres.MapError(err, "message", uuid.Nil)
	}

	return int(tag.RowsAffected()), nil
}

// CountUnread returns the number of unread messages addressed to the user
// across all their chats.
func (r *Repo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx,
		`SELECT count(*)
		 FROM messages m
		 JOIN chat_participants cp ON cp.chat_id = m.chat_id
		 WHERE cp.user_id = $1 AND m.sender_id <> $1 AND NOT m.is_read`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, postgres.MapError(err, "message", uuid.Nil)
	}

	return count, nil
}

// chatRow mirrors the chats table for scany.
type chatRow struct {
	ID         uuid.UUID  `db:"id"`
	BusinessID *uuid.UUID `db:"business_id"`
	ChatType   string     `db:"chat_type"`
	IsActive   bool       `db:"is_active"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

func (row chatRow) toDomain(participants []uuid.UUID) domain.Chat {
	return domain.Chat{
		ID:             row.ID,
		ParticipantIDs: participants,
		BusinessID:     row.BusinessID,
		Type:           domain.ChatType(row.ChatType),
		IsActive:       row.IsActive,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

// messageRow mirrors the messages table for scany.
type messageRow struct {
	ID          uuid.UUID  `db:"id"`
	ChatID      uuid.UUID  `db:"chat_id"`
	SenderID    uuid.UUID  `db:"sender_id"`
	Content     string     `db:"content"`
	MessageType string     `db:"message_type"`
	Attachment  *string    `db:"attachment"`
	IsRead      bool       `db:"is_read"`
	ReadAt      *time.Time `db:"read_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (row messageRow) toDomain() domain.Message {
	return domain.Message{
		ID:         row.ID,
		ChatID:     row.ChatID,
		SenderID:   row.SenderID,
		Content:    row.Content,
		Type:       domain.MessageType(row.MessageType),
		Attachment: row.Attachment,
		IsRead:     row.IsRead,
		ReadAt:     row.ReadAt,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
