// Package chat implements user-to-business conversations: starting a chat,
// messaging, unread tracking and read receipts.
package chat

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/config"
	"github.com/zooner-app/zooner-backend/internal/domain"
)

// chatRepo defines the chat repository interface needed by the chat service.
type chatRepo interface {
	Create(ctx context.Context, c *domain.Chat) (*domain.Chat, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Chat, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Chat, error)
	FindUserBusinessChat(ctx context.Context, userID, businessID uuid.UUID) (*domain.Chat, error)
	Touch(ctx context.Context, id uuid.UUID) error
	CreateMessage(ctx context.Context, m *domain.Message) (*domain.Message, error)
	ListMessages(ctx context.Context, chatID uuid.UUID, limit, offset int) ([]domain.Message, error)
	MarkMessagesRead(ctx context.Context, chatID, readerID uuid.UUID) (int, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
}

// businessRepo resolves the business side of a conversation.
type businessRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
}

// notificationRepo writes message notifications.
type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
}

// txManager runs a function within a database transaction.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements chat operations.
type Service struct {
	log           *slog.Logger
	chats         chatRepo
	businesses    businessRepo
	notifications notificationRepo
	tx            txManager
	cfg           config.PlatformConfig
}

// NewService creates a new chat service instance.
func NewService(
	logger *slog.Logger,
	chats chatRepo,
	businesses businessRepo,
	notifications notificationRepo,
	tx txManager,
	cfg config.PlatformConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "chat"),
		chats:         chats,
		businesses:    businesses,
		notifications: notifications,
		tx:            tx,
		cfg:           cfg,
	}
}
