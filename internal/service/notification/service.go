// Package notification serves a user's notification inbox and runs the
// delivery loop that pushes unsent notifications to an external channel.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/config"
	"github.com/zooner-app/zooner-backend/internal/domain"
)

// notificationRepo defines the repository interface needed by the notification service.
type notificationRepo interface {
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, filter domain.NotificationFilter) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error)
	ListUnsent(ctx context.Context, limit int) ([]domain.Notification, error)
	MarkSent(ctx context.Context, ids []uuid.UUID) error
}

// Sender delivers a notification over an external channel (push, email, ...).
type Sender interface {
	Send(ctx context.Context, n domain.Notification) error
}

// Service implements notification operations.
type Service struct {
	log           *slog.Logger
	notifications notificationRepo
	sender        Sender
	cfg           config.PlatformConfig
}

// NewService creates a new notification service instance.
func NewService(logger *slog.Logger, notifications notificationRepo, sender Sender, cfg config.PlatformConfig) *Service {
	return &Service{
		log:           logger.With("service", "notification"),
		notifications: notifications,
		sender:        sender,
		cfg:           cfg,
	}
}

// List returns a page of the user's notifications, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID, filter domain.NotificationFilter) ([]domain.Notification, error) {
	if filter.Limit <= 0 || filter.Limit > s.cfg.FeedPageSize {
		filter.Limit = s.cfg.FeedPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	notifications, err := s.notifications.ListByRecipient(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("notification.List: %w", err)
	}
	return notifications, nil
}

// MarkRead marks a single notification as read. Recipients can only touch
// their own notifications; anything else reports not found.
func (s *Service) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := s.notifications.MarkRead(ctx, notificationID, userID); err != nil {
		return fmt.Errorf("notification.MarkRead: %w", err)
	}
	return nil
}

// MarkAllRead marks every unread notification of the user as read and
// returns how many were affected.
func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("notification.MarkAllRead: %w", err)
	}
	return count, nil
}

// CountUnread returns the user's unread notification count for badges.
func (s *Service) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("notification.CountUnread: %w", err)
	}
	return count, nil
}

// DispatchUnsent delivers a batch of unsent notifications through the sender
// and marks the delivered ones as sent. A failed delivery is logged and
// skipped; it stays unsent and is retried on the next run.
func (s *Service) DispatchUnsent(ctx context.Context, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = 100
	}

	unsent, err := s.notifications.ListUnsent(ctx, batchSize)
	if err != nil {
		return 0, fmt.Errorf("notification.DispatchUnsent list: %w", err)
	}
	if len(unsent) == 0 {
		return 0, nil
	}

	sentIDs := make([]uuid.UUID, 0, len(unsent))
	for _, n := range unsent {
		if err := s.sender.Send(ctx, n); err != nil {
			s.log.WarnContext(ctx, "notification delivery failed",
				slog.String("notification_id", n.ID.String()),
				slog.String("error", err.Error()))
			continue
		}
		sentIDs = append(sentIDs, n.ID)
	}
	if len(sentIDs) == 0 {
		return 0, nil
	}

	if err := s.notifications.MarkSent(ctx, sentIDs); err != nil {
		return 0, fmt.Errorf("notification.DispatchUnsent mark sent: %w", err)
	}

	s.log.InfoContext(ctx, "notifications dispatched",
		slog.Int("sent", len(sentIDs)),
		slog.Int("failed", len(unsent)-len(sentIDs)))

	return len(sentIDs), nil
}
