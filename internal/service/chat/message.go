package chat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

const maxMessageLength = 4000

// SendMessageInput holds parameters for the message send operation.
type SendMessageInput struct {
	Content    string
	Type       domain.MessageType
	Attachment *string
}

// Validate validates the message input. An empty type defaults to text.
func (i *SendMessageInput) Validate() error {
	var errs []domain.FieldError

	if i.Type == "" {
		i.Type = domain.MessageTypeText
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown message type"})
	}
	if i.Content == "" && i.Attachment == nil {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(i.Content) > maxMessageLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SendMessage appends a message to the chat, bumps the chat's activity
// timestamp and notifies the other participants. Only participants may send.
func (s *Service) SendMessage(ctx context.Context, userID, chatID uuid.UUID, input SendMessageInput) (*domain.Message, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Authorize
	c, err := s.requireParticipant(ctx, chatID, userID)
	if err != nil {
		return nil, fmt.Errorf("chat.SendMessage: %w", err)
	}
	if !c.IsActive {
		return nil, fmt.Errorf("chat.SendMessage: chat %s: %w", chatID, domain.ErrNotFound)
	}

	m := &domain.Message{
		ID:         uuid.New(),
		ChatID:     chatID,
		SenderID:   userID,
		Content:    input.Content,
		Type:       input.Type,
		Attachment: input.Attachment,
	}

	// Step 3: Write message, touch the chat and notify atomically
	var created *domain.Message
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err = s.chats.CreateMessage(ctx, m)
		if err != nil {
			return err
		}
		if err := s.chats.Touch(ctx, chatID); err != nil {
			return fmt.Errorf("touch chat: %w", err)
		}
		return s.notifyParticipants(ctx, c, created)
	})
	if err != nil {
		return nil, fmt.Errorf("chat.SendMessage: %w", err)
	}

	return created, nil
}

// ListMessages returns a page of the chat's messages, newest first, and marks
// the other side's messages as read. Only participants may read.
func (s *Service) ListMessages(ctx context.Context, userID, chatID uuid.UUID, limit, offset int) ([]domain.Message, error) {
	if limit <= 0 || limit > s.cfg.FeedPageSize {
		limit = s.cfg.FeedPageSize
	}
	if offset < 0 {
		offset = 0
	}

	if _, err := s.requireParticipant(ctx, chatID, userID); err != nil {
		return nil, fmt.Errorf("chat.ListMessages: %w", err)
	}

	// Opening the conversation counts as reading it.
	read, err := s.chats.MarkMessagesRead(ctx, chatID, userID)
	if err != nil {
		return nil, fmt.Errorf("chat.ListMessages mark read: %w", err)
	}
	if read > 0 {
		s.log.DebugContext(ctx, "messages marked read",
			slog.String("chat_id", chatID.String()),
			slog.Int("count", read))
	}

	messages, err := s.chats.ListMessages(ctx, chatID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("chat.ListMessages: %w", err)
	}
	return messages, nil
}

// notifyParticipants tells everyone in the chat except the sender about the
// new message.
func (s *Service) notifyParticipants(ctx context.Context, c *domain.Chat, m *domain.Message) error {
	for _, participantID := range c.ParticipantIDs {
		if participantID == m.SenderID {
			continue
		}
		n := &domain.Notification{
			ID:         uuid.New(),
			Recipient:  participantID,
			Sender:     &m.SenderID,
			Type:       domain.NotificationTypeMessage,
			Title:      "New message",
			Message:    "You have a new message",
			BusinessID: c.BusinessID,
			ChatID:     &c.ID,
		}
		if err := s.notifications.Create(ctx, n); err != nil {
			return fmt.Errorf("create message notification: %w", err)
		}
	}
	return nil
}
