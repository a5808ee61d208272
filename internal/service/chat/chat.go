package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

// StartChat opens a conversation between the user and a business, or returns
// the existing one. Exactly one user-business chat exists per pair.
func (s *Service) StartChat(ctx context.Context, userID, businessID uuid.UUID) (*domain.Chat, error) {
	// Step 1: Resolve the business
	b, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("chat.StartChat get business: %w", err)
	}
	if b.Status != domain.BusinessStatusActive {
		return nil, fmt.Errorf("chat.StartChat: business is %s: %w", b.Status, domain.ErrNotFound)
	}
	if b.OwnerID == userID {
		return nil, fmt.Errorf("chat.StartChat: owners cannot message their own business: %w", domain.ErrForbidden)
	}

	// Step 2: Reuse the existing conversation if there is one
	existing, err := s.chats.FindUserBusinessChat(ctx, userID, businessID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("chat.StartChat find: %w", err)
	}

	// Step 3: Create the chat with both participants
	c := &domain.Chat{
		ID:             uuid.New(),
		ParticipantIDs: []uuid.UUID{userID, b.OwnerID},
		BusinessID:     &businessID,
		Type:           domain.ChatTypeUserBusiness,
		IsActive:       true,
	}
	var created *domain.Chat
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err = s.chats.Create(ctx, c)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("chat.StartChat create: %w", err)
	}

	s.log.InfoContext(ctx, "chat started",
		slog.String("chat_id", created.ID.String()),
		slog.String("business_id", businessID.String()))

	return created, nil
}

// ListChats returns the user's active conversations, most recently active first.
func (s *Service) ListChats(ctx context.Context, userID uuid.UUID) ([]domain.Chat, error) {
	chats, err := s.chats.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("chat.ListChats: %w", err)
	}
	return chats, nil
}

// CountUnread returns the number of unread messages across all of the user's chats.
func (s *Service) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := s.chats.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("chat.CountUnread: %w", err)
	}
	return count, nil
}

// requireParticipant loads the chat and verifies membership. Non-participants
// get not found rather than forbidden so chat IDs leak nothing.
func (s *Service) requireParticipant(ctx context.Context, chatID, userID uuid.UUID) (*domain.Chat, error) {
	c, err := s.chats.GetByID(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("get chat: %w", err)
	}
	if !c.HasParticipant(userID) {
		return nil, fmt.Errorf("chat %s: %w", chatID, domain.ErrNotFound)
	}
	return c, nil
}
