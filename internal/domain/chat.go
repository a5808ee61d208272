package domain

import (
	"time"

	"github.com/google/uuid"
)

// Chat is a conversation between two or more participants, optionally
// anchored to a business for user-to-business conversations.
type Chat struct {
	ID             uuid.UUID
	ParticipantIDs []uuid.UUID
	BusinessID     *uuid.UUID
	Type           ChatType
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasParticipant reports whether the given user takes part in the chat.
func (c *Chat) HasParticipant(userID uuid.UUID) bool {
	for _, id := range c.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Message is a single message within a chat.
type Message struct {
	ID         uuid.UUID
	ChatID     uuid.UUID
	SenderID   uuid.UUID
	Content    string
	Type       MessageType
	Attachment *string
	IsRead     bool
	ReadAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
