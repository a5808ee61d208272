package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a record emitted by the core for delivery by an external
// worker. IsSent is owned by that worker and never set by request handlers.
type Notification struct {
	ID         uuid.UUID
	Recipient  uuid.UUID
	Sender     *uuid.UUID
	Type       NotificationType
	Title      string
	Message    string
	PostID     *uuid.UUID
	BusinessID *uuid.UUID
	ChatID     *uuid.UUID
	IsRead     bool
	IsSent     bool
	ReadAt     *time.Time
	CreatedAt  time.Time
}
