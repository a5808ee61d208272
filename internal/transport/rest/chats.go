package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
	"github.com/zooner-app/zooner-backend/internal/service/chat"
)

// chatService defines the minimal interface needed by ChatHandler.
type chatService interface {
	StartChat(ctx context.Context, userID, businessID uuid.UUID) (*domain.Chat, error)
	ListChats(ctx context.Context, userID uuid.UUID) ([]domain.Chat, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	SendMessage(ctx context.Context, userID, chatID uuid.UUID, input chat.SendMessageInput) (*domain.Message, error)
	ListMessages(ctx context.Context, userID, chatID uuid.UUID, limit, offset int) ([]domain.Message, error)
}

// ChatHandler serves chat and message REST endpoints.
type ChatHandler struct {
	svc chatService
	log *slog.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(svc chatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: logger.With("handler", "chat")}
}

type startChatRequest struct {
	BusinessID uuid.UUID `json:"businessId"`
}

type sendMessageRequest struct {
	Content    string             `json:"content"`
	Type       domain.MessageType `json:"type"`
	Attachment *string            `json:"attachment"`
}

type chatResponse struct {
	ID             string      `json:"id"`
	ParticipantIDs []uuid.UUID `json:"participantIds"`
	BusinessID     *uuid.UUID  `json:"businessId,omitempty"`
	Type           string      `json:"type"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

type messageResponse struct {
	ID         string     `json:"id"`
	ChatID     string     `json:"chatId"`
	SenderID   string     `json:"senderId"`
	Content    string     `json:"content,omitempty"`
	Type       string     `json:"type"`
	Attachment *string    `json:"attachment,omitempty"`
	IsRead     bool       `json:"isRead"`
	ReadAt     *time.Time `json:"readAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Start handles POST /api/v1/chats. It returns the existing conversation with
// the business when there is one.
func (h *ChatHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req startChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.StartChat(r.Context(), userID, req.BusinessID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toChatResponse(c))
}

// List handles GET /api/v1/chats.
func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	chats, err := h.svc.ListChats(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]chatResponse, 0, len(chats))
	for i := range chats {
		out = append(out, toChatResponse(&chats[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// CountUnread handles GET /api/v1/chats/unread-count.
func (h *ChatHandler) CountUnread(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	count, err := h.svc.CountUnread(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"unreadCount": count})
}

// SendMessage handles POST /api/v1/chats/{id}/messages.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	chatID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req sendMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := h.svc.SendMessage(r.Context(), userID, chatID, chat.SendMessageInput{
		Content:    req.Content,
		Type:       req.Type,
		Attachment: req.Attachment,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMessageResponse(m))
}

// ListMessages handles GET /api/v1/chats/{id}/messages. Fetching a page marks
// the other side's messages as read.
func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	chatID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	messages, err := h.svc.ListMessages(r.Context(), userID, chatID, queryInt(r, "limit", 0), queryInt(r, "offset", 0))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]messageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, toMessageResponse(&messages[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func toChatResponse(c *domain.Chat) chatResponse {
	return chatResponse{
		ID:             c.ID.String(),
		ParticipantIDs: c.ParticipantIDs,
		BusinessID:     c.BusinessID,
		Type:           c.Type.String(),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toMessageResponse(m *domain.Message) messageResponse {
	return messageResponse{
		ID:         m.ID.String(),
		ChatID:     m.ChatID.String(),
		SenderID:   m.SenderID.String(),
		Content:    m.Content,
		Type:       m.Type.String(),
		Attachment: m.Attachment,
		IsRead:     m.IsRead,
		ReadAt:     m.ReadAt,
		CreatedAt:  m.CreatedAt,
	}
}
