package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
	"github.com/zooner-app/zooner-backend/internal/service/post"
)

// postService defines the minimal interface needed by PostHandler.
type postService interface {
	Create(ctx context.Context, authorID uuid.UUID, input post.CreateInput) (*domain.Post, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	Update(ctx context.Context, userID, postID uuid.UUID, input post.UpdateInput) (*domain.Post, error)
	Delete(ctx context.Context, userID, postID uuid.UUID) error
}

// PostHandler serves post publishing REST endpoints.
type PostHandler struct {
	svc postService
	log *slog.Logger
}

// NewPostHandler creates a PostHandler.
func NewPostHandler(svc postService, logger *slog.Logger) *PostHandler {
	return &PostHandler{svc: svc, log: logger.With("handler", "post")}
}

type createPostRequest struct {
	BusinessID uuid.UUID       `json:"businessId"`
	Caption    string          `json:"caption"`
	Type       domain.PostType `json:"type"`
	Image      *string         `json:"image"`
	Video      *string         `json:"video"`
	Tags       []string        `json:"tags"`
	CategoryID *uuid.UUID      `json:"categoryId"`
}

type updatePostRequest struct {
	Caption    *string          `json:"caption"`
	Type       *domain.PostType `json:"type"`
	Image      *string          `json:"image"`
	Video      *string          `json:"video"`
	Tags       []string         `json:"tags"`
	CategoryID *uuid.UUID       `json:"categoryId"`
	IsPinned   *bool            `json:"isPinned"`
}

type postResponse struct {
	ID            string     `json:"id"`
	BusinessID    string     `json:"businessId"`
	AuthorID      string     `json:"authorId"`
	Caption       string     `json:"caption"`
	Type          string     `json:"type"`
	Image         *string    `json:"image,omitempty"`
	Video         *string    `json:"video,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	CategoryID    *uuid.UUID `json:"categoryId,omitempty"`
	LikesCount    int        `json:"likesCount"`
	CommentsCount int        `json:"commentsCount"`
	SharesCount   int        `json:"sharesCount"`
	ViewsCount    int        `json:"viewsCount"`
	IsFeatured    bool       `json:"isFeatured"`
	IsPinned      bool       `json:"isPinned"`
	PublishedAt   time.Time  `json:"publishedAt"`
}

// Create handles POST /api/v1/posts.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req createPostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.Create(r.Context(), userID, post.CreateInput{
		BusinessID: req.BusinessID,
		Caption:    req.Caption,
		Type:       req.Type,
		Image:      req.Image,
		Video:      req.Video,
		Tags:       req.Tags,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPostResponse(p))
}

// Get handles GET /api/v1/posts/{id}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	p, err := h.svc.Get(r.Context(), postID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(p))
}

// Update handles PATCH /api/v1/posts/{id}. Author only.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	postID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updatePostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.Update(r.Context(), userID, postID, post.UpdateInput{
		Caption:    req.Caption,
		Type:       req.Type,
		Image:      req.Image,
		Video:      req.Video,
		Tags:       req.Tags,
		CategoryID: req.CategoryID,
		IsPinned:   req.IsPinned,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(p))
}

// Delete handles DELETE /api/v1/posts/{id}. Author or admin.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	postID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), userID, postID); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:            p.ID.String(),
		BusinessID:    p.BusinessID.String(),
		AuthorID:      p.AuthorID.String(),
		Caption:       p.Caption,
		Type:          p.Type.String(),
		Image:         p.Image,
		Video:         p.Video,
		Tags:          p.Tags,
		CategoryID:    p.CategoryID,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		SharesCount:   p.SharesCount,
		ViewsCount:    p.ViewsCount,
		IsFeatured:    p.IsFeatured,
		IsPinned:      p.IsPinned,
		PublishedAt:   p.PublishedAt,
	}
}

func toPostResponses(posts []domain.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toPostResponse(&posts[i]))
	}
	return out
}
