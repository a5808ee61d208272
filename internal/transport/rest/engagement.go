package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
	"github.com/zooner-app/zooner-backend/internal/service/engagement"
)

// engagementService defines the minimal interface needed by EngagementHandler.
type engagementService interface {
	ToggleFollow(ctx context.Context, userID, businessID uuid.UUID) (*engagement.FollowState, error)
	IsFollowing(ctx context.Context, userID, businessID uuid.UUID) (bool, error)
	ToggleLike(ctx context.Context, userID, postID uuid.UUID) (*engagement.LikeState, error)
	RecordView(ctx context.Context, postID uuid.UUID) (int, error)
	RecordShare(ctx context.Context, postID uuid.UUID) (int, error)
	AddComment(ctx context.Context, userID uuid.UUID, input engagement.AddCommentInput) (*domain.Comment, error)
	ListComments(ctx context.Context, postID uuid.UUID, limit, offset int) ([]domain.Comment, error)
	DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error
}

// EngagementHandler serves follow, like, view, share and comment endpoints.
type EngagementHandler struct {
	svc engagementService
	log *slog.Logger
}

// NewEngagementHandler creates an EngagementHandler.
func NewEngagementHandler(svc engagementService, logger *slog.Logger) *EngagementHandler {
	return &EngagementHandler{svc: svc, log: logger.With("handler", "engagement")}
}

type followStateResponse struct {
	Following      bool `json:"following"`
	FollowersCount int  `json:"followersCount"`
}

type likeStateResponse struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likesCount"`
}

type addCommentRequest struct {
	ParentID *uuid.UUID `json:"parentId"`
	Content  string     `json:"content"`
}

type commentResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	PostID    string     `json:"postId"`
	ParentID  *uuid.UUID `json:"parentId,omitempty"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ToggleFollow handles POST /api/v1/businesses/{id}/follow.
func (h *EngagementHandler) ToggleFollow(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	businessID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	state, err := h.svc.ToggleFollow(r.Context(), userID, businessID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, followStateResponse{
		Following:      state.Following,
		FollowersCount: state.FollowersCount,
	})
}

// IsFollowing handles GET /api/v1/businesses/{id}/follow.
func (h *EngagementHandler) IsFollowing(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	businessID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	following, err := h.svc.IsFollowing(r.Context(), userID, businessID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"following": following})
}

// ToggleLike handles POST /api/v1/posts/{id}/like.
func (h *EngagementHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	postID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	state, err := h.svc.ToggleLike(r.Context(), userID, postID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, likeStateResponse{
		Liked:      state.Liked,
		LikesCount: state.LikesCount,
	})
}

// RecordView handles POST /api/v1/posts/{id}/view. Views are anonymous.
func (h *EngagementHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	count, err := h.svc.RecordView(r.Context(), postID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"viewsCount": count})
}

// RecordShare handles POST /api/v1/posts/{id}/share.
func (h *EngagementHandler) RecordShare(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	count, err := h.svc.RecordShare(r.Context(), postID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"sharesCount": count})
}

// AddComment handles POST /api/v1/posts/{id}/comments.
func (h *EngagementHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	postID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req addCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.AddComment(r.Context(), userID, engagement.AddCommentInput{
		PostID:   postID,
		ParentID: req.ParentID,
		Content:  req.Content,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentResponse(c))
}

// ListComments handles GET /api/v1/posts/{id}/comments.
func (h *EngagementHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	comments, err := h.svc.ListComments(r.Context(), postID, queryInt(r, "limit", 0), queryInt(r, "offset", 0))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]commentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, toCommentResponse(&comments[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// DeleteComment handles DELETE /api/v1/comments/{id}. Author or admin.
func (h *EngagementHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	commentID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteComment(r.Context(), userID, commentID); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID.String(),
		UserID:    c.UserID.String(),
		PostID:    c.PostID.String(),
		ParentID:  c.ParentID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
