package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
	"github.com/zooner-app/zooner-backend/internal/service/feed"
)

// feedService defines the minimal interface needed by FeedHandler.
type feedService interface {
	ListPosts(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error)
	Search(ctx context.Context, query string, townName *string) (*feed.SearchResult, error)
}

// FeedHandler serves the public feed and combined search endpoints.
type FeedHandler struct {
	svc feedService
	log *slog.Logger
}

// NewFeedHandler creates a FeedHandler.
func NewFeedHandler(svc feedService, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{svc: svc, log: logger.With("handler", "feed")}
}

type searchResponse struct {
	Posts      []postResponse     `json:"posts"`
	Businesses []businessResponse `json:"businesses"`
}

// ListPosts handles GET /api/v1/feed.
func (h *FeedHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	filter := domain.PostFilter{
		FollowingOnly: r.URL.Query().Get("following") == "true",
		Limit:         queryInt(r, "limit", 0),
		Offset:        queryInt(r, "offset", 0),
	}
	if v := r.URL.Query().Get("town"); v != "" {
		filter.TownName = &v
	}
	if v := r.URL.Query().Get("business_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filter.BusinessID = &id
		}
	}
	if v := r.URL.Query().Get("type"); v != "" {
		t := domain.PostType(v)
		filter.Type = &t
	}
	if v := r.URL.Query().Get("category_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filter.CategoryID = &id
		}
	}

	posts, err := h.svc.ListPosts(r.Context(), filter)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponses(posts))
}

// Search handles GET /api/v1/search?q=&town=.
func (h *FeedHandler) Search(w http.ResponseWriter, r *http.Request) {
	var townName *string
	if v := r.URL.Query().Get("town"); v != "" {
		townName = &v
	}

	result, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"), townName)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Posts:      toPostResponses(result.Posts),
		Businesses: toBusinessResponses(result.Businesses),
	})
}
