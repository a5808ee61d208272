// Package feed serves the public post feed and combined search.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/config"
	"github.com/zooner-app/zooner-backend/internal/domain"
	"github.com/zooner-app/zooner-backend/pkg/ctxutil"
)

// postRepo defines the post repository interface needed by the feed service.
type postRepo interface {
	List(ctx context.Context, viewerID *uuid.UUID, filter domain.PostFilter) ([]domain.Post, error)
	Search(ctx context.Context, search string, townName *string, limit int) ([]domain.Post, error)
}

// businessRepo serves the business half of combined search.
type businessRepo interface {
	Search(ctx context.Context, search string, townName *string, limit int) ([]domain.Business, error)
}

// Service implements feed operations.
type Service struct {
	log        *slog.Logger
	posts      postRepo
	businesses businessRepo
	cfg        config.PlatformConfig
}

// NewService creates a new feed service instance.
func NewService(logger *slog.Logger, posts postRepo, businesses businessRepo, cfg config.PlatformConfig) *Service {
	return &Service{
		log:        logger.With("service", "feed"),
		posts:      posts,
		businesses: businesses,
		cfg:        cfg,
	}
}

// ListPosts returns a page of the post feed. Only active posts from active
// businesses appear. FollowingOnly is honored for authenticated viewers and
// silently ignored otherwise.
func (s *Service) ListPosts(ctx context.Context, filter domain.PostFilter) ([]domain.Post, error) {
	if filter.Limit <= 0 || filter.Limit > s.cfg.FeedPageSize {
		filter.Limit = s.cfg.FeedPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	var viewerID *uuid.UUID
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		viewerID = &id
	}
	if viewerID == nil {
		filter.FollowingOnly = false
	}

	posts, err := s.posts.List(ctx, viewerID, filter)
	if err != nil {
		return nil, fmt.Errorf("feed.ListPosts: %w", err)
	}
	return posts, nil
}

// SearchResult bundles the two halves of a combined search.
type SearchResult struct {
	Posts      []domain.Post
	Businesses []domain.Business
}

// Search looks the query up in post captions and in business names and
// descriptions, returning the top matches of each kind. The optional town
// name narrows both halves. A blank query is a validation error.
func (s *Service) Search(ctx context.Context, query string, townName *string) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewValidationError("q", "required")
	}

	posts, err := s.posts.Search(ctx, query, townName, s.cfg.SearchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("feed.Search posts: %w", err)
	}
	businesses, err := s.businesses.Search(ctx, query, townName, s.cfg.SearchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("feed.Search businesses: %w", err)
	}

	return &SearchResult{Posts: posts, Businesses: businesses}, nil
}
