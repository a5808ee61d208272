package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
	"github.com/zooner-app/zooner-backend/pkg/ctxutil"
)

// Get returns a post by ID. Inactive posts are visible only to their author
// and to admins.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("post.Get: %w", err)
	}
	if !p.IsActive {
		viewerID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok || (viewerID != p.AuthorID && !ctxutil.IsAdminCtx(ctx)) {
			return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
		}
	}
	return p, nil
}

// Update applies the non-nil fields of input to the post. Author only.
func (s *Service) Update(ctx context.Context, userID, postID uuid.UUID, input UpdateInput) (*domain.Post, error) {
	// Step 1: Validate input
	if err := input.Validate(s.cfg.MaxCaptionLength); err != nil {
		return nil, err
	}

	// Step 2: Load and authorize
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("post.Update get: %w", err)
	}
	if p.AuthorID != userID {
		return nil, fmt.Errorf("post.Update: user %s is not the author: %w", userID, domain.ErrForbidden)
	}

	// Step 3: Apply partial update
	if input.Caption != nil {
		p.Caption = *input.Caption
	}
	if input.Type != nil {
		p.Type = *input.Type
	}
	if input.Image != nil {
		p.Image = input.Image
	}
	if input.Video != nil {
		p.Video = input.Video
	}
	if input.Tags != nil {
		p.Tags = input.Tags
	}
	if input.CategoryID != nil {
		p.CategoryID = input.CategoryID
	}
	if input.IsPinned != nil {
		p.IsPinned = *input.IsPinned
	}

	updated, err := s.posts.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("post.Update: %w", err)
	}

	return updated, nil
}

// Delete removes a post and its likes and comments. The author and admins
// may delete. The posts_count decrement happens in the same transaction.
func (s *Service) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("post.Delete get: %w", err)
	}
	if p.AuthorID != userID && !ctxutil.IsAdminCtx(ctx) {
		return fmt.Errorf("post.Delete: user %s is not the author: %w", userID, domain.ErrForbidden)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.posts.Delete(ctx, postID); err != nil {
			return err
		}
		if _, err := s.businesses.AdjustPostsCount(ctx, p.BusinessID, -1); err != nil {
			return fmt.Errorf("adjust posts count: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("post.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "post deleted",
		slog.String("post_id", postID.String()),
		slog.String("business_id", p.BusinessID.String()))

	return nil
}
