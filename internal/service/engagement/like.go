package engagement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

// LikeState is the outcome of a like toggle.
type LikeState struct {
	Liked      bool
	LikesCount int
}

// ToggleLike likes the post if the user has not liked it yet, otherwise
// removes the like. Relation row and likes_count move together in one
// transaction.
func (s *Service) ToggleLike(ctx context.Context, userID, postID uuid.UUID) (*LikeState, error) {
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("engagement.ToggleLike get post: %w", err)
	}
	if !p.IsActive {
		return nil, fmt.Errorf("engagement.ToggleLike: post %s: %w", postID, domain.ErrNotFound)
	}

	state := &LikeState{LikesCount: p.LikesCount}
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		inserted, err := s.likes.Insert(ctx, &domain.Like{
			ID:     uuid.New(),
			UserID: userID,
			PostID: postID,
		})
		if err != nil {
			return fmt.Errorf("insert like: %w", err)
		}
		if inserted {
			state.Liked = true
			state.LikesCount, err = s.posts.AdjustLikesCount(ctx, postID, 1)
			if err != nil {
				return fmt.Errorf("adjust likes count: %w", err)
			}
			return s.notifyLiked(ctx, userID, p)
		}

		deleted, err := s.likes.Delete(ctx, userID, postID)
		if err != nil {
			return fmt.Errorf("delete like: %w", err)
		}
		if deleted {
			state.LikesCount, err = s.posts.AdjustLikesCount(ctx, postID, -1)
			if err != nil {
				return fmt.Errorf("adjust likes count: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("engagement.ToggleLike: %w", err)
	}

	s.log.InfoContext(ctx, "like toggled",
		slog.String("user_id", userID.String()),
		slog.String("post_id", postID.String()),
		slog.Bool("liked", state.Liked))

	return state, nil
}

// notifyLiked tells the post author about a new like. Authors liking their
// own posts are not notified.
func (s *Service) notifyLiked(ctx context.Context, likerID uuid.UUID, p *domain.Post) error {
	if likerID == p.AuthorID {
		return nil
	}
	n := &domain.Notification{
		ID:         uuid.New(),
		Recipient:  p.AuthorID,
		Sender:     &likerID,
		Type:       domain.NotificationTypeLike,
		Title:      "New like",
		Message:    "Someone liked your post",
		PostID:     &p.ID,
		BusinessID: &p.BusinessID,
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		return fmt.Errorf("create like notification: %w", err)
	}
	return nil
}

// RecordView bumps the post's view counter. Views are fire-and-forget from
// the client's point of view; the new total is returned for convenience.
func (s *Service) RecordView(ctx context.Context, postID uuid.UUID) (int, error) {
	count, err := s.posts.IncrementViews(ctx, postID)
	if err != nil {
		return 0, fmt.Errorf("engagement.RecordView: %w", err)
	}
	return count, nil
}

// RecordShare bumps the post's share counter.
func (s *Service) RecordShare(ctx context.Context, postID uuid.UUID) (int, error) {
	count, err := s.posts.IncrementShares(ctx, postID)
	if err != nil {
		return 0, fmt.Errorf("engagement.RecordShare: %w", err)
	}
	return count, nil
}
