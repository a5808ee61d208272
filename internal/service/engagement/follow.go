package engagement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

// FollowState is the outcome of a follow toggle.
type FollowState struct {
	Following      bool
	FollowersCount int
}

// ToggleFollow follows the business if the user does not follow it yet,
// otherwise unfollows. The relation row and the followers_count adjustment
// are written in one transaction, so repeated or concurrent toggles cannot
// skew the counter.
func (s *Service) ToggleFollow(ctx context.Context, userID, businessID uuid.UUID) (*FollowState, error) {
	b, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("engagement.ToggleFollow get business: %w", err)
	}
	if b.Status != domain.BusinessStatusActive {
		return nil, fmt.Errorf("engagement.ToggleFollow: business is %s: %w", b.Status, domain.ErrNotFound)
	}
	if b.OwnerID == userID {
		return nil, fmt.Errorf("engagement.ToggleFollow: owners cannot follow their own business: %w", domain.ErrForbidden)
	}

	state := &FollowState{FollowersCount: b.FollowersCount}
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		inserted, err := s.follows.Insert(ctx, &domain.Follow{
			ID:         uuid.New(),
			UserID:     userID,
			BusinessID: businessID,
		})
		if err != nil {
			return fmt.Errorf("insert follow: %w", err)
		}
		if inserted {
			state.Following = true
			state.FollowersCount, err = s.businesses.AdjustFollowersCount(ctx, businessID, 1)
			if err != nil {
				return fmt.Errorf("adjust followers count: %w", err)
			}
			return s.notifyFollowed(ctx, userID, b)
		}

		// Already following, so this toggle is an unfollow.
		deleted, err := s.follows.Delete(ctx, userID, businessID)
		if err != nil {
			return fmt.Errorf("delete follow: %w", err)
		}
		if deleted {
			state.FollowersCount, err = s.businesses.AdjustFollowersCount(ctx, businessID, -1)
			if err != nil {
				return fmt.Errorf("adjust followers count: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("engagement.ToggleFollow: %w", err)
	}

	s.log.InfoContext(ctx, "follow toggled",
		slog.String("user_id", userID.String()),
		slog.String("business_id", businessID.String()),
		slog.Bool("following", state.Following))

	return state, nil
}

// IsFollowing reports whether the user currently follows the business.
func (s *Service) IsFollowing(ctx context.Context, userID, businessID uuid.UUID) (bool, error) {
	following, err := s.follows.Exists(ctx, userID, businessID)
	if err != nil {
		return false, fmt.Errorf("engagement.IsFollowing: %w", err)
	}
	return following, nil
}

func (s *Service) notifyFollowed(ctx context.Context, followerID uuid.UUID, b *domain.Business) error {
	n := &domain.Notification{
		ID:         uuid.New(),
		Recipient:  b.OwnerID,
		Sender:     &followerID,
		Type:       domain.NotificationTypeFollow,
		Title:      "New follower",
		Message:    fmt.Sprintf("Someone started following %s", b.Name),
		BusinessID: &b.ID,
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		return fmt.Errorf("create follow notification: %w", err)
	}
	return nil
}
