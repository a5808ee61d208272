package post

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

// notificationCaptionLimit truncates captions embedded in follower
// notifications.
const notificationCaptionLimit = 120

// Create publishes a new post for a business. Only the owner of an active
// business may post. The post row, the posts_count bump and the follower
// notifications are written in a single transaction.
func (s *Service) Create(ctx context.Context, authorID uuid.UUID, input CreateInput) (*domain.Post, error) {
	// Step 1: Validate input
	if err := input.Validate(s.cfg.MaxCaptionLength); err != nil {
		return nil, err
	}

	// Step 2: Authorize against the business
	b, err := s.businesses.GetByID(ctx, input.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("post.Create get business: %w", err)
	}
	if b.OwnerID != authorID {
		return nil, fmt.Errorf("post.Create: user %s is not the owner: %w", authorID, domain.ErrForbidden)
	}
	if b.Status != domain.BusinessStatusActive {
		return nil, fmt.Errorf("post.Create: business is %s: %w", b.Status, domain.ErrForbidden)
	}

	now := time.Now().UTC()
	p := &domain.Post{
		ID:          uuid.New(),
		BusinessID:  input.BusinessID,
		AuthorID:    authorID,
		Caption:     input.Caption,
		Type:        input.Type,
		Image:       input.Image,
		Video:       input.Video,
		Tags:        input.Tags,
		CategoryID:  input.CategoryID,
		IsActive:    true,
		PublishedAt: now,
	}

	// Step 3: Write post, counter and follower notifications atomically
	var created *domain.Post
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err = s.posts.Create(ctx, p)
		if err != nil {
			return err
		}
		if _, err := s.businesses.AdjustPostsCount(ctx, b.ID, 1); err != nil {
			return fmt.Errorf("adjust posts count: %w", err)
		}
		return s.notifyFollowers(ctx, b, created)
	})
	if err != nil {
		return nil, fmt.Errorf("post.Create: %w", err)
	}

	s.log.InfoContext(ctx, "post published",
		slog.String("post_id", created.ID.String()),
		slog.String("business_id", b.ID.String()))

	return created, nil
}

// notifyFollowers writes one notification per follower of the business.
// The author does not get notified about their own post.
func (s *Service) notifyFollowers(ctx context.Context, b *domain.Business, p *domain.Post) error {
	followerIDs, err := s.follows.ListFollowerIDsByBusiness(ctx, b.ID)
	if err != nil {
		return fmt.Errorf("list followers: %w", err)
	}

	notifications := make([]domain.Notification, 0, len(followerIDs))
	for _, followerID := range followerIDs {
		if followerID == p.AuthorID {
			continue
		}
		notifications = append(notifications, domain.Notification{
			ID:         uuid.New(),
			Recipient:  followerID,
			Sender:     &p.AuthorID,
			Type:       domain.NotificationTypePost,
			Title:      b.Name,
			Message:    truncate(p.Caption, notificationCaptionLimit),
			PostID:     &p.ID,
			BusinessID: &b.ID,
		})
	}
	if len(notifications) == 0 {
		return nil
	}
	if err := s.notifications.CreateBatch(ctx, notifications); err != nil {
		return fmt.Errorf("create notifications: %w", err)
	}
	return nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}
