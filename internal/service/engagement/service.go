// Package engagement implements follows, likes, comments, view and share
// tracking. Every relation write adjusts the matching denormalized counter in
// the same transaction so the tallies never drift from the relation tables
// under normal operation. The Reconcile operation repairs any drift that
// slips in anyway.
package engagement

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/config"
	"github.com/zooner-app/zooner-backend/internal/domain"
)

// followRepo defines the follow repository interface needed by the engagement service.
type followRepo interface {
	Insert(ctx context.Context, f *domain.Follow) (bool, error)
	Delete(ctx context.Context, userID, businessID uuid.UUID) (bool, error)
	Exists(ctx context.Context, userID, businessID uuid.UUID) (bool, error)
}

// likeRepo defines the like repository interface needed by the engagement service.
type likeRepo interface {
	Insert(ctx context.Context, l *domain.Like) (bool, error)
	Delete(ctx context.Context, userID, postID uuid.UUID) (bool, error)
}

// commentRepo defines the comment repository interface needed by the engagement service.
type commentRepo interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]domain.Comment, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// postRepo resolves targets and keeps the post counters in step.
type postRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	AdjustLikesCount(ctx context.Context, id uuid.UUID, delta int) (int, error)
	AdjustCommentsCount(ctx context.Context, id uuid.UUID, delta int) (int, error)
	IncrementViews(ctx context.Context, id uuid.UUID) (int, error)
	IncrementShares(ctx context.Context, id uuid.UUID) (int, error)
	RecountLikes(ctx context.Context) (int, error)
	RecountComments(ctx context.Context) (int, error)
}

// businessRepo resolves targets and keeps the business counters in step.
type businessRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	AdjustFollowersCount(ctx context.Context, id uuid.UUID, delta int) (int, error)
	RecountFollowers(ctx context.Context) (int, error)
	RecountPosts(ctx context.Context) (int, error)
}

// notificationRepo writes engagement notifications.
type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
}

// txManager runs a function within a database transaction.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements engagement operations.
type Service struct {
	log           *slog.Logger
	follows       followRepo
	likes         likeRepo
	comments      commentRepo
	posts         postRepo
	businesses    businessRepo
	notifications notificationRepo
	tx            txManager
	cfg           config.PlatformConfig
}

// NewService creates a new engagement service instance.
func NewService(
	logger *slog.Logger,
	follows followRepo,
	likes likeRepo,
	comments commentRepo,
	posts postRepo,
	businesses businessRepo,
	notifications notificationRepo,
	tx txManager,
	cfg config.PlatformConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "engagement"),
		follows:       follows,
		likes:         likes,
		comments:      comments,
		posts:         posts,
		businesses:    businesses,
		notifications: notifications,
		tx:            tx,
		cfg:           cfg,
	}
}
