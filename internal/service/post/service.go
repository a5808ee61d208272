// Package post implements post publishing for business owners. Creating or
// deleting a post keeps the owning business's posts_count in step within the
// same transaction, and publishing fans a notification out to followers.
package post

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/config"
	"github.com/zooner-app/zooner-backend/internal/domain"
)

// postRepo defines the post repository interface needed by the post service.
type postRepo interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	Update(ctx context.Context, p *domain.Post) (*domain.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// businessRepo resolves post ownership and keeps the posts counter in step.
type businessRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	AdjustPostsCount(ctx context.Context, id uuid.UUID, delta int) (int, error)
}

// followRepo lists followers for notification fanout.
type followRepo interface {
	ListFollowerIDsByBusiness(ctx context.Context, businessID uuid.UUID) ([]uuid.UUID, error)
}

// notificationRepo writes follower notifications in bulk.
type notificationRepo interface {
	CreateBatch(ctx context.Context, notifications []domain.Notification) error
}

// txManager runs a function within a database transaction.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements post operations.
type Service struct {
	log           *slog.Logger
	posts         postRepo
	businesses    businessRepo
	follows       followRepo
	notifications notificationRepo
	tx            txManager
	cfg           config.PlatformConfig
}

// NewService creates a new post service instance.
func NewService(
	logger *slog.Logger,
	posts postRepo,
	businesses businessRepo,
	follows followRepo,
	notifications notificationRepo,
	tx txManager,
	cfg config.PlatformConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "post"),
		posts:         posts,
		businesses:    businesses,
		follows:       follows,
		notifications: notifications,
		tx:            tx,
		cfg:           cfg,
	}
}
