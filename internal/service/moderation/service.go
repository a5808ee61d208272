// Package moderation implements content reporting and the admin review queue.
// A report points at exactly one post, business or user. Pending is the only
// state a report can be reviewed from; the review stamp is written once and
// never overwritten.
package moderation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

// reportRepo defines the report repository interface needed by the moderation service.
type reportRepo interface {
	Create(ctx context.Context, report *domain.ReportedContent) (*domain.ReportedContent, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReportedContent, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.ReportedContent, error)
	Review(ctx context.Context, id uuid.UUID, status domain.ReportStatus, adminNotes string, reviewerID uuid.UUID, reviewedAt time.Time) (*domain.ReportedContent, error)
	List(ctx context.Context, filter domain.ReportFilter) ([]domain.ReportedContent, error)
}

// postRepo verifies post report targets exist.
type postRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
}

// businessRepo verifies business report targets exist.
type businessRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
}

// userRepo verifies user report targets exist.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// txManager runs a function within a database transaction.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements moderation operations.
type Service struct {
	log        *slog.Logger
	reports    reportRepo
	posts      postRepo
	businesses businessRepo
	users      userRepo
	tx         txManager
}

// NewService creates a new moderation service instance.
func NewService(
	logger *slog.Logger,
	reports reportRepo,
	posts postRepo,
	businesses businessRepo,
	users userRepo,
	tx txManager,
) *Service {
	return &Service{
		log:        logger.With("service", "moderation"),
		reports:    reports,
		posts:      posts,
		businesses: businesses,
		users:      users,
		tx:         tx,
	}
}
