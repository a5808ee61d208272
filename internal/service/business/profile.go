package business

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
	"github.com/zooner-app/zooner-backend/pkg/ctxutil"
)

// GetByID returns a business by ID. Non-active businesses are visible only
// to their owner and to admins.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	b, err := s.businesses.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("business.GetByID: %w", err)
	}
	if err := s.checkVisible(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetBySlug returns a business by its URL slug and records a profile view
// for the owner dashboard. Views by the owner are not counted.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.Business, error) {
	b, err := s.businesses.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("business.GetBySlug: %w", err)
	}
	if err := s.checkVisible(ctx, b); err != nil {
		return nil, err
	}

	viewerID, _ := ctxutil.UserIDFromCtx(ctx)
	if viewerID != b.OwnerID && b.Status == domain.BusinessStatusActive {
		// Analytics failures never fail the read.
		if err := s.analytics.IncrementProfileViews(ctx, b.ID, time.Now().UTC()); err != nil {
			s.log.WarnContext(ctx, "failed to record profile view",
				slog.String("business_id", b.ID.String()),
				slog.String("error", err.Error()))
		}
	}

	return b, nil
}

// checkVisible hides non-active businesses from everyone but the owner and
// admins, reporting not found rather than forbidden.
func (s *Service) checkVisible(ctx context.Context, b *domain.Business) error {
	if b.Status == domain.BusinessStatusActive {
		return nil
	}
	viewerID, ok := ctxutil.UserIDFromCtx(ctx)
	if ok && (viewerID == b.OwnerID || ctxutil.IsAdminCtx(ctx)) {
		return nil
	}
	return fmt.Errorf("business %s: %w", b.ID, domain.ErrNotFound)
}

// Update applies the non-nil fields of input to the business profile.
// Only the owner may update; slug, owner, status and counters are immutable
// through this operation.
func (s *Service) Update(ctx context.Context, userID, businessID uuid.UUID, input UpdateInput) (*domain.Business, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Load and authorize
	b, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("business.Update get: %w", err)
	}
	if b.OwnerID != userID {
		return nil, fmt.Errorf("business.Update: user %s is not the owner: %w", userID, domain.ErrForbidden)
	}

	// Step 3: Apply partial update
	if input.Name != nil {
		b.Name = *input.Name
	}
	if input.Description != nil {
		b.Description = *input.Description
	}
	if input.Address != nil {
		b.Address = *input.Address
	}
	if input.Latitude != nil {
		b.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		b.Longitude = input.Longitude
	}
	if input.CategoryID != nil {
		b.CategoryID = input.CategoryID
	}
	if input.Phone != nil {
		b.Phone = *input.Phone
	}
	if input.Email != nil {
		b.Email = *input.Email
	}
	if input.Website != nil {
		b.Website = *input.Website
	}
	if input.HeroImage != nil {
		b.HeroImage = input.HeroImage
	}
	if input.Logo != nil {
		b.Logo = input.Logo
	}
	if input.Hours != nil {
		b.Hours = input.Hours
	}

	updated, err := s.businesses.Update(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("business.Update: %w", err)
	}

	return updated, nil
}

// ListMine returns all businesses owned by the given user, regardless of status.
func (s *Service) ListMine(ctx context.Context, ownerID uuid.UUID) ([]domain.Business, error) {
	businesses, err := s.businesses.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("business.ListMine: %w", err)
	}
	return businesses, nil
}

// UpdateStatus moves a business to a new lifecycle status. Admin only,
// enforced at the transport layer.
func (s *Service) UpdateStatus(ctx context.Context, businessID uuid.UUID, status domain.BusinessStatus) error {
	if !status.IsValid() {
		return domain.NewValidationError("status", "unknown status")
	}
	if err := s.businesses.UpdateStatus(ctx, businessID, status); err != nil {
		return fmt.Errorf("business.UpdateStatus: %w", err)
	}

	s.log.InfoContext(ctx, "business status updated",
		slog.String("business_id", businessID.String()),
		slog.String("status", status.String()))

	return nil
}
