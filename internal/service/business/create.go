package business

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

// Create registers a new business profile for the given owner. The business
// starts in the pending status until an admin approves it. The first business
// a plain user creates promotes their role to business; both writes happen in
// one transaction.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, input CreateInput) (*domain.Business, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Enforce the per-owner limit
	count, err := s.businesses.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("business.Create count by owner: %w", err)
	}
	if count >= s.cfg.MaxBusinessesPerOwner {
		return nil, fmt.Errorf("business.Create: owner has %d businesses: %w", count, domain.ErrForbidden)
	}

	// Step 3: Resolve references
	if _, err := s.towns.GetByID(ctx, input.TownID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("town_id", "unknown town")
		}
		return nil, fmt.Errorf("business.Create get town: %w", err)
	}
	if input.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NewValidationError("category_id", "unknown category")
			}
			return nil, fmt.Errorf("business.Create get category: %w", err)
		}
	}

	owner, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("business.Create get owner: %w", err)
	}

	b := &domain.Business{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        input.Name,
		Slug:        domain.Slugify(input.Name),
		Description: input.Description,
		TownID:      input.TownID,
		Address:     input.Address,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		CategoryID:  input.CategoryID,
		Phone:       input.Phone,
		Email:       input.Email,
		Website:     input.Website,
		Hours:       input.Hours,
		Status:      domain.BusinessStatusPending,
	}

	// Step 4: Resolve slug collisions before entering the transaction. A
	// conflicting insert would poison the transaction, so the rare race
	// left here surfaces as ErrAlreadyExists and the client retries.
	slug, err := s.resolveSlug(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("business.Create resolve slug: %w", err)
	}
	b.Slug = slug

	// Step 5: Create the business and promote the owner atomically
	var created *domain.Business
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err = s.businesses.Create(ctx, b)
		if err != nil {
			return err
		}
		if owner.Role == domain.UserRoleUser {
			if err := s.users.UpdateRole(ctx, ownerID, domain.UserRoleBusiness); err != nil {
				return fmt.Errorf("promote owner: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("business.Create: %w", err)
	}

	s.log.InfoContext(ctx, "business created",
		slog.String("business_id", created.ID.String()),
		slog.String("owner_id", ownerID.String()),
		slog.String("slug", created.Slug))

	return created, nil
}

// resolveSlug returns the name-derived slug, or an ID-suffixed variant when
// the base slug is already taken.
func (s *Service) resolveSlug(ctx context.Context, b *domain.Business) (string, error) {
	_, err := s.businesses.GetBySlug(ctx, b.Slug)
	if errors.Is(err, domain.ErrNotFound) {
		return b.Slug, nil
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", b.Slug, b.ID.String()[:8]), nil
}
