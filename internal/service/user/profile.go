package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

// GetProfile returns the user's own profile.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}
	return u, nil
}

// GetByUsername returns a public profile by username.
// Deactivated profiles are hidden as not found.
func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user.GetByUsername: %w", err)
	}
	if !u.IsActive {
		return nil, fmt.Errorf("user %s: %w", username, domain.ErrNotFound)
	}
	return u, nil
}

// UpdateProfile applies the non-nil fields of input to the user's profile.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Load current state
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile get user: %w", err)
	}

	// Step 3: Apply partial update
	if input.Username != nil {
		u.Username = *input.Username
	}
	if input.PhoneNumber != nil {
		u.PhoneNumber = input.PhoneNumber
	}
	if input.Bio != nil {
		u.Bio = *input.Bio
	}
	if input.Location != nil {
		u.Location = *input.Location
	}
	if input.AvatarURL != nil {
		u.AvatarURL = input.AvatarURL
	}

	updated, err := s.users.Update(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile update: %w", err)
	}

	return updated, nil
}

// ChangePassword verifies the current password, stores the new hash and
// revokes all refresh tokens so other sessions must log in again.
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, input ChangePasswordInput) error {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return err
	}

	// Step 2: Verify the current password
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user.ChangePassword get user: %w", err)
	}

	ok, err := s.hasher.Compare(u.PasswordHash, input.CurrentPassword)
	if err != nil {
		return fmt.Errorf("user.ChangePassword compare: %w", err)
	}
	if !ok {
		return domain.ErrUnauthorized
	}

	// Step 3: Store the new hash
	hash, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return fmt.Errorf("user.ChangePassword hash: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("user.ChangePassword update: %w", err)
	}

	// Step 4: Invalidate all sessions
	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("user.ChangePassword revoke sessions: %w", err)
	}

	s.log.InfoContext(ctx, "password changed",
		slog.String("user_id", userID.String()))

	return nil
}

// Deactivate disables the account and revokes all sessions. The row is kept;
// users are never hard-deleted through the API.
func (s *Service) Deactivate(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.SetActive(ctx, userID, false); err != nil {
		return fmt.Errorf("user.Deactivate: %w", err)
	}
	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("user.Deactivate revoke sessions: %w", err)
	}

	s.log.InfoContext(ctx, "account deactivated",
		slog.String("user_id", userID.String()))

	return nil
}
