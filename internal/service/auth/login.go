package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

// Login authenticates a user with email + password.
// Returns ErrUnauthorized if the email is not found, the password is wrong,
// or the account has been deactivated.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Find user by email
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	// Step 3: Verify password
	ok, err := s.hasher.Compare(user.PasswordHash, input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Login compare password: %w", err)
	}
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 4: Deactivated accounts cannot log in
	if !user.IsActive {
		return nil, domain.ErrUnauthorized
	}

	// Step 5: Record activity; failure here must not block login
	if err := s.users.TouchLastActive(ctx, user.ID, time.Now()); err != nil {
		s.log.WarnContext(ctx, "failed to touch last_active",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()))
	}

	// Step 6: Issue tokens
	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return result, nil
}
