package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/auth"
	"github.com/zooner-app/zooner-backend/internal/domain"
)

// Logout revokes the presented refresh token. Unknown tokens are treated as
// success so logout stays idempotent.
func (s *Service) Logout(ctx context.Context, input RefreshInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	token, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("auth.Logout get token: %w", err)
	}

	if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
		return fmt.Errorf("auth.Logout revoke token: %w", err)
	}

	return nil
}

// LogoutAll revokes every active refresh token of the user.
func (s *Service) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.LogoutAll: %w", err)
	}
	return nil
}

// CleanupExpiredTokens deletes expired and revoked refresh tokens.
// Called by the maintenance binary, not by request handlers.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	count, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}
	return count, nil
}
