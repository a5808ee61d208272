package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

// ValidateToken checks an access token signature and expiry and returns the
// subject user ID and role. The transport middleware calls it on every
// authenticated request, so it is a pure JWT check with no database round trip.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	userID, role, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("auth.ValidateToken: %w", domain.ErrUnauthorized)
	}
	return userID, role, nil
}
