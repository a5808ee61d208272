package business

import (
	"context"
	"fmt"

	"github.com/zooner-app/zooner-backend/internal/domain"
	"github.com/zooner-app/zooner-backend/pkg/ctxutil"
)

// List returns a filtered page of businesses. Non-admin callers only ever
// see active businesses; an explicit status filter from an admin is honored.
func (s *Service) List(ctx context.Context, filter domain.BusinessFilter) ([]domain.Business, error) {
	if filter.Status == nil || !ctxutil.IsAdminCtx(ctx) {
		active := domain.BusinessStatusActive
		filter.Status = &active
	}
	if filter.Limit <= 0 || filter.Limit > s.cfg.FeedPageSize {
		filter.Limit = s.cfg.FeedPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	businesses, err := s.businesses.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("business.List: %w", err)
	}
	return businesses, nil
}
