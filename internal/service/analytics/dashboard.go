package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
	"github.com/zooner-app/zooner-backend/pkg/ctxutil"
)

const (
	defaultDashboardDays = 30
	maxDashboardDays     = 365
)

// Dashboard bundles everything the owner's analytics screen shows: the
// live engagement totals and the daily history for the requested window.
type Dashboard struct {
	BusinessID     uuid.UUID
	FollowersCount int
	Totals         domain.EngagementTotals
	Daily          []domain.BusinessAnalytics
	From           time.Time
	To             time.Time
}

// GetDashboard returns the analytics dashboard for a business over the last
// days. Only the owner and admins may look.
func (s *Service) GetDashboard(ctx context.Context, userID, businessID uuid.UUID, days int) (*Dashboard, error) {
	if days <= 0 || days > maxDashboardDays {
		days = defaultDashboardDays
	}

	// Step 1: Authorize
	b, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetDashboard get business: %w", err)
	}
	if b.OwnerID != userID && !ctxutil.IsAdminCtx(ctx) {
		return nil, fmt.Errorf("analytics.GetDashboard: user %s is not the owner: %w", userID, domain.ErrForbidden)
	}

	// Step 2: Load live totals and daily history
	totals, err := s.analytics.SumEngagement(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetDashboard sum engagement: %w", err)
	}

	to := time.Now().UTC().Truncate(24 * time.Hour)
	from := to.AddDate(0, 0, -days+1)
	daily, err := s.analytics.ListRange(ctx, businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetDashboard list range: %w", err)
	}

	return &Dashboard{
		BusinessID:     businessID,
		FollowersCount: b.FollowersCount,
		Totals:         *totals,
		Daily:          daily,
		From:           from,
		To:             to,
	}, nil
}
