package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

// RollupDaily writes the daily snapshot for every active business. The
// snapshot for date holds the engagement totals as of the run plus the
// followers gained since the start of that day. Running it again for the
// same date overwrites the previous snapshot, so reruns are safe.
func (s *Service) RollupDaily(ctx context.Context, date time.Time) (int, error) {
	date = date.UTC().Truncate(24 * time.Hour)

	businessIDs, err := s.analytics.ListActiveBusinessIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("analytics.RollupDaily list businesses: %w", err)
	}

	rolled := 0
	for _, businessID := range businessIDs {
		if err := s.rollupBusiness(ctx, businessID, date); err != nil {
			// One broken business must not stall the whole run.
			s.log.WarnContext(ctx, "rollup failed for business",
				slog.String("business_id", businessID.String()),
				slog.String("error", err.Error()))
			continue
		}
		rolled++
	}

	s.log.InfoContext(ctx, "daily rollup finished",
		slog.Time("date", date),
		slog.Int("businesses", rolled),
		slog.Int("failed", len(businessIDs)-rolled))

	return rolled, nil
}

func (s *Service) rollupBusiness(ctx context.Context, businessID uuid.UUID, date time.Time) error {
	totals, err := s.analytics.SumEngagement(ctx, businessID)
	if err != nil {
		return fmt.Errorf("sum engagement: %w", err)
	}

	newFollowers, err := s.follows.CountSince(ctx, businessID, date)
	if err != nil {
		return fmt.Errorf("count new followers: %w", err)
	}

	snapshot := &domain.BusinessAnalytics{
		ID:             uuid.New(),
		BusinessID:     businessID,
		Date:           date,
		PostViews:      totals.TotalViews,
		NewFollowers:   newFollowers,
		TotalLikes:     totals.TotalLikes,
		TotalComments:  totals.TotalComments,
		TotalShares:    totals.TotalShares,
		EngagementRate: engagementRate(totals),
		Reach:          totals.TotalViews,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
	if err := s.analytics.Upsert(ctx, snapshot); err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

// engagementRate is interactions per view, as a percentage. Zero views means
// zero rate rather than a division by zero.
func engagementRate(t *domain.EngagementTotals) float64 {
	if t.TotalViews == 0 {
		return 0
	}
	return float64(t.Interactions()) / float64(t.TotalViews) * 100
}
