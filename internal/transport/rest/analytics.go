package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/service/analytics"
)

// analyticsService defines the minimal interface needed by AnalyticsHandler.
type analyticsService interface {
	GetDashboard(ctx context.Context, userID, businessID uuid.UUID, days int) (*analytics.Dashboard, error)
}

// AnalyticsHandler serves the business analytics dashboard endpoint.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

type dashboardResponse struct {
	BusinessID     string               `json:"businessId"`
	FollowersCount int                  `json:"followersCount"`
	Totals         engagementTotalsJSON `json:"totals"`
	Daily          []dailyAnalyticsJSON `json:"daily"`
	From           time.Time            `json:"from"`
	To             time.Time            `json:"to"`
}

type engagementTotalsJSON struct {
	PostCount     int `json:"postCount"`
	TotalLikes    int `json:"totalLikes"`
	TotalComments int `json:"totalComments"`
	TotalShares   int `json:"totalShares"`
	TotalViews    int `json:"totalViews"`
}

type dailyAnalyticsJSON struct {
	Date           time.Time `json:"date"`
	ProfileViews   int       `json:"profileViews"`
	PostViews      int       `json:"postViews"`
	NewFollowers   int       `json:"newFollowers"`
	TotalLikes     int       `json:"totalLikes"`
	TotalComments  int       `json:"totalComments"`
	TotalShares    int       `json:"totalShares"`
	EngagementRate float64   `json:"engagementRate"`
	Reach          int       `json:"reach"`
}

// Dashboard handles GET /api/v1/businesses/{id}/analytics?days=30.
// Owner and admins only.
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	businessID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	dashboard, err := h.svc.GetDashboard(r.Context(), userID, businessID, queryInt(r, "days", 0))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	daily := make([]dailyAnalyticsJSON, 0, len(dashboard.Daily))
	for _, d := range dashboard.Daily {
		daily = append(daily, dailyAnalyticsJSON{
			Date:           d.Date,
			ProfileViews:   d.ProfileViews,
			PostViews:      d.PostViews,
			NewFollowers:   d.NewFollowers,
			TotalLikes:     d.TotalLikes,
			TotalComments:  d.TotalComments,
			TotalShares:    d.TotalShares,
			EngagementRate: d.EngagementRate,
			Reach:          d.Reach,
		})
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		BusinessID:     dashboard.BusinessID.String(),
		FollowersCount: dashboard.FollowersCount,
		Totals: engagementTotalsJSON{
			PostCount:     dashboard.Totals.PostCount,
			TotalLikes:    dashboard.Totals.TotalLikes,
			TotalComments: dashboard.Totals.TotalComments,
			TotalShares:   dashboard.Totals.TotalShares,
			TotalViews:    dashboard.Totals.TotalViews,
		},
		Daily: daily,
		From:  dashboard.From,
		To:    dashboard.To,
	})
}
