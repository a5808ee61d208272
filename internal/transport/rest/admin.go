package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
	"github.com/zooner-app/zooner-backend/internal/service/moderation"
)

// moderationService defines the minimal interface needed by ModerationHandler.
type moderationService interface {
	Report(ctx context.Context, reporterID uuid.UUID, input moderation.ReportInput) (*domain.ReportedContent, error)
	Review(ctx context.Context, reviewerID, reportID uuid.UUID, input moderation.ReviewInput) (*domain.ReportedContent, error)
	List(ctx context.Context, filter domain.ReportFilter) ([]domain.ReportedContent, error)
}

// ModerationHandler serves report submission and the admin moderation queue.
type ModerationHandler struct {
	svc moderationService
	log *slog.Logger
}

// NewModerationHandler creates a ModerationHandler.
func NewModerationHandler(svc moderationService, logger *slog.Logger) *ModerationHandler {
	return &ModerationHandler{svc: svc, log: logger.With("handler", "moderation")}
}

type reportRequest struct {
	Type       domain.ReportType `json:"type"`
	Reason     string            `json:"reason"`
	PostID     *uuid.UUID        `json:"postId"`
	BusinessID *uuid.UUID        `json:"businessId"`
	UserID     *uuid.UUID        `json:"userId"`
}

type reviewRequest struct {
	Status     domain.ReportStatus `json:"status"`
	AdminNotes string              `json:"adminNotes"`
}

type reportResponse struct {
	ID         string     `json:"id"`
	ReporterID string     `json:"reporterId"`
	Type       string     `json:"type"`
	Reason     string     `json:"reason,omitempty"`
	TargetKind string     `json:"targetKind"`
	TargetID   string     `json:"targetId"`
	Status     string     `json:"status"`
	AdminNotes string     `json:"adminNotes,omitempty"`
	ReviewedBy *uuid.UUID `json:"reviewedBy,omitempty"`
	ReviewedAt *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Report handles POST /api/v1/reports. Exactly one of postId, businessId
// and userId must be set.
func (h *ModerationHandler) Report(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req reportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	target, ok := req.target()
	if !ok {
		writeError(w, http.StatusBadRequest, "exactly one of postId, businessId, userId must be set")
		return
	}

	report, err := h.svc.Report(r.Context(), userID, moderation.ReportInput{
		Type:   req.Type,
		Reason: req.Reason,
		Target: target,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReportResponse(report))
}

// ListReports handles GET /api/v1/admin/reports. Admin only.
func (h *ModerationHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	filter := domain.ReportFilter{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := domain.ReportStatus(v)
		filter.Status = &status
	}

	reports, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]reportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, toReportResponse(&reports[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// ReviewReport handles POST /api/v1/admin/reports/{id}/review. Admin only.
func (h *ModerationHandler) ReviewReport(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}
	reviewerID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	reportID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req reviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	report, err := h.svc.Review(r.Context(), reviewerID, reportID, moderation.ReviewInput{
		Status:     req.Status,
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportResponse(report))
}

// target folds the three optional ID fields into a single tagged target.
// False means zero or more than one was set.
func (req reportRequest) target() (domain.ReportTarget, bool) {
	var targets []domain.ReportTarget
	if req.PostID != nil {
		targets = append(targets, domain.PostTarget(*req.PostID))
	}
	if req.BusinessID != nil {
		targets = append(targets, domain.BusinessTarget(*req.BusinessID))
	}
	if req.UserID != nil {
		targets = append(targets, domain.UserTarget(*req.UserID))
	}
	if len(targets) != 1 {
		return domain.ReportTarget{}, false
	}
	return targets[0], true
}

func toReportResponse(rc *domain.ReportedContent) reportResponse {
	return reportResponse{
		ID:         rc.ID.String(),
		ReporterID: rc.ReporterID.String(),
		Type:       rc.Type.String(),
		Reason:     rc.Reason,
		TargetKind: string(rc.Target.Kind),
		TargetID:   rc.Target.ID.String(),
		Status:     rc.Status.String(),
		AdminNotes: rc.AdminNotes,
		ReviewedBy: rc.ReviewedBy,
		ReviewedAt: rc.ReviewedAt,
		CreatedAt:  rc.CreatedAt,
	}
}
