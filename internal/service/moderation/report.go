package moderation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

const maxReasonLength = 1000

// ReportInput holds parameters for the report submission operation.
type ReportInput struct {
	Type   domain.ReportType
	Reason string
	Target domain.ReportTarget
}

// Validate validates the report input.
func (i ReportInput) Validate() error {
	var errs []domain.FieldError

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown report type"})
	}
	if len(i.Reason) > maxReasonLength {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "too long"})
	}
	if i.Target.IsZero() || !i.Target.Kind.IsValid() || i.Target.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "target", Message: "exactly one target must be set"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Report files a new report against a post, business or user. The target
// must exist; the report starts in the pending status.
func (s *Service) Report(ctx context.Context, reporterID uuid.UUID, input ReportInput) (*domain.ReportedContent, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Verify the target exists
	if err := s.verifyTarget(ctx, input.Target); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("target", "target does not exist")
		}
		return nil, fmt.Errorf("moderation.Report verify target: %w", err)
	}

	report := &domain.ReportedContent{
		ID:         uuid.New(),
		ReporterID: reporterID,
		Type:       input.Type,
		Reason:     input.Reason,
		Target:     input.Target,
		Status:     domain.ReportStatusPending,
	}

	created, err := s.reports.Create(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("moderation.Report: %w", err)
	}

	s.log.InfoContext(ctx, "content reported",
		slog.String("report_id", created.ID.String()),
		slog.String("target_kind", string(input.Target.Kind)),
		slog.String("target_id", input.Target.ID.String()))

	return created, nil
}

func (s *Service) verifyTarget(ctx context.Context, target domain.ReportTarget) error {
	switch target.Kind {
	case domain.ReportTargetPost:
		_, err := s.posts.GetByID(ctx, target.ID)
		return err
	case domain.ReportTargetBusiness:
		_, err := s.businesses.GetByID(ctx, target.ID)
		return err
	case domain.ReportTargetUser:
		_, err := s.users.GetByID(ctx, target.ID)
		return err
	default:
		return domain.ErrNotFound
	}
}

// ReviewInput holds parameters for the report review operation.
type ReviewInput struct {
	Status     domain.ReportStatus
	AdminNotes string
}

// Validate validates the review input. Only terminal statuses are accepted;
// a report cannot be moved back to pending.
func (i ReviewInput) Validate() error {
	var errs []domain.FieldError

	if !i.Status.IsValid() || !i.Status.IsTerminal() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be reviewed, resolved or dismissed"})
	}
	if len(i.AdminNotes) > maxReasonLength {
		errs = append(errs, domain.FieldError{Field: "admin_notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Review moves a pending report into a terminal status and stamps the
// reviewer exactly once. Reviewing a report twice fails with
// ErrInvalidTransition. The row is locked for the duration of the check so
// two admins cannot both claim the same report.
func (s *Service) Review(ctx context.Context, reviewerID, reportID uuid.UUID, input ReviewInput) (*domain.ReportedContent, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Lock, check the transition and stamp atomically
	var reviewed *domain.ReportedContent
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		report, err := s.reports.GetByIDForUpdate(ctx, reportID)
		if err != nil {
			return fmt.Errorf("get report: %w", err)
		}
		if report.Status != domain.ReportStatusPending {
			return fmt.Errorf("report is already %s: %w", report.Status, domain.ErrInvalidTransition)
		}

		reviewed, err = s.reports.Review(ctx, reportID, input.Status, input.AdminNotes, reviewerID, time.Now().UTC())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("moderation.Review: %w", err)
	}

	s.log.InfoContext(ctx, "report reviewed",
		slog.String("report_id", reportID.String()),
		slog.String("status", input.Status.String()),
		slog.String("reviewer_id", reviewerID.String()))

	return reviewed, nil
}

// List returns a page of the moderation queue, newest first. Admin only,
// enforced at the transport layer.
func (s *Service) List(ctx context.Context, filter domain.ReportFilter) ([]domain.ReportedContent, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	reports, err := s.reports.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("moderation.List: %w", err)
	}
	return reports, nil
}
