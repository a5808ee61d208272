package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportTargetKind identifies which kind of entity a report points at.
type ReportTargetKind string

const (
	ReportTargetPost     ReportTargetKind = "post"
	ReportTargetBusiness ReportTargetKind = "business"
	ReportTargetUser     ReportTargetKind = "user"
)

func (k ReportTargetKind) IsValid() bool {
	switch k {
	case ReportTargetPost, ReportTargetBusiness, ReportTargetUser:
		return true
	}
	return false
}

// ReportTarget is a tagged reference to exactly one reported entity.
// The zero value is invalid; construct via the helpers below.
type ReportTarget struct {
	Kind ReportTargetKind
	ID   uuid.UUID
}

func PostTarget(id uuid.UUID) ReportTarget     { return ReportTarget{Kind: ReportTargetPost, ID: id} }
func BusinessTarget(id uuid.UUID) ReportTarget { return ReportTarget{Kind: ReportTargetBusiness, ID: id} }
func UserTarget(id uuid.UUID) ReportTarget     { return ReportTarget{Kind: ReportTargetUser, ID: id} }

// IsZero reports whether the target has not been set.
func (t ReportTarget) IsZero() bool {
	return t.Kind == "" && t.ID == uuid.Nil
}

// ReportedContent is a moderation queue item.
// Status starts at pending; reviewed, resolved and dismissed are terminal.
// ReviewedBy/ReviewedAt are stamped exactly once, on the first transition
// into a terminal state.
type ReportedContent struct {
	ID         uuid.UUID
	ReporterID uuid.UUID
	Type       ReportType
	Reason     string
	Target     ReportTarget
	Status     ReportStatus
	AdminNotes string
	ReviewedBy *uuid.UUID
	ReviewedAt *time.Time
	CreatedAt  time.Time
}
