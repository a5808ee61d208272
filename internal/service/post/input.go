package post

import (
	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

const maxTags = 20

// CreateInput holds parameters for the post creation operation.
type CreateInput struct {
	BusinessID uuid.UUID
	Caption    string
	Type       domain.PostType
	Image      *string
	Video      *string
	Tags       []string
	CategoryID *uuid.UUID
}

// Validate validates the post creation input against the configured limits.
func (i CreateInput) Validate(maxCaptionLength int) error {
	var errs []domain.FieldError

	if i.BusinessID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "business_id", Message: "required"})
	}
	if i.Caption == "" {
		errs = append(errs, domain.FieldError{Field: "caption", Message: "required"})
	} else if len(i.Caption) > maxCaptionLength {
		errs = append(errs, domain.FieldError{Field: "caption", Message: "too long"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown post type"})
	}
	if len(i.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many tags"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for the post update operation.
// Nil pointers mean "leave unchanged".
type UpdateInput struct {
	Caption    *string
	Type       *domain.PostType
	Image      *string
	Video      *string
	Tags       []string
	CategoryID *uuid.UUID
	IsPinned   *bool
}

// Validate validates the post update input against the configured limits.
func (i UpdateInput) Validate(maxCaptionLength int) error {
	var errs []domain.FieldError

	if i.Caption != nil {
		if *i.Caption == "" {
			errs = append(errs, domain.FieldError{Field: "caption", Message: "must not be empty"})
		} else if len(*i.Caption) > maxCaptionLength {
			errs = append(errs, domain.FieldError{Field: "caption", Message: "too long"})
		}
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown post type"})
	}
	if len(i.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many tags"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
