package business

import (
	"github.com/google/uuid"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

func validateHours(hours domain.BusinessHours, errs []domain.FieldError) []domain.FieldError {
	for day := range hours {
		if !weekdays[day] {
			errs = append(errs, domain.FieldError{Field: "hours", Message: "unknown weekday " + day})
		}
	}
	return errs
}

// CreateInput holds parameters for the business creation operation.
type CreateInput struct {
	Name        string
	Description string
	TownID      uuid.UUID
	Address     string
	Latitude    *float64
	Longitude   *float64
	CategoryID  *uuid.UUID
	Phone       string
	Email       string
	Website     string
	Hours       domain.BusinessHours
}

// Validate validates the business creation input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if len(i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.TownID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "town_id", Message: "required"})
	}
	if len(i.Address) > 500 {
		errs = append(errs, domain.FieldError{Field: "address", Message: "too long"})
	}
	if i.Latitude != nil && (*i.Latitude < -90 || *i.Latitude > 90) {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "out of range"})
	}
	if i.Longitude != nil && (*i.Longitude < -180 || *i.Longitude > 180) {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "out of range"})
	}
	if len(i.Phone) > 20 {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "too long"})
	}
	if len(i.Email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	if len(i.Website) > 2048 {
		errs = append(errs, domain.FieldError{Field: "website", Message: "too long"})
	}
	errs = validateHours(i.Hours, errs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for the business update operation.
// Nil pointers mean "leave unchanged". Slug, owner, status and the
// denormalized counters cannot be changed through this operation.
type UpdateInput struct {
	Name        *string
	Description *string
	Address     *string
	Latitude    *float64
	Longitude   *float64
	CategoryID  *uuid.UUID
	Phone       *string
	Email       *string
	Website     *string
	HeroImage   *string
	Logo        *string
	Hours       domain.BusinessHours
}

// Validate validates the business update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if len(*i.Name) > 200 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}
	if i.Description != nil && len(*i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.Address != nil && len(*i.Address) > 500 {
		errs = append(errs, domain.FieldError{Field: "address", Message: "too long"})
	}
	if i.Latitude != nil && (*i.Latitude < -90 || *i.Latitude > 90) {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "out of range"})
	}
	if i.Longitude != nil && (*i.Longitude < -180 || *i.Longitude > 180) {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "out of range"})
	}
	if i.Phone != nil && len(*i.Phone) > 20 {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "too long"})
	}
	if i.Email != nil && len(*i.Email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	if i.Website != nil && len(*i.Website) > 2048 {
		errs = append(errs, domain.FieldError{Field: "website", Message: "too long"})
	}
	errs = validateHours(i.Hours, errs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
