package catalog

import (
	"github.com/zooner-app/zooner-backend/internal/domain"
)

// CreateTownInput holds parameters for the town creation operation.
type CreateTownInput struct {
	Name      string
	Country   string
	Region    string
	Latitude  *float64
	Longitude *float64
}

// Validate validates the town creation input.
func (i CreateTownInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if len(i.Country) > 100 {
		errs = append(errs, domain.FieldError{Field: "country", Message: "too long"})
	}
	if len(i.Region) > 100 {
		errs = append(errs, domain.FieldError{Field: "region", Message: "too long"})
	}
	if i.Latitude != nil && (*i.Latitude < -90 || *i.Latitude > 90) {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "out of range"})
	}
	if i.Longitude != nil && (*i.Longitude < -180 || *i.Longitude > 180) {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "out of range"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateCategoryInput holds parameters for the category creation operation.
type CreateCategoryInput struct {
	Name        string
	Description string
	Icon        string
	Color       string
	SortOrder   int
}

// Validate validates the category creation input.
func (i CreateCategoryInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if len(i.Description) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if len(i.Icon) > 100 {
		errs = append(errs, domain.FieldError{Field: "icon", Message: "too long"})
	}
	if len(i.Color) > 20 {
		errs = append(errs, domain.FieldError{Field: "color", Message: "too long"})
	}
	if i.SortOrder < 0 {
		errs = append(errs, domain.FieldError{Field: "sort_order", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
