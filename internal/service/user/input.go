package user

import (
	"regexp"

	"github.com/zooner-app/zooner-backend/internal/domain"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,30}$`)

// UpdateProfileInput holds parameters for the profile update operation.
// Nil pointers mean "leave unchanged".
type UpdateProfileInput struct {
	Username    *string
	PhoneNumber *string
	Bio         *string
	Location    *string
	AvatarURL   *string
}

// Validate validates the profile update input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Username != nil && !usernameRe.MatchString(*i.Username) {
		errs = append(errs, domain.FieldError{Field: "username", Message: "must be 3-30 characters of letters, digits, underscore, dot or hyphen"})
	}
	if i.PhoneNumber != nil && len(*i.PhoneNumber) > 20 {
		errs = append(errs, domain.FieldError{Field: "phone_number", Message: "too long"})
	}
	if i.Bio != nil && len(*i.Bio) > 500 {
		errs = append(errs, domain.FieldError{Field: "bio", Message: "too long"})
	}
	if i.Location != nil && len(*i.Location) > 100 {
		errs = append(errs, domain.FieldError{Field: "location", Message: "too long"})
	}
	if i.AvatarURL != nil && len(*i.AvatarURL) > 2048 {
		errs = append(errs, domain.FieldError{Field: "avatar_url", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangePasswordInput holds parameters for the password change operation.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// Validate validates the password change input.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: "current_password", Message: "required"})
	}
	if i.NewPassword == "" {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "required"})
	} else if len(i.NewPassword) < 8 {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "must be at least 8 characters"})
	} else if len(i.NewPassword) > 72 {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
