package service

import (
	"errors"
	"fmt"
	"strings"

	models "github.com/swastikaa0/GroceryWebDevelopment-sub001/model"
)

// Error kinds surfaced inline on the registration form.
var (
	ErrEmptyField       = errors.New("required field is empty")
	ErrInvalidFormat    = errors.New("invalid field format")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// FieldError ties a validation failure to the form field it occurred on, so
// the page can render it next to the right input. Use errors.Is against
// ErrEmptyField / ErrInvalidFormat to branch on the kind.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return fmt.Sprintf("%s: %v", e.Field, e.Err) }
func (e *FieldError) Unwrap() error { return e.Err }

// ValidateRegistration checks the form rules in a fixed order and stops at
// the first failure. On success the form is returned unchanged; submission
// and navigation to the login page are the caller's business.
//
// Rule order: name present, email shaped like local@domain, password present,
// confirmation equal to password. The name check trims surrounding
// whitespace; the password comparison is exact, no trimming.
func ValidateRegistration(form models.RegistrationForm) (models.RegistrationForm, error) {
	if strings.TrimSpace(form.Name) == "" {
		return models.RegistrationForm{}, &FieldError{Field: "name", Err: ErrEmptyField}
	}
	if !validEmail(form.Email) {
		return models.RegistrationForm{}, &FieldError{Field: "email", Err: ErrInvalidFormat}
	}
	if form.Password == "" {
		return models.RegistrationForm{}, &FieldError{Field: "password", Err: ErrEmptyField}
	}
	if form.ConfirmPassword != form.Password {
		return models.RegistrationForm{}, ErrPasswordMismatch
	}
	return form, nil
}

// validEmail accepts a non-empty local part, a single @, and a non-empty
// domain containing at least one dot. No stricter policy than the form needs.
func validEmail(s string) bool {
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || domain == "" {
		return false
	}
	if strings.Contains(domain, "@") {
		return false
	}
	return strings.Contains(domain, ".")
}
