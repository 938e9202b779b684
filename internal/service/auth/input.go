package auth

import (
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt ignores bytes past 72
	maxUsernameLen = 50
)

func validateEmail(field, email string, errs []domain.FieldError) []domain.FieldError {
	if email == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(email) > 254 || validate.Var(email, "email") != nil {
		return append(errs, domain.FieldError{Field: field, Message: "invalid email"})
	}
	return errs
}

func validatePassword(field, password string, errs []domain.FieldError) []domain.FieldError {
	switch {
	case password == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case utf8.RuneCountInString(password) < minPasswordLen:
		return append(errs, domain.FieldError{Field: field, Message: "too short"})
	case len(password) > maxPasswordLen:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func validateCode(code string, errs []domain.FieldError) []domain.FieldError {
	if code == "" {
		return append(errs, domain.FieldError{Field: "code", Message: "required"})
	}
	return errs
}

// RegisterInput holds parameters for starting a registration.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// Validate validates the registration input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = validateEmail("email", i.Email, errs)

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if utf8.RuneCountInString(i.Username) > maxUsernameLen {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	errs = validatePassword("password", i.Password, errs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// VerifyInput holds parameters for completing a registration.
type VerifyInput struct {
	Email string
	Code  string
}

// Validate validates the verify input.
func (i VerifyInput) Validate() error {
	var errs []domain.FieldError

	errs = validateEmail("email", i.Email, errs)
	errs = validateCode(i.Code, errs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResetRequestInput holds parameters for requesting a password reset.
type ResetRequestInput struct {
	Email string
}

// Validate validates the reset request input.
func (i ResetRequestInput) Validate() error {
	if errs := validateEmail("email", i.Email, nil); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResetConfirmInput holds parameters for confirming a password reset.
type ResetConfirmInput struct {
	Email       string
	Code        string
	NewPassword string
}

// Validate validates the reset confirmation input.
func (i ResetConfirmInput) Validate() error {
	var errs []domain.FieldError

	errs = validateEmail("email", i.Email, errs)
	errs = validateCode(i.Code, errs)
	errs = validatePassword("new_password", i.NewPassword, errs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
