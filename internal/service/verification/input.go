package verification

import (
	"strings"

	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

// IssueInput holds parameters for issuing a code.
type IssueInput struct {
	Email   string
	Payload string
}

// Validate validates the issue input.
func (i IssueInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}

	if i.Payload == "" {
		errs = append(errs, domain.FieldError{Field: "payload", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RedeemInput holds parameters for redeeming a code.
type RedeemInput struct {
	Email string
	Code  string
}

// Validate validates the redeem input. The code is not checked here: an
// empty or malformed code is an ordinary failed attempt.
func (i RedeemInput) Validate() error {
	if i.Email == "" {
		return domain.NewValidationError("email", "required")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
