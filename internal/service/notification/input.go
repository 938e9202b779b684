package notification

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

const maxTriggerDays = 30

// TriggerInput holds parameters for an on-demand digest.
type TriggerInput struct {
	DaysThreshold int
}

// Validate validates the trigger input.
func (i TriggerInput) Validate() error {
	if i.DaysThreshold < 1 || i.DaysThreshold > maxTriggerDays {
		return domain.NewValidationError("days_threshold", "must be between 1 and 30")
	}
	return nil
}

// UpdatePreferencesInput is a partial update: nil fields keep their value.
// An empty EmailAddress clears the address.
type UpdatePreferencesInput struct {
	ExpirationAlertsEnabled *bool
	ExpirationFrequency     *string
	WeeklySummaryEnabled    *bool
	EmailDeliveryEnabled    *bool
	EmailAddress            *string
}

// Validate validates field formats. Cross-field rules are checked after the
// update is merged with the stored record.
func (i UpdatePreferencesInput) Validate() error {
	var errs []domain.FieldError

	if i.ExpirationFrequency != nil && !domain.NotificationFrequency(*i.ExpirationFrequency).IsValid() {
		errs = append(errs, domain.FieldError{Field: "expiration_frequency", Message: "must be daily, weekly or never"})
	}

	if i.EmailAddress != nil {
		if addr := strings.TrimSpace(*i.EmailAddress); addr != "" {
			if len(addr) > 254 || validate.Var(addr, "email") != nil {
				errs = append(errs, domain.FieldError{Field: "email_address", Message: "invalid email"})
			}
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// apply merges the input into p.
func (i UpdatePreferencesInput) apply(p *domain.NotificationPreference) {
	if i.ExpirationAlertsEnabled != nil {
		p.ExpirationAlertsEnabled = *i.ExpirationAlertsEnabled
	}
	if i.ExpirationFrequency != nil {
		p.ExpirationFrequency = domain.NotificationFrequency(*i.ExpirationFrequency)
	}
	if i.WeeklySummaryEnabled != nil {
		p.WeeklySummaryEnabled = *i.WeeklySummaryEnabled
	}
	if i.EmailDeliveryEnabled != nil {
		p.EmailDeliveryEnabled = *i.EmailDeliveryEnabled
	}
	if i.EmailAddress != nil {
		if addr := strings.TrimSpace(*i.EmailAddress); addr != "" {
			p.EmailAddress = &addr
		} else {
			p.EmailAddress = nil
		}
	}
}
