package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

// GetPreferences returns the user's preference, creating the default record
// on first access.
func (s *Service) GetPreferences(ctx context.Context, userID uuid.UUID) (*domain.NotificationPreference, error) {
	pref, err := s.resolvePreference(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("notification.GetPreferences: %w", err)
	}
	return pref, nil
}

// UpdatePreferences applies a partial update. Delivery cannot be left enabled
// without an address.
func (s *Service) UpdatePreferences(ctx context.Context, userID uuid.UUID, input UpdatePreferencesInput) (*domain.NotificationPreference, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	pref, err := s.resolvePreference(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("notification.UpdatePreferences: %w", err)
	}

	input.apply(pref)
	if pref.EmailDeliveryEnabled && pref.Address() == "" {
		return nil, domain.NewValidationError("email_address", "required when email delivery is enabled")
	}

	updated, err := s.prefs.Update(ctx, pref)
	if err != nil {
		return nil, fmt.Errorf("notification.UpdatePreferences: %w", err)
	}

	s.log.InfoContext(ctx, "notification preferences updated",
		slog.String("user_id", userID.String()),
		slog.String("frequency", updated.ExpirationFrequency.String()),
		slog.Bool("delivery_enabled", updated.EmailDeliveryEnabled),
	)

	return updated, nil
}
