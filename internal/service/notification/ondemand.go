package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

const (
	testSubject = "PantryWatch test notification"
	testText    = "This is a test notification from PantryWatch. Email delivery for your account is working."
	testHTML    = "<p>This is a test notification from PantryWatch.</p><p>Email delivery for your account is working.</p>"
)

// resolvePreference loads the user's preference, creating the default record
// from the account email on first access.
func (s *Service) resolvePreference(ctx context.Context, userID uuid.UUID) (*domain.NotificationPreference, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", userID, domain.ErrUserNotFound)
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	pref, err := s.prefs.GetOrCreateDefault(ctx, userID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("load preference: %w", err)
	}

	return pref, nil
}

// SendTestNotification sends a fixed message to the user's delivery address.
// It is not a notification cycle and leaves the watermark alone.
func (s *Service) SendTestNotification(ctx context.Context, userID uuid.UUID) (*TestResult, error) {
	pref, err := s.resolvePreference(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("notification.SendTestNotification: %w", err)
	}
	if !pref.Deliverable() {
		return nil, fmt.Errorf("notification.SendTestNotification: %w", domain.ErrPreferenceNotConfigured)
	}

	res, err := s.gateway.SendGenericMessage(ctx, pref.Address(), testSubject, testText, testHTML)
	if err != nil {
		return nil, fmt.Errorf("notification.SendTestNotification: %w", err)
	}

	s.log.InfoContext(ctx, "test notification",
		slog.String("user_id", userID.String()),
		slog.Bool("sent", res.Sent),
		slog.Bool("used_fallback", res.UsedFallback),
	)

	return &TestResult{Success: res.Sent, UsedFallback: res.UsedFallback, Reason: res.Reason()}, nil
}

// TriggerExpiringItemsNotification runs the digest cycle for one user now,
// including items due within daysThreshold days.
func (s *Service) TriggerExpiringItemsNotification(ctx context.Context, userID uuid.UUID, input TriggerInput) (*TriggerResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.trigger(ctx, userID, domain.KindDailyDigest, input.DaysThreshold)
}

// TriggerWeeklySummary runs the summary cycle for one user now.
func (s *Service) TriggerWeeklySummary(ctx context.Context, userID uuid.UUID) (*TriggerResult, error) {
	return s.trigger(ctx, userID, domain.KindWeeklySummary, s.cfg.DigestThresholdDays)
}

func (s *Service) trigger(ctx context.Context, userID uuid.UUID, kind domain.NotificationKind, threshold int) (*TriggerResult, error) {
	pref, err := s.resolvePreference(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("notification.Trigger %s: %w", kind, err)
	}
	if !pref.Deliverable() {
		return nil, fmt.Errorf("notification.Trigger %s: %w", kind, domain.ErrPreferenceNotConfigured)
	}

	now := s.now()
	out := s.processUserSafe(ctx, kind, *pref, now, domain.Today(now, s.cfg.Location), threshold)
	s.logOutcome(ctx, s.log.With(slog.String("kind", kind.String()), slog.Bool("on_demand", true)), out)

	res := &TriggerResult{
		Success:      out.Succeeded(),
		ItemCount:    out.ItemCount,
		UsedFallback: out.UsedFallback,
	}
	if !res.Success {
		res.Reason = failureReason(out.Err)
	}

	return res, nil
}

// failureReason maps a per-user error to a message safe to show the user.
func failureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrTransport):
		return "email could not be delivered"
	case errors.Is(err, domain.ErrPreferenceNotConfigured):
		return "email delivery is not configured"
	default:
		return "notification could not be processed"
	}
}
