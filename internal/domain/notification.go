package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NotificationFrequency is how often expiration digests are sent to a user.
type NotificationFrequency string

const (
	FrequencyDaily  NotificationFrequency = "daily"
	FrequencyWeekly NotificationFrequency = "weekly"
	FrequencyNever  NotificationFrequency = "never"
)

func (f NotificationFrequency) String() string { return string(f) }

func (f NotificationFrequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyNever:
		return true
	}
	return false
}

// NotificationPreference holds a user's delivery settings. LastNotifiedAt is
// the watermark of the most recent notification cycle attempted for the user,
// not of a delivered email.
type NotificationPreference struct {
	ID                      uuid.UUID             `db:"id"`
	UserID                  uuid.UUID             `db:"user_id"`
	ExpirationAlertsEnabled bool                  `db:"expiration_alerts_enabled"`
	ExpirationFrequency     NotificationFrequency `db:"expiration_frequency"`
	WeeklySummaryEnabled    bool                  `db:"weekly_summary_enabled"`
	EmailDeliveryEnabled    bool                  `db:"email_delivery_enabled"`
	EmailAddress            *string               `db:"email_address"`
	LastNotifiedAt          *time.Time            `db:"last_notified_at"`
	CreatedAt               time.Time             `db:"created_at"`
	UpdatedAt               time.Time             `db:"updated_at"`
}

// Address returns the trimmed delivery address, or "" when none is on file.
func (p *NotificationPreference) Address() string {
	if p.EmailAddress == nil {
		return ""
	}
	return strings.TrimSpace(*p.EmailAddress)
}

// Deliverable reports whether email can be sent to this user at all.
func (p *NotificationPreference) Deliverable() bool {
	return p.EmailDeliveryEnabled && p.Address() != ""
}

// DefaultNotificationPreference is the record created on first access.
func DefaultNotificationPreference(userID uuid.UUID, accountEmail string) NotificationPreference {
	var addr *string
	if e := strings.TrimSpace(accountEmail); e != "" {
		addr = &e
	}
	return NotificationPreference{
		UserID:                  userID,
		ExpirationAlertsEnabled: true,
		ExpirationFrequency:     FrequencyWeekly,
		WeeklySummaryEnabled:    false,
		EmailDeliveryEnabled:    true,
		EmailAddress:            addr,
	}
}

// NotificationKind is the closed set of scheduled notification cycles.
type NotificationKind int

const (
	KindDailyDigest NotificationKind = iota + 1
	KindWeeklyDigest
	KindWeeklySummary
)

// NotificationKinds lists every kind in registration order.
var NotificationKinds = []NotificationKind{KindDailyDigest, KindWeeklyDigest, KindWeeklySummary}

func (k NotificationKind) String() string {
	switch k {
	case KindDailyDigest:
		return "daily_digest"
	case KindWeeklyDigest:
		return "weekly_digest"
	case KindWeeklySummary:
		return "weekly_summary"
	}
	return "unknown"
}

func (k NotificationKind) IsValid() bool {
	switch k {
	case KindDailyDigest, KindWeeklyDigest, KindWeeklySummary:
		return true
	}
	return false
}

// IsDigest reports whether the kind sends only expired and expiring-soon items.
func (k NotificationKind) IsDigest() bool {
	return k == KindDailyDigest || k == KindWeeklyDigest
}

// PreferenceFilter selects the preference records a trigger fans out to.
// Nil fields are not constrained. Delivery enabled and a present address are
// always required.
type PreferenceFilter struct {
	ExpirationAlertsEnabled *bool
	ExpirationFrequency     *NotificationFrequency
	WeeklySummaryEnabled    *bool
}

// Filter returns the selection criterion for the kind.
func (k NotificationKind) Filter() PreferenceFilter {
	yes := true
	switch k {
	case KindDailyDigest:
		f := FrequencyDaily
		return PreferenceFilter{ExpirationAlertsEnabled: &yes, ExpirationFrequency: &f}
	case KindWeeklyDigest:
		f := FrequencyWeekly
		return PreferenceFilter{ExpirationAlertsEnabled: &yes, ExpirationFrequency: &f}
	default:
		return PreferenceFilter{WeeklySummaryEnabled: &yes}
	}
}

// Matches evaluates the filter in memory. Stores must select the same set.
func (f PreferenceFilter) Matches(p NotificationPreference) bool {
	if !p.Deliverable() {
		return false
	}
	if f.ExpirationAlertsEnabled != nil && p.ExpirationAlertsEnabled != *f.ExpirationAlertsEnabled {
		return false
	}
	if f.ExpirationFrequency != nil && p.ExpirationFrequency != *f.ExpirationFrequency {
		return false
	}
	if f.WeeklySummaryEnabled != nil && p.WeeklySummaryEnabled != *f.WeeklySummaryEnabled {
		return false
	}
	return true
}
