package notification

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

// UserOutcome is the result of one per-user notification cycle.
type UserOutcome struct {
	UserID uuid.UUID
	// ItemCount is the number of items included in the message.
	ItemCount int
	// Skipped is true when a digest had no relevant items and nothing was sent.
	Skipped      bool
	Sent         bool
	UsedFallback bool
	// WatermarkUpdated reports whether lastNotifiedAt was advanced.
	WatermarkUpdated bool
	Err              error
}

// Succeeded reports whether the cycle completed without a failure. A skipped
// digest is a success.
func (o UserOutcome) Succeeded() bool {
	return o.Err == nil && (o.Sent || o.Skipped)
}

// PassReport collects the outcome of every user in one fan-out pass.
type PassReport struct {
	PassID    string
	Kind      domain.NotificationKind
	StartedAt time.Time
	Duration  time.Duration
	// Err is set when the recipient list itself could not be loaded.
	Err      error
	Outcomes []UserOutcome
}

// Counts summarizes the report.
func (r PassReport) Counts() (sent, skipped, failed int) {
	for _, o := range r.Outcomes {
		switch {
		case !o.Succeeded():
			failed++
		case o.Skipped:
			skipped++
		default:
			sent++
		}
	}
	return sent, skipped, failed
}

// Outcome returns the outcome for userID, if the user was part of the pass.
func (r PassReport) Outcome(userID uuid.UUID) (UserOutcome, bool) {
	for _, o := range r.Outcomes {
		if o.UserID == userID {
			return o, true
		}
	}
	return UserOutcome{}, false
}

// TriggerResult is returned by the on-demand triggers.
type TriggerResult struct {
	Success      bool
	ItemCount    int
	UsedFallback bool
	// Reason explains a failure in words fit for the user.
	Reason string
}

// TestResult is returned by SendTestNotification.
type TestResult struct {
	Success      bool
	UsedFallback bool
	Reason       string
}
