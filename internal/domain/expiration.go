package domain

import "time"

// ExpiringSoonDays is the inclusive upper bound (in days) of the expiring-soon window.
const ExpiringSoonDays = 3

// ExpirationState is the tri-state result of classifying an item's expiration date.
type ExpirationState string

const (
	ExpirationExpired      ExpirationState = "expired"
	ExpirationExpiringSoon ExpirationState = "expiring-soon"
	ExpirationFresh        ExpirationState = "fresh"
)

func (s ExpirationState) String() string { return string(s) }

// ExpirationStatus is derived on every read and never persisted.
type ExpirationStatus struct {
	State ExpirationState
	// DaysUntilExpiration is expiration minus today in calendar days; negative once expired.
	DaysUntilExpiration int
}

// Relevant reports whether the status belongs in an expiration digest.
func (s ExpirationStatus) Relevant() bool {
	return s.State == ExpirationExpired || s.State == ExpirationExpiringSoon
}

// Classify maps (today, expirationDate) to a status. Only the calendar date of
// each argument is used, so time-of-day and location offsets never shift the
// result. Callers evaluating a batch must pass the same today to every call.
func Classify(today, expirationDate time.Time) ExpirationStatus {
	days := CalendarDaysBetween(today, expirationDate)

	switch {
	case days <= 0:
		return ExpirationStatus{State: ExpirationExpired, DaysUntilExpiration: days}
	case days <= ExpiringSoonDays:
		return ExpirationStatus{State: ExpirationExpiringSoon, DaysUntilExpiration: days}
	default:
		return ExpirationStatus{State: ExpirationFresh, DaysUntilExpiration: days}
	}
}

// CalendarDaysBetween returns to − from in whole calendar days.
func CalendarDaysBetween(from, to time.Time) int {
	return int(civilDate(to).Sub(civilDate(from)).Hours() / 24)
}

// Today returns the calendar date of now in loc, at midnight UTC.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return civilDate(now.In(loc))
}

// ClassifyItems classifies every non-consumed item against a single today.
func ClassifyItems(today time.Time, items []PerishableItem) []ItemStatus {
	out := make([]ItemStatus, 0, len(items))
	for _, it := range items {
		if it.Consumed() {
			continue
		}
		out = append(out, ItemStatus{Item: it, Status: Classify(today, it.ExpirationDate)})
	}
	return out
}

// SplitRelevant partitions classified items into expired ones and unexpired
// ones due within withinDays, dropping the rest. With ExpiringSoonDays the
// second group is exactly the expiring-soon set. Input order is preserved
// within each group.
func SplitRelevant(items []ItemStatus, withinDays int) (expired, upcoming []ItemStatus) {
	for _, it := range items {
		switch {
		case it.Status.State == ExpirationExpired:
			expired = append(expired, it)
		case it.Status.DaysUntilExpiration <= withinDays:
			upcoming = append(upcoming, it)
		}
	}
	return expired, upcoming
}

// civilDate drops the clock and zone, keeping the wall-clock date.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
