package verification

import "time"

// IssueResult is the plaintext code and when it stops being redeemable.
type IssueResult struct {
	Code      string
	ExpiresAt time.Time
}
