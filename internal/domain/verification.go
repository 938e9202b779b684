package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VerificationCode is a single-use, time-boxed code bound to an email address.
// At most one record per email is live at a time; issuing a new code removes
// the previous one.
type VerificationCode struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Code      string    `db:"code"`
	ExpiresAt time.Time `db:"expires_at"`
	Consumed  bool      `db:"consumed"`
	Attempts  int       `db:"attempts"`
	// Payload is opaque to the code store: a JSON-encoded VerificationPayload.
	Payload   string    `db:"payload"`
	CreatedAt time.Time `db:"created_at"`
}

// IsExpired reports whether the code can no longer be redeemed at now.
// A code is still valid at exactly ExpiresAt.
func (c *VerificationCode) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// IsLive reports whether the code is unconsumed and unexpired at now.
func (c *VerificationCode) IsLive(now time.Time) bool {
	return !c.Consumed && !c.IsExpired(now)
}

// VerificationPurpose tags what a verification payload authorizes.
type VerificationPurpose string

const (
	PurposeRegistration  VerificationPurpose = "registration"
	PurposePasswordReset VerificationPurpose = "password_reset"
)

// VerificationPayload is the tagged envelope stored alongside a code.
type VerificationPayload struct {
	Kind         VerificationPurpose `json:"kind"`
	Registration *RegistrationData   `json:"registration,omitempty"`
	UserID       *uuid.UUID          `json:"user_id,omitempty"`
}

// RegistrationData holds the pending account fields until the email is verified.
// The password is stored as a bcrypt hash only.
type RegistrationData struct {
	Email        string `json:"email"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}

// Encode serializes the payload into the opaque form stored with a code.
func (p VerificationPayload) Encode() (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode verification payload: %w", err)
	}
	return string(b), nil
}

// DecodeVerificationPayload parses a stored payload and checks it carries the
// data required by its kind.
func DecodeVerificationPayload(raw string) (VerificationPayload, error) {
	var p VerificationPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return VerificationPayload{}, fmt.Errorf("decode verification payload: %w", err)
	}

	switch p.Kind {
	case PurposeRegistration:
		if p.Registration == nil {
			return VerificationPayload{}, fmt.Errorf("decode verification payload: registration data missing")
		}
	case PurposePasswordReset:
		if p.UserID == nil || *p.UserID == uuid.Nil {
			return VerificationPayload{}, fmt.Errorf("decode verification payload: user id missing")
		}
	default:
		return VerificationPayload{}, fmt.Errorf("decode verification payload: unknown kind %q", p.Kind)
	}

	return p, nil
}
