package auth

import (
	"time"

	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

// CodeSentResult is returned when a verification code was issued and handed
// to the delivery gateway.
type CodeSentResult struct {
	ExpiresAt    time.Time
	UsedFallback bool
}

// AuthResult is returned by CompleteRegistration.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
