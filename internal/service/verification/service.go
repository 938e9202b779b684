// Package verification issues and redeems single-use, time-boxed codes bound
// to an email address and an opaque payload.
package verification

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/heartmarshall/pantrywatch-backend/internal/config"
	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

type codeRepo interface {
	DeleteByEmail(ctx context.Context, email string) error
	Create(ctx context.Context, c *domain.VerificationCode) error
	Consume(ctx context.Context, email, code string, now time.Time, maxAttempts int) (string, error)
	IncrementAttempts(ctx context.Context, email string, now time.Time) error
	DeleteStale(ctx context.Context, now time.Time) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service owns every verification code record: nothing else creates or
// deletes them.
type Service struct {
	log   *slog.Logger
	codes codeRepo
	tx    txManager
	cfg   config.VerificationConfig

	now      func() time.Time
	generate func() (string, error)
}

// NewService creates a new verification service.
func NewService(logger *slog.Logger, codes codeRepo, tx txManager, cfg config.VerificationConfig) *Service {
	return &Service{
		log:      logger.With("service", "verification"),
		codes:    codes,
		tx:       tx,
		cfg:      cfg,
		now:      time.Now,
		generate: GenerateCode,
	}
}

// CodeTTL is how long an issued code stays redeemable.
func (s *Service) CodeTTL() time.Duration {
	return s.cfg.CodeTTL
}

const (
	codeMin = 100000
	codeMax = 999999
)

// GenerateCode returns a uniformly random six-digit code in [100000, 999999].
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+codeMin), nil
}

// validCodeFormat reports whether s could have been produced by GenerateCode.
func validCodeFormat(s string) bool {
	if len(s) != 6 || s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
