package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

// Redeem consumes the live code for email and returns its payload. Any
// mismatch, expiry, prior consumption or exhausted attempt budget yields
// domain.ErrInvalidOrExpiredCode.
func (s *Service) Redeem(ctx context.Context, input RedeemInput) (string, error) {
	input.Email = normalizeEmail(input.Email)
	if err := input.Validate(); err != nil {
		return "", err
	}

	now := s.now()

	if !validCodeFormat(input.Code) {
		s.recordFailure(ctx, input.Email)
		return "", domain.ErrInvalidOrExpiredCode
	}

	payload, err := s.codes.Consume(ctx, input.Email, input.Code, now, s.cfg.MaxAttempts)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOrExpiredCode) {
			s.recordFailure(ctx, input.Email)
			return "", domain.ErrInvalidOrExpiredCode
		}
		return "", fmt.Errorf("verification.Redeem: %w", err)
	}

	s.log.InfoContext(ctx, "verification code redeemed", slog.String("email", input.Email))

	return payload, nil
}

// recordFailure counts a failed attempt. Failing to count it must not change
// the caller-visible outcome.
func (s *Service) recordFailure(ctx context.Context, email string) {
	if err := s.codes.IncrementAttempts(ctx, email, s.now()); err != nil {
		s.log.WarnContext(ctx, "failed to record verification attempt",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
	}
}
