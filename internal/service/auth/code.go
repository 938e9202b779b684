package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
	"github.com/heartmarshall/pantrywatch-backend/internal/service/verification"
)

// issueAndSend stores a new code carrying payload and emails it. A delivery
// failure is returned as a transport error; the issued code stays live.
func (s *Service) issueAndSend(ctx context.Context, email string, payload domain.VerificationPayload) (*CodeSentResult, error) {
	raw, err := payload.Encode()
	if err != nil {
		return nil, err
	}

	issued, err := s.codes.Issue(ctx, verification.IssueInput{Email: email, Payload: raw})
	if err != nil {
		return nil, fmt.Errorf("issue code: %w", err)
	}

	outcome, err := s.mail.SendVerificationCode(ctx, email, issued.Code, payload.Kind, s.codes.CodeTTL())
	if err != nil {
		return nil, fmt.Errorf("send code: %w", err)
	}
	if !outcome.Sent {
		return nil, fmt.Errorf("send code: %w", outcome.Err)
	}

	s.log.InfoContext(ctx, "verification code sent",
		slog.String("email", email),
		slog.String("purpose", string(payload.Kind)),
		slog.Bool("used_fallback", outcome.UsedFallback),
	)

	return &CodeSentResult{ExpiresAt: issued.ExpiresAt, UsedFallback: outcome.UsedFallback}, nil
}

// redeemPayload consumes the code and decodes its payload, requiring the
// expected purpose. A payload of the wrong kind is treated as an invalid code.
func (s *Service) redeemPayload(ctx context.Context, email, code string, want domain.VerificationPurpose) (domain.VerificationPayload, error) {
	raw, err := s.codes.Redeem(ctx, verification.RedeemInput{Email: email, Code: code})
	if err != nil {
		return domain.VerificationPayload{}, err
	}

	payload, err := domain.DecodeVerificationPayload(raw)
	if err != nil {
		return domain.VerificationPayload{}, err
	}
	if payload.Kind != want {
		s.log.WarnContext(ctx, "verification code redeemed for another purpose",
			slog.String("email", email),
			slog.String("want", string(want)),
			slog.String("got", string(payload.Kind)),
		)
		return domain.VerificationPayload{}, domain.ErrInvalidOrExpiredCode
	}

	return payload, nil
}
