package verification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

// Issue supersedes any record for email with a fresh code and returns the
// plaintext code. The caller is responsible for delivering it.
func (s *Service) Issue(ctx context.Context, input IssueInput) (*IssueResult, error) {
	input.Email = normalizeEmail(input.Email)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	code, err := s.generate()
	if err != nil {
		return nil, fmt.Errorf("verification.Issue: %w", err)
	}

	now := s.now()
	rec := &domain.VerificationCode{
		ID:        uuid.New(),
		Email:     input.Email,
		Code:      code,
		ExpiresAt: now.Add(s.cfg.CodeTTL),
		Payload:   input.Payload,
		CreatedAt: now,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.codes.DeleteByEmail(txCtx, input.Email); err != nil {
			return fmt.Errorf("delete previous code: %w", err)
		}
		if err := s.codes.Create(txCtx, rec); err != nil {
			return fmt.Errorf("create code: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("verification.Issue: %w", err)
	}

	s.log.InfoContext(ctx, "verification code issued",
		slog.String("email", input.Email),
		slog.Time("expires_at", rec.ExpiresAt),
	)

	return &IssueResult{Code: code, ExpiresAt: rec.ExpiresAt}, nil
}
