package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

// RequestPasswordReset emails a reset code to a registered address. An unknown
// address is a silent no-op so the endpoint cannot be used to probe accounts.
func (s *Service) RequestPasswordReset(ctx context.Context, input ResetRequestInput) error {
	input.Email = normalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.DebugContext(ctx, "password reset for unknown email ignored")
			return nil
		}
		return fmt.Errorf("auth.RequestPasswordReset lookup: %w", err)
	}

	userID := user.ID
	payload := domain.VerificationPayload{Kind: domain.PurposePasswordReset, UserID: &userID}

	if _, err := s.issueAndSend(ctx, input.Email, payload); err != nil {
		return fmt.Errorf("auth.RequestPasswordReset: %w", err)
	}

	return nil
}

// ConfirmPasswordReset redeems the reset code and replaces the password hash.
// Returns the id of the updated account.
func (s *Service) ConfirmPasswordReset(ctx context.Context, input ResetConfirmInput) (uuid.UUID, error) {
	input.Email = normalizeEmail(input.Email)
	input.Code = strings.TrimSpace(input.Code)

	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	payload, err := s.redeemPayload(ctx, input.Email, input.Code, domain.PurposePasswordReset)
	if err != nil {
		return uuid.Nil, fmt.Errorf("auth.ConfirmPasswordReset: %w", err)
	}
	userID := *payload.UserID

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.BcryptCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("auth.ConfirmPasswordReset hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, string(hash)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, fmt.Errorf("auth.ConfirmPasswordReset: %w", domain.ErrUserNotFound)
		}
		return uuid.Nil, fmt.Errorf("auth.ConfirmPasswordReset: %w", err)
	}

	s.log.InfoContext(ctx, "password reset", slog.String("user_id", userID.String()))

	return userID, nil
}
