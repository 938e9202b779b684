package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

// StartRegistration validates the account fields, stores them with a fresh
// verification code and emails the code. Nothing is written to users until
// the code is redeemed. Returns ErrAlreadyExists if the email is taken.
func (s *Service) StartRegistration(ctx context.Context, input RegisterInput) (*CodeSentResult, error) {
	input.Email = normalizeEmail(input.Email)
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	_, err := s.users.GetByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("auth.StartRegistration: %w", domain.ErrAlreadyExists)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("auth.StartRegistration lookup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.StartRegistration hash password: %w", err)
	}

	payload := domain.VerificationPayload{
		Kind: domain.PurposeRegistration,
		Registration: &domain.RegistrationData{
			Email:        input.Email,
			Username:     input.Username,
			PasswordHash: string(hash),
		},
	}

	res, err := s.issueAndSend(ctx, input.Email, payload)
	if err != nil {
		return nil, fmt.Errorf("auth.StartRegistration: %w", err)
	}

	return res, nil
}

// CompleteRegistration redeems the code, creates the account together with
// its default notification preference, and issues an access token.
func (s *Service) CompleteRegistration(ctx context.Context, input VerifyInput) (*AuthResult, error) {
	input.Email = normalizeEmail(input.Email)
	input.Code = strings.TrimSpace(input.Code)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	payload, err := s.redeemPayload(ctx, input.Email, input.Code, domain.PurposeRegistration)
	if err != nil {
		return nil, fmt.Errorf("auth.CompleteRegistration: %w", err)
	}
	reg := payload.Registration
	if normalizeEmail(reg.Email) != input.Email {
		return nil, fmt.Errorf("auth.CompleteRegistration: %w", domain.ErrInvalidOrExpiredCode)
	}

	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		user, err := s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			Email:        input.Email,
			Username:     reg.Username,
			PasswordHash: reg.PasswordHash,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if _, err := s.prefs.GetOrCreateDefault(txCtx, user.ID, user.Email); err != nil {
			return fmt.Errorf("create preference: %w", err)
		}

		created = user
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth.CompleteRegistration: %w", err)
	}

	token, err := s.jwt.GenerateAccessToken(created.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.CompleteRegistration issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", created.ID.String()))

	return &AuthResult{AccessToken: token, User: created}, nil
}
