package auth

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantrywatch-backend/internal/config"
	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
	"github.com/heartmarshall/pantrywatch-backend/internal/service/delivery"
	"github.com/heartmarshall/pantrywatch-backend/internal/service/verification"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// preferenceRepo creates the default notification preference for new accounts.
type preferenceRepo interface {
	GetOrCreateDefault(ctx context.Context, userID uuid.UUID, accountEmail string) (*domain.NotificationPreference, error)
}

// codeService issues and redeems verification codes.
type codeService interface {
	Issue(ctx context.Context, input verification.IssueInput) (*verification.IssueResult, error)
	Redeem(ctx context.Context, input verification.RedeemInput) (string, error)
	CodeTTL() time.Duration
}

// mailer delivers verification codes.
type mailer interface {
	SendVerificationCode(ctx context.Context, to, code string, purpose domain.VerificationPurpose, ttl time.Duration) (delivery.Outcome, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager issues access tokens for freshly registered users.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
}

// Service implements email-verified registration and password reset.
type Service struct {
	log   *slog.Logger
	users userRepo
	prefs preferenceRepo
	codes codeService
	mail  mailer
	tx    txManager
	jwt   jwtManager
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	prefs preferenceRepo,
	codes codeService,
	mail mailer,
	tx txManager,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		prefs: prefs,
		codes: codes,
		mail:  mail,
		tx:    tx,
		jwt:   jwt,
		cfg:   cfg,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
