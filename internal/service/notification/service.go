// Package notification evaluates users' inventories against their
// preferences and dispatches expiration digests and weekly summaries, either
// on a schedule or on demand.
package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantrywatch-backend/internal/config"
	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
	"github.com/heartmarshall/pantrywatch-backend/internal/service/delivery"
)

// preferenceRepo defines the preference store needed by notification service.
type preferenceRepo interface {
	GetOrCreateDefault(ctx context.Context, userID uuid.UUID, accountEmail string) (*domain.NotificationPreference, error)
	UpdateLastNotified(ctx context.Context, id uuid.UUID, at time.Time) error
	ListMatching(ctx context.Context, f domain.PreferenceFilter) ([]domain.NotificationPreference, error)
	Update(ctx context.Context, p *domain.NotificationPreference) (*domain.NotificationPreference, error)
}

// inventoryRepo defines the read-only inventory queries.
type inventoryRepo interface {
	ExpiringItems(ctx context.Context, userID uuid.UUID, daysThreshold int, today time.Time) ([]domain.PerishableItem, error)
	AllItems(ctx context.Context, userID uuid.UUID) ([]domain.PerishableItem, error)
}

// userRepo resolves the account email used for default preferences.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// gateway delivers rendered notifications.
type gateway interface {
	SendExpirationDigest(ctx context.Context, to string, expired, expiringSoon []domain.ItemStatus) (delivery.Outcome, error)
	SendWeeklySummary(ctx context.Context, to string, items []domain.ItemStatus) (delivery.Outcome, error)
	SendGenericMessage(ctx context.Context, to, subject, text, html string) (delivery.Outcome, error)
}

// Service runs notification cycles for one user or for every matching user.
type Service struct {
	log       *slog.Logger
	prefs     preferenceRepo
	inventory inventoryRepo
	users     userRepo
	gateway   gateway
	cfg       config.NotificationsConfig

	now func() time.Time
}

// NewService creates a new notification service instance.
func NewService(
	logger *slog.Logger,
	prefs preferenceRepo,
	inventory inventoryRepo,
	users userRepo,
	gw gateway,
	cfg config.NotificationsConfig,
) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	// Scheduled digests never reach past the expiring-soon window.
	if cfg.DigestThresholdDays <= 0 || cfg.DigestThresholdDays > domain.ExpiringSoonDays {
		cfg.DigestThresholdDays = domain.ExpiringSoonDays
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return &Service{
		log:       logger.With("service", "notification"),
		prefs:     prefs,
		inventory: inventory,
		users:     users,
		gateway:   gw,
		cfg:       cfg,
		now:       time.Now,
	}
}
