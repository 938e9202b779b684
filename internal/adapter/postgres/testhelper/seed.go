package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique email. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "user-" + suffix,
		PasswordHash: "hash-" + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedItem creates a perishable item for userID expiring on the given date.
func SeedItem(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string, quantity float64, expiration time.Time) domain.PerishableItem {
	t.Helper()
	ctx := context.Background()

	y, m, d := expiration.Date()
	item := domain.PerishableItem{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Quantity:       quantity,
		Unit:           "pcs",
		ExpirationDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO perishable_items (id, user_id, name, quantity, unit, expiration_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		item.ID, item.UserID, item.Name, item.Quantity, item.Unit, item.ExpirationDate, item.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}

	return item
}

// SeedPreference inserts a preference row as given. Zero ID gets a fresh one.
func SeedPreference(t *testing.T, pool *pgxpool.Pool, p domain.NotificationPreference) domain.NotificationPreference {
	t.Helper()
	ctx := context.Background()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.ExpirationFrequency == "" {
		p.ExpirationFrequency = domain.FrequencyWeekly
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO notification_preferences
		   (id, user_id, expiration_alerts_enabled, expiration_frequency, weekly_summary_enabled,
		    email_delivery_enabled, email_address, last_notified_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.UserID, p.ExpirationAlertsEnabled, string(p.ExpirationFrequency), p.WeeklySummaryEnabled,
		p.EmailDeliveryEnabled, p.EmailAddress, p.LastNotifiedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPreference: %v", err)
	}

	return p
}
