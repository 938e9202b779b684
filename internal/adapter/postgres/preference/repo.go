// Package preference implements the notification-preference store using PostgreSQL.
package preference

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/pantrywatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

const entity = "notification_preference"

var columns = []string{
	"id", "user_id", "expiration_alerts_enabled", "expiration_frequency",
	"weekly_summary_enabled", "email_delivery_enabled", "email_address",
	"last_notified_at", "created_at", "updated_at",
}

// Repo provides notification-preference persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new preference repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Get returns the preference for userID, or domain.ErrNotFound if none exists.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.NotificationPreference, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From("notification_preferences").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var p domain.NotificationPreference
	if err := pgxscan.Get(ctx, q, &p, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}

	return &p, nil
}

// GetOrCreateDefault returns the preference for userID, inserting the default
// record first when none exists. Concurrent callers converge on one row.
func (r *Repo) GetOrCreateDefault(ctx context.Context, userID uuid.UUID, accountEmail string) (*domain.NotificationPreference, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	def := domain.DefaultNotificationPreference(userID, accountEmail)

	_, err := q.Exec(ctx,
		`INSERT INTO notification_preferences
		   (id, user_id, expiration_alerts_enabled, expiration_frequency,
		    weekly_summary_enabled, email_delivery_enabled, email_address)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id) DO NOTHING`,
		uuid.New(), def.UserID, def.ExpirationAlertsEnabled, string(def.ExpirationFrequency),
		def.WeeklySummaryEnabled, def.EmailDeliveryEnabled, def.EmailAddress,
	)
	if err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}

	return r.Get(ctx, userID)
}

// UpdateLastNotified sets the watermark of preference id. Last write wins.
func (r *Repo) UpdateLastNotified(ctx context.Context, id uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE notification_preferences SET last_notified_at = $2 WHERE id = $1`,
		id, at,
	)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	return nil
}

// ListMatching returns every preference selected by f, ordered by user id.
// Rows without delivery enabled or without a non-blank address never match.
func (r *Repo) ListMatching(ctx context.Context, f domain.PreferenceFilter) ([]domain.NotificationPreference, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	where := squirrel.And{
		squirrel.Eq{"email_delivery_enabled": true},
		squirrel.NotEq{"email_address": nil},
		squirrel.Expr("btrim(email_address) <> ''"),
	}
	if f.ExpirationAlertsEnabled != nil {
		where = append(where, squirrel.Eq{"expiration_alerts_enabled": *f.ExpirationAlertsEnabled})
	}
	if f.ExpirationFrequency != nil {
		where = append(where, squirrel.Eq{"expiration_frequency": string(*f.ExpirationFrequency)})
	}
	if f.WeeklySummaryEnabled != nil {
		where = append(where, squirrel.Eq{"weekly_summary_enabled": *f.WeeklySummaryEnabled})
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From("notification_preferences").
		Where(where).
		OrderBy("user_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var prefs []domain.NotificationPreference
	if err := pgxscan.Select(ctx, q, &prefs, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, "list")
	}

	return prefs, nil
}

// Update writes the user-editable fields of p. The watermark is left untouched.
func (r *Repo) Update(ctx context.Context, p *domain.NotificationPreference) (*domain.NotificationPreference, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Update("notification_preferences").
		Set("expiration_alerts_enabled", p.ExpirationAlertsEnabled).
		Set("expiration_frequency", string(p.ExpirationFrequency)).
		Set("weekly_summary_enabled", p.WeeklySummaryEnabled).
		Set("email_delivery_enabled", p.EmailDeliveryEnabled).
		Set("email_address", p.EmailAddress).
		Where(squirrel.Eq{"user_id": p.UserID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out domain.NotificationPreference
	if err := pgxscan.Get(ctx, q, &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, p.UserID)
	}

	return &out, nil
}
