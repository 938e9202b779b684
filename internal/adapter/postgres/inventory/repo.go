// Package inventory reads perishable items for the notification subsystem.
// Item CRUD is owned elsewhere; this repository never writes.
package inventory

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/pantrywatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

const entity = "perishable_item"

// Repo provides read access to perishable items backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new inventory repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) selectItems(userID uuid.UUID) squirrel.SelectBuilder {
	return postgres.Builder().
		Select("id", "user_id", "name", "quantity", "unit", "expiration_date", "created_at").
		From("perishable_items").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Gt{"quantity": 0}).
		OrderBy("expiration_date", "name")
}

// ExpiringItems returns the user's non-consumed items whose expiration date
// is on or before today + daysThreshold, already-expired items included.
func (r *Repo) ExpiringItems(ctx context.Context, userID uuid.UUID, daysThreshold int, today time.Time) ([]domain.PerishableItem, error) {
	y, m, d := today.Date()
	cutoff := time.Date(y, m, d+daysThreshold, 0, 0, 0, 0, time.UTC)

	sql, args, err := r.selectItems(userID).
		Where(squirrel.LtOrEq{"expiration_date": cutoff}).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.list(ctx, userID, sql, args)
}

// AllItems returns every non-consumed item of the user.
func (r *Repo) AllItems(ctx context.Context, userID uuid.UUID) ([]domain.PerishableItem, error) {
	sql, args, err := r.selectItems(userID).ToSql()
	if err != nil {
		return nil, err
	}

	return r.list(ctx, userID, sql, args)
}

func (r *Repo) list(ctx context.Context, userID uuid.UUID, sql string, args []any) ([]domain.PerishableItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var items []domain.PerishableItem
	if err := pgxscan.Select(ctx, q, &items, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}

	return items, nil
}
