// Package verification implements the verification-code store using PostgreSQL.
package verification

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/pantrywatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

const entity = "verification_code"

// Repo provides verification-code persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new verification-code repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByEmail returns the record for email, live or not. Redeem never reads
// through it; it serves inspection and the repository tests.
// Returns domain.ErrNotFound when none exists.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.VerificationCode, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var c domain.VerificationCode
	err := pgxscan.Get(ctx, q, &c,
		`SELECT id, email, code, expires_at, consumed, attempts, payload, created_at
		 FROM verification_codes WHERE email = $1`, email)
	if err != nil {
		return nil, postgres.MapError(err, entity, email)
	}

	return &c, nil
}

// Create stores a new code. An existing record for the same email is
// replaced, so two concurrent issues leave exactly one record behind.
func (r *Repo) Create(ctx context.Context, c *domain.VerificationCode) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO verification_codes (id, email, code, expires_at, consumed, attempts, payload, created_at)
		 VALUES ($1, $2, $3, $4, false, 0, $5, $6)
		 ON CONFLICT (email) DO UPDATE SET
		   id = EXCLUDED.id,
		   code = EXCLUDED.code,
		   expires_at = EXCLUDED.expires_at,
		   consumed = false,
		   attempts = 0,
		   payload = EXCLUDED.payload,
		   created_at = EXCLUDED.created_at`,
		c.ID, c.Email, c.Code, c.ExpiresAt, c.Payload, c.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, entity, c.Email)
	}

	return nil
}

// DeleteByEmail removes any record for email. Deleting nothing is not an error.
func (r *Repo) DeleteByEmail(ctx context.Context, email string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM verification_codes WHERE email = $1`, email); err != nil {
		return postgres.MapError(err, entity, email)
	}

	return nil
}

// Consume atomically marks the matching live code consumed and returns its
// payload. The predicate and the write are one statement, so at most one of
// several concurrent callers succeeds. Returns domain.ErrInvalidOrExpiredCode
// when no row qualifies.
func (r *Repo) Consume(ctx context.Context, email, code string, now time.Time, maxAttempts int) (string, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var payload string
	err := q.QueryRow(ctx,
		`UPDATE verification_codes SET consumed = true
		 WHERE email = $1 AND code = $2 AND consumed = false
		   AND expires_at >= $3 AND attempts < $4
		 RETURNING payload`,
		email, code, now, maxAttempts,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrInvalidOrExpiredCode
		}
		return "", postgres.MapError(err, entity, email)
	}

	return payload, nil
}

// IncrementAttempts records a failed redemption against the live record for
// email, if any.
func (r *Repo) IncrementAttempts(ctx context.Context, email string, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE verification_codes SET attempts = attempts + 1
		 WHERE email = $1 AND consumed = false AND expires_at >= $2`,
		email, now,
	)
	if err != nil {
		return postgres.MapError(err, entity, email)
	}

	return nil
}

// DeleteStale removes consumed records and records that expired before now.
// Returns the number of deleted rows.
func (r *Repo) DeleteStale(ctx context.Context, now time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder().
		Delete("verification_codes").
		Where(squirrel.Or{
			squirrel.Eq{"consumed": true},
			squirrel.Lt{"expires_at": now},
		}).
		ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, entity, "stale")
	}

	return int(tag.RowsAffected()), nil
}
