package domain

import (
	"time"

	"github.com/google/uuid"
)

// PerishableItem is a single inventory line owned by a user. The notification
// subsystem only reads items; CRUD lives elsewhere.
type PerishableItem struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	Name           string    `db:"name"`
	Quantity       float64   `db:"quantity"`
	Unit           string    `db:"unit"`
	ExpirationDate time.Time `db:"expiration_date"`
	CreatedAt      time.Time `db:"created_at"`
}

// Consumed reports whether the item has been used up. Consumed items are
// excluded from every expiration evaluation.
func (i PerishableItem) Consumed() bool {
	return i.Quantity <= 0
}

// ItemStatus pairs an item with its classification for one evaluation pass.
type ItemStatus struct {
	Item   PerishableItem
	Status ExpirationStatus
}
