// Package orders persists the polymorphic Order rows: a base row in orders
// plus exactly one side row in user_orders or guest_orders, selected by the
// kind discriminator. Summaries arrive as ciphertext; the service layer
// owns encryption.
package orders

import (
	"context"
	"time"

	"github.com/dmitrijs2005/shopfront/internal/server/models"
)

// Record is the at-rest shape of an order.
type Record struct {
	ID                string
	Kind              models.OrderKind
	SummaryCiphertext []byte
	CreatedAt         time.Time

	// Exactly one of the two is non-empty, matching Kind.
	OwnerUserID    string
	GuestSessionID string
}

type Repository interface {
	// Create inserts the base row and the matching side row. Callers run it
	// inside a transaction so a side-row fault cannot leave a partial order.
	Create(ctx context.Context, rec *Record) error

	// ListByUser returns a user's orders, oldest first.
	ListByUser(ctx context.Context, userID string) ([]*Record, error)

	// ListByGuest returns a guest session's orders, oldest first.
	ListByGuest(ctx context.Context, guestSessionID string) ([]*Record, error)
}
