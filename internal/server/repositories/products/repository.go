// Package products persists Product rows. Repositories work on Record,
// whose sensitive fields are already ciphertext: encryption happens in the
// service layer, storage never sees plaintext.
package products

import (
	"context"
	"time"
)

// Record is the at-rest shape of a product.
type Record struct {
	ID                    string
	NameCiphertext        []byte
	DescriptionCiphertext []byte
	NameDigest            string
	Price                 float64
	CreatedAt             time.Time
}

type Repository interface {
	// Create inserts a new product. A name-digest collision (same plaintext
	// name) fails with common.ErrAlreadyExists.
	Create(ctx context.Context, rec *Record) error

	// GetByID returns one product or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*Record, error)

	// List returns all products in creation order.
	List(ctx context.Context) ([]*Record, error)

	// Count returns the number of stored products.
	Count(ctx context.Context) (int, error)
}
