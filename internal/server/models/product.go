package models

import "time"

// Product is a catalog item. Name and Description hold plaintext in memory
// only; repositories persist them as ciphertext, plus a deterministic name
// digest backing the plaintext-uniqueness constraint. Price is stored in
// clear.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	CreatedAt   time.Time
}
