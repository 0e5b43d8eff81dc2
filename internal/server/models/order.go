package models

import "time"

// OrderKind discriminates the two order variants.
type OrderKind string

const (
	OrderKindUser  OrderKind = "user"
	OrderKindGuest OrderKind = "guest"
)

// Order is a completed checkout. Exactly one of OwnerUserID and
// GuestSessionID is set, matching Kind; an order is never both or neither.
// ProductSummary is the human-readable "Name x quantity" listing, plaintext
// in memory and ciphertext at rest. Orders are never mutated after creation.
type Order struct {
	ID             string
	Kind           OrderKind
	OwnerUserID    string
	GuestSessionID string
	ProductSummary string
	CreatedAt      time.Time
}

// LineItem is one (product name, quantity) contribution to an order.
type LineItem struct {
	ProductName string
	Quantity    int
}
