// Package models defines the persisted entities and the typed per-visitor
// session state.
package models

import "time"

// User is a registered account. PasswordHash is bcrypt output produced once
// at registration (or accepted pre-hashed during seeding); it is never the
// plaintext password and is immutable afterwards.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
