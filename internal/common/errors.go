// Package common defines shared constants and sentinel errors used across
// Shopfront components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")

	// Crypto errors. These indicate corrupted data or misconfiguration and
	// must propagate, never be swallowed.
	ErrInvalidCiphertext = errors.New("invalid ciphertext")
	ErrMalformedHash     = errors.New("malformed password hash")

	// Auth errors.
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")

	// Order errors.
	ErrInvalidOrderTarget = errors.New("order must have exactly one of user or guest target")
)
