// Package users persists User rows.
package users

import (
	"context"

	"github.com/dmitrijs2005/shopfront/internal/server/models"
)

type Repository interface {
	// Create inserts a new user. A username collision fails with
	// common.ErrAlreadyExists, raised atomically by the storage-level
	// uniqueness constraint rather than a check-then-insert.
	Create(ctx context.Context, user *models.User) error

	// GetByUsername returns the user with the given username, or
	// common.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
