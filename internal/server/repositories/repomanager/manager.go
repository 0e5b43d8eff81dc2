// Package repomanager wires the per-entity repositories to a concrete SQL
// engine and runs the embedded schema migrations for it.
package repomanager

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/shopfront/internal/dbx"
	"github.com/dmitrijs2005/shopfront/internal/server/repositories/orders"
	"github.com/dmitrijs2005/shopfront/internal/server/repositories/products"
	"github.com/dmitrijs2005/shopfront/internal/server/repositories/users"
)

// RepositoryManager builds repositories bound to a DBTX, so services can
// run them against either the pooled *sql.DB or an open transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Products(db dbx.DBTX) products.Repository
	Orders(db dbx.DBTX) orders.Repository
}

// Open picks the engine from the DSN (postgres:// URLs go to pgx, anything
// else is treated as a SQLite file path, matching the zero-setup default),
// opens the database, and returns it with the matching manager.
func Open(dsn string) (*sql.DB, RepositoryManager, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, nil, err
		}
		return db, &PostgresRepositoryManager{}, nil
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, nil, err
	}
	return db, &SQLiteRepositoryManager{}, nil
}
