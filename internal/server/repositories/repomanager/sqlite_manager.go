package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/shopfront/internal/dbx"
	"github.com/dmitrijs2005/shopfront/internal/server/migrations"
	"github.com/dmitrijs2005/shopfront/internal/server/repositories/orders"
	"github.com/dmitrijs2005/shopfront/internal/server/repositories/products"
	"github.com/dmitrijs2005/shopfront/internal/server/repositories/users"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

type SQLiteRepositoryManager struct {
}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Products(db dbx.DBTX) products.Repository {
	return products.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Orders(db dbx.DBTX) orders.Repository {
	return orders.NewSQLiteRepository(db)
}

// RunMigrations sets up goose with the embedded migrations and applies them.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, "sqlite")
}
