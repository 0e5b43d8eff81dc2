package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/shopfront/internal/dbx"
	"github.com/dmitrijs2005/shopfront/internal/server/migrations"
	"github.com/dmitrijs2005/shopfront/internal/server/repositories/orders"
	"github.com/dmitrijs2005/shopfront/internal/server/repositories/products"
	"github.com/dmitrijs2005/shopfront/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct {
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Products(db dbx.DBTX) products.Repository {
	return products.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Orders(db dbx.DBTX) orders.Repository {
	return orders.NewPostgresRepository(db)
}

// RunMigrations sets up goose with the embedded migrations and applies them.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, "postgres")
}
