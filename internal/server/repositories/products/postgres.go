package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shopfront/internal/common"
	"github.com/dmitrijs2005/shopfront/internal/dbx"
)

// PostgresRepository implements Repository using a DBTX (either *sql.DB or
// *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rec *Record) error {
	query :=
		`INSERT INTO products (id, name_ciphertext, description_ciphertext, name_digest, price, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.NameCiphertext, rec.DescriptionCiphertext, rec.NameDigest, rec.Price, rec.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Record, error) {
	query :=
		`SELECT id, name_ciphertext, description_ciphertext, name_digest, price, created_at FROM products
		 WHERE id = $1
		 `

	rec := &Record{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&rec.ID, &rec.NameCiphertext, &rec.DescriptionCiphertext, &rec.NameDigest, &rec.Price, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return rec, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Record, error) {
	query :=
		`SELECT id, name_ciphertext, description_ciphertext, name_digest, price, created_at FROM products
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var recs []*Record
	for rows.Next() {
		rec := &Record{}
		if err := rows.Scan(&rec.ID, &rec.NameCiphertext, &rec.DescriptionCiphertext,
			&rec.NameDigest, &rec.Price, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return recs, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error performing sql request: %w", err)
	}
	return count, nil
}
