package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shopfront/internal/common"
	"github.com/dmitrijs2005/shopfront/internal/dbx"
)

// SQLiteRepository implements Repository for the embedded SQLite engine.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, rec *Record) error {
	query :=
		`INSERT INTO products (id, name_ciphertext, description_ciphertext, name_digest, price, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
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

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*Record, error) {
	query :=
		`SELECT id, name_ciphertext, description_ciphertext, name_digest, price, created_at FROM products
		 WHERE id = ?
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

func (r *SQLiteRepository) List(ctx context.Context) ([]*Record, error) {
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

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error performing sql request: %w", err)
	}
	return count, nil
}
