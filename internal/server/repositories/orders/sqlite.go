package orders

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/shopfront/internal/dbx"
	"github.com/dmitrijs2005/shopfront/internal/server/models"
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
		`INSERT INTO orders (id, kind, product_summary_ciphertext, created_at)
		 VALUES (?, ?, ?, ?)
		 `

	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.Kind, rec.SummaryCiphertext, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("error inserting order: %w", err)
	}

	switch rec.Kind {
	case models.OrderKindUser:
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO user_orders (order_id, user_id) VALUES (?, ?)`,
			rec.ID, rec.OwnerUserID)
	case models.OrderKindGuest:
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO guest_orders (order_id, guest_session_id) VALUES (?, ?)`,
			rec.ID, rec.GuestSessionID)
	default:
		return fmt.Errorf("unknown order kind %q", rec.Kind)
	}
	if err != nil {
		return fmt.Errorf("error inserting order target: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID string) ([]*Record, error) {
	query :=
		`SELECT o.id, o.kind, o.product_summary_ciphertext, o.created_at, uo.user_id
		 FROM orders o
		 JOIN user_orders uo ON uo.order_id = o.id
		 WHERE uo.user_id = ?
		 ORDER BY o.created_at, o.id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var recs []*Record
	for rows.Next() {
		rec := &Record{}
		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.SummaryCiphertext, &rec.CreatedAt, &rec.OwnerUserID); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return recs, nil
}

func (r *SQLiteRepository) ListByGuest(ctx context.Context, guestSessionID string) ([]*Record, error) {
	query :=
		`SELECT o.id, o.kind, o.product_summary_ciphertext, o.created_at, go.guest_session_id
		 FROM orders o
		 JOIN guest_orders go ON go.order_id = o.id
		 WHERE go.guest_session_id = ?
		 ORDER BY o.created_at, o.id
		 `

	rows, err := r.db.QueryContext(ctx, query, guestSessionID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var recs []*Record
	for rows.Next() {
		rec := &Record{}
		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.SummaryCiphertext, &rec.CreatedAt, &rec.GuestSessionID); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return recs, nil
}
