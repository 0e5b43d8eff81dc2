package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/shopfront/internal/common"
	"github.com/dmitrijs2005/shopfront/internal/cryptox"
	"github.com/dmitrijs2005/shopfront/internal/dbx"
	"github.com/dmitrijs2005/shopfront/internal/server/models"
	"github.com/dmitrijs2005/shopfront/internal/server/repositories/orders"
	"github.com/dmitrijs2005/shopfront/internal/server/repositories/repomanager"
)

// OrderService creates and lists orders. The product summary is a
// human-readable "Name x quantity" listing, encrypted before it reaches
// storage; orders are immutable once created.
type OrderService struct {
	db  *sql.DB
	rm  repomanager.RepositoryManager
	box *cryptox.Box
}

func NewOrderService(db *sql.DB, rm repomanager.RepositoryManager, box *cryptox.Box) *OrderService {
	return &OrderService{db: db, rm: rm, box: box}
}

// CreateOrder persists a checkout for exactly one target: an owning user or
// a guest session. Both set, or neither set, fails with
// common.ErrInvalidOrderTarget. The base row and the side row are written
// in one transaction, rolled back together on any fault.
func (s *OrderService) CreateOrder(ctx context.Context, ownerUserID, guestSessionID string, items []models.LineItem) (string, error) {
	if (ownerUserID == "") == (guestSessionID == "") {
		return "", common.ErrInvalidOrderTarget
	}
	if len(items) == 0 {
		return "", fmt.Errorf("order must contain at least one line item")
	}

	summaryCt, err := s.box.Encrypt(SummarizeItems(items))
	if err != nil {
		return "", fmt.Errorf("error encrypting order summary: %w", err)
	}

	rec := &orders.Record{
		ID:                uuid.NewString(),
		SummaryCiphertext: summaryCt,
		CreatedAt:         time.Now(),
	}
	if ownerUserID != "" {
		rec.Kind = models.OrderKindUser
		rec.OwnerUserID = ownerUserID
	} else {
		rec.Kind = models.OrderKindGuest
		rec.GuestSessionID = guestSessionID
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.rm.Orders(tx).Create(ctx, rec)
	})
	if err != nil {
		return "", fmt.Errorf("error creating order: %w", err)
	}

	return rec.ID, nil
}

// ListUserOrders returns a user's decrypted orders, oldest first.
func (s *OrderService) ListUserOrders(ctx context.Context, userID string) ([]*models.Order, error) {
	recs, err := s.rm.Orders(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.decryptAll(recs)
}

// ListGuestOrders returns a guest session's decrypted orders, oldest first.
func (s *OrderService) ListGuestOrders(ctx context.Context, guestSessionID string) ([]*models.Order, error) {
	recs, err := s.rm.Orders(s.db).ListByGuest(ctx, guestSessionID)
	if err != nil {
		return nil, err
	}
	return s.decryptAll(recs)
}

func (s *OrderService) decryptAll(recs []*orders.Record) ([]*models.Order, error) {
	list := make([]*models.Order, 0, len(recs))
	for _, rec := range recs {
		summary, err := s.box.Decrypt(rec.SummaryCiphertext)
		if err != nil {
			return nil, fmt.Errorf("error decrypting order summary: %w", err)
		}
		list = append(list, &models.Order{
			ID:             rec.ID,
			Kind:           rec.Kind,
			OwnerUserID:    rec.OwnerUserID,
			GuestSessionID: rec.GuestSessionID,
			ProductSummary: summary,
			CreatedAt:      rec.CreatedAt,
		})
	}
	return list, nil
}

// SummarizeItems renders line items as "Name x quantity, Name x quantity",
// preserving the given order.
func SummarizeItems(items []models.LineItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s x %d", item.ProductName, item.Quantity))
	}
	return strings.Join(parts, ", ")
}
