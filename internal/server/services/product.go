package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/shopfront/internal/cryptox"
	"github.com/dmitrijs2005/shopfront/internal/server/models"
	"github.com/dmitrijs2005/shopfront/internal/server/repositories/products"
	"github.com/dmitrijs2005/shopfront/internal/server/repositories/repomanager"
)

// ProductService owns the product catalog. Name and description pass
// through the cipher box on every write and read; storage only ever holds
// ciphertext plus the deterministic name digest that backs plaintext
// uniqueness.
type ProductService struct {
	db  *sql.DB
	rm  repomanager.RepositoryManager
	box *cryptox.Box
}

func NewProductService(db *sql.DB, rm repomanager.RepositoryManager, box *cryptox.Box) *ProductService {
	return &ProductService{db: db, rm: rm, box: box}
}

// Create encrypts the product fields and inserts the row. A product with
// the same plaintext name fails with common.ErrAlreadyExists via the unique
// name digest.
func (s *ProductService) Create(ctx context.Context, name, description string, price float64) (*models.Product, error) {
	product := &models.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Price:       price,
		CreatedAt:   time.Now(),
	}

	rec, err := s.encrypt(product)
	if err != nil {
		return nil, err
	}

	if err := s.rm.Products(s.db).Create(ctx, rec); err != nil {
		return nil, err
	}

	return product, nil
}

// Get returns one decrypted product or common.ErrNotFound.
func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	rec, err := s.rm.Products(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.decrypt(rec)
}

// List returns the full decrypted catalog in creation order.
func (s *ProductService) List(ctx context.Context) ([]*models.Product, error) {
	recs, err := s.rm.Products(s.db).List(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]*models.Product, 0, len(recs))
	for _, rec := range recs {
		p, err := s.decrypt(rec)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}

	return list, nil
}

// Search returns products whose plaintext name contains the query,
// case-insensitively. Ciphertext is not searchable, so the catalog is
// decrypted and filtered in memory; an empty query returns everything.
func (s *ProductService) Search(ctx context.Context, query string) ([]*models.Product, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return list, nil
	}

	needle := strings.ToLower(query)
	matched := make([]*models.Product, 0, len(list))
	for _, p := range list {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matched = append(matched, p)
		}
	}

	return matched, nil
}

func (s *ProductService) encrypt(p *models.Product) (*products.Record, error) {
	nameCt, err := s.box.Encrypt(p.Name)
	if err != nil {
		return nil, fmt.Errorf("error encrypting product name: %w", err)
	}
	descCt, err := s.box.Encrypt(p.Description)
	if err != nil {
		return nil, fmt.Errorf("error encrypting product description: %w", err)
	}

	return &products.Record{
		ID:                    p.ID,
		NameCiphertext:        nameCt,
		DescriptionCiphertext: descCt,
		NameDigest:            s.box.Fingerprint(p.Name),
		Price:                 p.Price,
		CreatedAt:             p.CreatedAt,
	}, nil
}

func (s *ProductService) decrypt(rec *products.Record) (*models.Product, error) {
	name, err := s.box.Decrypt(rec.NameCiphertext)
	if err != nil {
		return nil, fmt.Errorf("error decrypting product name: %w", err)
	}
	description, err := s.box.Decrypt(rec.DescriptionCiphertext)
	if err != nil {
		return nil, fmt.Errorf("error decrypting product description: %w", err)
	}

	return &models.Product{
		ID:          rec.ID,
		Name:        name,
		Description: description,
		Price:       rec.Price,
		CreatedAt:   rec.CreatedAt,
	}, nil
}
