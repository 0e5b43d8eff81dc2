package services

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/shopfront/internal/common"
	"github.com/dmitrijs2005/shopfront/internal/dbx"
	"github.com/dmitrijs2005/shopfront/internal/server/models"
	"github.com/dmitrijs2005/shopfront/internal/server/repositories/orders"
	"github.com/dmitrijs2005/shopfront/internal/server/repositories/products"
	"github.com/dmitrijs2005/shopfront/internal/server/repositories/users"
)

// --- in-memory fakes implementing the repository interfaces ---

type fakeRepoManager struct {
	usersRepo    users.Repository
	productsRepo products.Repository
	ordersRepo   orders.Repository
}

func (f *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (f *fakeRepoManager) Users(db dbx.DBTX) users.Repository                  { return f.usersRepo }
func (f *fakeRepoManager) Products(db dbx.DBTX) products.Repository            { return f.productsRepo }
func (f *fakeRepoManager) Orders(db dbx.DBTX) orders.Repository                { return f.ordersRepo }

type fakeUsersRepo struct {
	mu     sync.Mutex
	byName map[string]*models.User

	createErr error
	getErr    error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byName: make(map[string]*models.User)}
}

func (f *fakeUsersRepo) Create(ctx context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byName[user.Username]; ok {
		return common.ErrAlreadyExists
	}
	copied := *user
	f.byName[user.Username] = &copied
	return nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.byName[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

type fakeProductsRepo struct {
	mu       sync.Mutex
	recs     []*products.Record
	byDigest map[string]struct{}
}

func newFakeProductsRepo() *fakeProductsRepo {
	return &fakeProductsRepo{byDigest: make(map[string]struct{})}
}

func (f *fakeProductsRepo) Create(ctx context.Context, rec *products.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byDigest[rec.NameDigest]; ok {
		return common.ErrAlreadyExists
	}
	f.byDigest[rec.NameDigest] = struct{}{}
	f.recs = append(f.recs, rec)
	return nil
}

func (f *fakeProductsRepo) GetByID(ctx context.Context, id string) (*products.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.recs {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeProductsRepo) List(ctx context.Context) ([]*products.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*products.Record(nil), f.recs...), nil
}

func (f *fakeProductsRepo) Count(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.recs), nil
}

type fakeOrdersRepo struct {
	mu        sync.Mutex
	recs      []*orders.Record
	createErr error
}

func (f *fakeOrdersRepo) Create(ctx context.Context, rec *orders.Record) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recs = append(f.recs, rec)
	return nil
}

func (f *fakeOrdersRepo) ListByUser(ctx context.Context, userID string) ([]*orders.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*orders.Record
	for _, rec := range f.recs {
		if rec.OwnerUserID == userID && rec.Kind == models.OrderKindUser {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeOrdersRepo) ListByGuest(ctx context.Context, guestSessionID string) ([]*orders.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*orders.Record
	for _, rec := range f.recs {
		if rec.GuestSessionID == guestSessionID && rec.Kind == models.OrderKindGuest {
			out = append(out, rec)
		}
	}
	return out, nil
}
