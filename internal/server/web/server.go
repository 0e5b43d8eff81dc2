// Package web exposes the storefront as a JSON-over-HTTP API. The access
// token travels in an HttpOnly cookie; the cart/quiz session travels in a
// second, encrypted cookie. Both cookies degrade softly: anything invalid
// is treated as anonymous or an empty session, never an error response.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/shopfront/internal/logging"
	"github.com/dmitrijs2005/shopfront/internal/server/models"
	"github.com/dmitrijs2005/shopfront/internal/server/recommend"
)

// UserDirectory is the slice of the user service the web layer needs.
type UserDirectory interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	CurrentUser(ctx context.Context, token string) *models.User
}

// Catalog is the slice of the product service the web layer needs.
type Catalog interface {
	Get(ctx context.Context, id string) (*models.Product, error)
	Search(ctx context.Context, query string) ([]*models.Product, error)
}

// Checkout is the slice of the order service the web layer needs.
type Checkout interface {
	CreateOrder(ctx context.Context, ownerUserID, guestSessionID string, items []models.LineItem) (string, error)
	ListUserOrders(ctx context.Context, userID string) ([]*models.Order, error)
	ListGuestOrders(ctx context.Context, guestSessionID string) ([]*models.Order, error)
}

// Recommender produces upsell recommendations from questionnaire answers.
type Recommender func(recommend.Answers) []string

type Server struct {
	address  string
	logger   logging.Logger
	users    UserDirectory
	catalog  Catalog
	checkout Checkout
	sessions *SessionCodec
	recomm   Recommender
	tokenTTL time.Duration
}

func NewServer(address string, logger logging.Logger, users UserDirectory, catalog Catalog,
	checkout Checkout, sessions *SessionCodec, tokenTTL time.Duration) *Server {
	return &Server{
		address:  address,
		logger:   logger.With("module", "web"),
		users:    users,
		catalog:  catalog,
		checkout: checkout,
		sessions: sessions,
		recomm:   recommend.Recommend,
		tokenTTL: tokenTTL,
	}
}

// Handler builds the full route table wrapped in the shared middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /logout", s.handleLogout)
	mux.HandleFunc("GET /me", s.handleMe)

	mux.HandleFunc("GET /products", s.handleListProducts)
	mux.HandleFunc("GET /products/{id}", s.handleGetProduct)

	mux.HandleFunc("GET /cart", s.handleGetCart)
	mux.HandleFunc("POST /cart/items", s.handleAddToCart)
	mux.HandleFunc("DELETE /cart/items/{id}", s.handleRemoveFromCart)
	mux.HandleFunc("POST /checkout", s.handleCheckout)
	mux.HandleFunc("GET /orders", s.handleListOrders)

	mux.HandleFunc("POST /quiz/answers", s.handleQuizAnswers)
	mux.HandleFunc("GET /quiz/questions", s.handleQuizQuestions)
	mux.HandleFunc("GET /quiz/recommendations", s.handleQuizRecommendations)

	return s.withLogging(s.withCurrentUser(mux))
}

// Run serves HTTP until the context is canceled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
