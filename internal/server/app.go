// Package server initializes and runs the storefront application: it opens
// the database, runs migrations, seeds the demo catalog, and starts the
// HTTP server with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/shopfront/internal/cryptox"
	"github.com/dmitrijs2005/shopfront/internal/logging"
	"github.com/dmitrijs2005/shopfront/internal/server/auth"
	"github.com/dmitrijs2005/shopfront/internal/server/config"
	"github.com/dmitrijs2005/shopfront/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/shopfront/internal/server/services"
	"github.com/dmitrijs2005/shopfront/internal/server/web"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *web.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	box, err := cryptox.NewBox(cfg.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("encryption key error: %w", err)
	}

	db, rm, err := repomanager.Open(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	tokens := auth.NewTokenManager(cfg.SecretKey, cfg.Algorithm, cfg.AccessTokenTTL)

	userService := services.NewUserService(db, rm, tokens)
	productService := services.NewProductService(db, rm, box)
	orderService := services.NewOrderService(db, rm, box)

	seeded, err := productService.Seed(context.Background())
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("seed error: %w", err)
	}
	if seeded > 0 {
		logger.Info(context.Background(), "seeded demo catalog", "products", seeded)
	}

	srv := web.NewServer(cfg.Address, logger, userService, productService, orderService,
		web.NewSessionCodec(box), cfg.AccessTokenTTL)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
