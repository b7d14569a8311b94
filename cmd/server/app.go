package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/dinosaur-api/internal/config"
	"github.com/phrazzld/dinosaur-api/internal/platform/metrics"
	"github.com/phrazzld/dinosaur-api/internal/platform/postgres"
	"github.com/phrazzld/dinosaur-api/internal/seed"
	"github.com/phrazzld/dinosaur-api/internal/store"
	"github.com/phrazzld/dinosaur-api/internal/store/memory"
)

// application holds the shared application dependencies and releases them on
// shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil with the memory driver.
	db *sql.DB

	catalog store.Catalog
	seeder  store.Seeder
	metrics *metrics.HTTPMetrics
}

// catalogStore is what both store implementations provide.
type catalogStore interface {
	store.Catalog
	store.Seeder
}

// newApplication creates the store selected by cfg and the metrics registry.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var s catalogStore
	switch cfg.Database.Driver {
	case config.DriverMemory:
		s = memory.New(logger)
	case config.DriverPostgres:
		db, err := setupAppDatabase(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		app.db = db
		s = postgres.NewPostgresStore(db, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	app.catalog = s
	app.seeder = s

	m, err := metrics.New()
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}
	app.metrics = m

	logger.Info("Application initialized successfully", "driver", cfg.Database.Driver)
	return app, nil
}

// seedCatalog replaces the catalog with the built-in dataset.
func (app *application) seedCatalog(ctx context.Context) error {
	if _, err := seed.Run(ctx, app.seeder, seed.Default(), app.logger); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}

// Run serves HTTP until ctx is canceled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	router, err := app.setupRouter()
	if err != nil {
		app.cleanup()
		return fmt.Errorf("failed to set up router: %w", err)
	}

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
