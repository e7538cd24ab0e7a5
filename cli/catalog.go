package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"estate-listings/config"
	"estate-listings/services"
	"estate-listings/storage"
	"estate-listings/utils"
)

// loadDataset reads the configured dataset file, or the embedded demo
// dataset when none is configured.
func (a *app) loadDataset() (*storage.Dataset, error) {
	if a.cfg.DatasetPath == "" {
		a.logger.Debug("[catalog] Using embedded demo dataset")
		return storage.LoadEmbedded()
	}
	a.logger.Debug("[catalog] Loading dataset %s", a.cfg.DatasetPath)
	return storage.LoadDataset(a.cfg.DatasetPath)
}

// openStore connects to the configured SQL database.
func (a *app) openStore(ctx context.Context) (*storage.SQLStore, error) {
	switch a.cfg.DBDriver {
	case config.DriverPostgres:
		retry := utils.RetryConfig{
			MaxAttempts: a.cfg.MaxRetries,
			BaseDelay:   time.Second,
			MaxDelay:    10 * time.Second,
			Logger:      a.logger,
		}
		return storage.NewPostgresStore(ctx, a.cfg.DSN(), retry, a.logger)
	case config.DriverSQLite:
		if a.cfg.SQLitePath != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(a.cfg.SQLitePath), 0755); err != nil {
				return nil, fmt.Errorf("sqlite: create data dir: %w", err)
			}
		}
		return storage.NewSQLiteStore(ctx, a.cfg.SQLitePath, a.logger)
	case config.DriverNone:
		return nil, fmt.Errorf("no database configured: set DB_DRIVER to %q or %q", config.DriverPostgres, config.DriverSQLite)
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", a.cfg.DBDriver)
}

// loadCatalog builds the read-only catalog. Listings come from the SQL
// snapshot when a database is configured and from the dataset otherwise;
// static content always comes from the dataset.
func (a *app) loadCatalog(ctx context.Context) (*services.Catalog, error) {
	ds, err := a.loadDataset()
	if err != nil {
		return nil, err
	}

	if a.cfg.DBDriver == config.DriverNone {
		listings := services.NewCleaner(a.logger).Clean(ds.Listings)
		return services.NewCatalog(listings, ds.Content), nil
	}

	store, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	listings, err := store.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	a.logger.Info("[catalog] Loaded %d listings from %s", len(listings), a.cfg.DBDriver)
	return services.NewCatalog(listings, ds.Content), nil
}
