package cmd

import (
	"fmt"

	"menu-manager/core/baseline"
	"menu-manager/core/config"
	"menu-manager/core/database"
	"menu-manager/core/reconcile"
	"menu-manager/core/staging"
	"menu-manager/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// services bundles the backends shared by the server and the CLI commands.
type services struct {
	cfg         *config.Config
	logger      *zap.Logger
	db          *gorm.DB
	client      storage.Client
	source      baseline.Source
	coordinator *reconcile.Coordinator
}

// usesStorage reports whether the configured baseline reads or writes object storage.
func usesStorage(cfg *config.Config) bool {
	if cfg.Reconcile.Mode == reconcile.ModeLocal {
		return false
	}
	return cfg.Baseline.Source == baseline.KindStorage || cfg.Baseline.Exporter == baseline.KindStorage
}

// openStaging connects the staging database. When it is unreachable the session
// falls back to an in-memory store, so staged edits do not survive a restart.
func openStaging(cfg *config.Config, logg *zap.Logger) (staging.Store, *gorm.DB) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Warn("Optional database connection failed, staging in memory", zap.Error(err))
		return staging.NewMemoryStore(), nil
	}

	store := staging.NewGormStore(db)
	if err := store.Migrate(); err != nil {
		logg.Warn("Staging migration failed, staging in memory", zap.Error(err))
		return staging.NewMemoryStore(), db
	}

	logg.Info("Connected to staging database", zap.String("driver", cfg.Database.Driver))
	return store, db
}

// newServices wires storage, staging and the sync coordinator from cfg.
func newServices(cfg *config.Config, logg *zap.Logger) (*services, error) {
	svcs := &services{cfg: cfg, logger: logg}

	if usesStorage(cfg) {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		svcs.client = client
	}

	store, db := openStaging(cfg, logg)
	svcs.db = db

	var exporter baseline.Exporter
	if cfg.Reconcile.Mode == reconcile.ModeSource {
		src, err := baseline.NewSource(cfg.Baseline, svcs.client, cfg.Storage.Bucket)
		if err != nil {
			return nil, err
		}
		svcs.source = src

		exporter, err = baseline.NewExporter(cfg.Baseline, svcs.client, cfg.Storage.Bucket)
		if err != nil {
			return nil, err
		}
	}

	coordinator, err := reconcile.NewCoordinator(cfg.Reconcile, svcs.source, exporter, store, logg)
	if err != nil {
		return nil, err
	}
	svcs.coordinator = coordinator

	return svcs, nil
}
