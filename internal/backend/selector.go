// Package backend chooses the PostingStore once at startup: the primary
// PostgreSQL store when it is configured and answers a probe, otherwise the
// embedded SQLite store. There is no failback while the process runs.
package backend

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/job-board/internal/config"
	"github.com/example/job-board/internal/db"
	"github.com/example/job-board/internal/logging"
	"github.com/example/job-board/internal/repository"
)

// Selection is the outcome of Select.
type Selection struct {
	Store repository.PostingStore
	// Degraded is set when EnsureSchema failed and startup continued anyway.
	Degraded bool
}

func (s *Selection) Backend() string {
	return s.Store.Backend()
}

// Select probes the primary store and falls back to the embedded one. It only
// fails when no store can be opened, when STORE_BACKEND=postgres cannot be
// honoured, or when SCHEMA_STRICT is set and the schema cannot be ensured.
func Select(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Selection, error) {
	gormCfg := &gorm.Config{Logger: logging.Gorm(logger)}

	switch {
	case cfg.StoreBackend == config.BackendSQLite:
		logger.Info("embedded store forced by configuration")
	case !cfg.PrimaryConfigured():
		if cfg.StoreBackend == config.BackendPostgres {
			return nil, fmt.Errorf("STORE_BACKEND=postgres but no primary store is configured")
		}
		logger.Info("no primary store configured, using embedded store")
	default:
		database, err := db.Connect(ctx, cfg, gormCfg)
		if err == nil {
			logger.Info("primary store reachable", zap.String("backend", repository.BackendPostgres))
			return ensure(ctx, cfg, logger, repository.NewPostgresStore(database, cfg.DBOpTimeout))
		}
		if cfg.StoreBackend == config.BackendPostgres {
			return nil, fmt.Errorf("primary store unreachable: %w", err)
		}
		logger.Warn("primary store unreachable, falling back to embedded store", zap.Error(err))
	}

	database, err := db.OpenSQLite(cfg.SQLitePath, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open embedded store: %w", err)
	}
	logger.Info("embedded store opened",
		zap.String("backend", repository.BackendSQLite),
		zap.String("path", cfg.SQLitePath))
	return ensure(ctx, cfg, logger, repository.NewSQLiteStore(database, cfg.DBOpTimeout))
}

func ensure(ctx context.Context, cfg *config.Config, logger *zap.Logger, store repository.PostingStore) (*Selection, error) {
	sel := &Selection{Store: store}
	if err := store.EnsureSchema(ctx); err != nil {
		if cfg.SchemaStrict {
			_ = store.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		logger.Error("ensure schema failed, continuing degraded",
			zap.String("backend", store.Backend()),
			zap.Error(err))
		sel.Degraded = true
	}
	return sel, nil
}
