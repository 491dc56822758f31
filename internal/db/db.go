package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/example/job-board/internal/config"
)

type Database struct {
	Gorm *gorm.DB
	SQL  *sql.DB
}

// Connect opens the primary PostgreSQL pool over lib/pq and probes it within
// cfg.DBProbeTimeout. The pool is closed again when the probe fails.
func Connect(ctx context.Context, cfg *config.Config, gormCfg *gorm.Config) (*Database, error) {
	gormCfg = withDefaults(gormCfg)
	gormCfg.DisableAutomaticPing = true

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		DriverName: "postgres",
		DSN:        cfg.PostgresDSN(),
	}), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	d := &Database{Gorm: gormDB, SQL: sqlDB}

	probeCtx, cancel := context.WithTimeout(ctx, cfg.DBProbeTimeout)
	defer cancel()
	if err := d.Probe(probeCtx); err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}

// OpenSQLite opens the embedded store at path, creating its directory when
// needed. A single connection serializes writers.
func OpenSQLite(path string, gormCfg *gorm.Config) (*Database, error) {
	memory := path == ":memory:" || strings.Contains(path, "mode=memory")
	if !memory && !strings.HasPrefix(path, "file:") {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
	}

	dsn := path
	if !memory && !strings.Contains(dsn, "_pragma") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	gormDB, err := gorm.Open(sqlite.Open(dsn), withDefaults(gormCfg))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	return &Database{Gorm: gormDB, SQL: sqlDB}, nil
}

func withDefaults(c *gorm.Config) *gorm.Config {
	if c == nil {
		return &gorm.Config{}
	}
	cp := *c
	return &cp
}

// Probe is the liveness check: a ping followed by a no-op query.
func (d *Database) Probe(ctx context.Context) error {
	if err := d.SQL.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	if _, err := d.SQL.ExecContext(ctx, "SELECT 1"); err != nil {
		return fmt.Errorf("probe query: %w", err)
	}
	return nil
}

func (d *Database) Close() error {
	if d.SQL != nil {
		return d.SQL.Close()
	}
	return nil
}
