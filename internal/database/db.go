// Package database provides database connectivity and the history
// store. Both PostgreSQL and SQLite are supported; queries are written
// with `?` bindvars and rebound per driver.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/jonesrussell/content-qa/internal/config"
)

const (
	// DefaultPingTimeout is the default timeout for ping operations
	DefaultPingTimeout = 5 * time.Second
)

// New creates a database connection for the configured driver and
// ensures the history schema exists.
func New(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	driver, dsn, err := dataSource(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), DefaultPingTimeout)
	defer cancel()

	if pingErr := db.PingContext(ctx); pingErr != nil {
		return nil, fmt.Errorf("failed to ping database: %w", pingErr)
	}

	if err := migrate(ctx, db); err != nil {
		return nil, err
	}

	return db, nil
}

func dataSource(cfg config.DatabaseConfig) (driver, dsn string, err error) {
	switch cfg.Driver {
	case "postgres":
		dsn = fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
		)
		return "postgres", dsn, nil
	case "sqlite":
		return "sqlite3", cfg.SQLitePath, nil
	default:
		return "", "", fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

func migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaFor(db.DriverName()) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
