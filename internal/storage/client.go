package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"
)

type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// splits a DATABASE_URL into the driver and the connection string that driver expects.
// postgres:// and postgresql:// go to pgx; sqlite://, file: and bare paths go to sqlite
func ParseURL(databaseURL string) (Driver, string, error) {
	databaseURL = strings.TrimSpace(databaseURL)

	switch {
	case databaseURL == "":
		return "", "", fmt.Errorf("database url is empty")

	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return DriverPostgres, databaseURL, nil

	case strings.HasPrefix(databaseURL, "sqlite://"):
		path := strings.TrimPrefix(databaseURL, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("sqlite url has no path: %q", databaseURL)
		}

		return DriverSQLite, path, nil

	case strings.HasPrefix(databaseURL, "file:"):
		return DriverSQLite, databaseURL, nil

	case strings.Contains(databaseURL, "://"):
		return "", "", fmt.Errorf("unsupported database url scheme: %q", databaseURL)
	}

	return DriverSQLite, databaseURL, nil
}

// opens a pgx pool sized for a single small service and verifies it with a ping
func NewPostgresPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// opens a sqlite database, creating the parent directory of a file path if needed.
// the handle is limited to one connection so writes never contend
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path != ":memory:" && !strings.HasPrefix(path, "file:") {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close() //nolint:errcheck,gosec // error path cleanup
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	return db, nil
}
