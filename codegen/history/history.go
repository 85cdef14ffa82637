package history

import (
	"context"
	"fmt"

	"codeberg.org/codegen/server/internal/storage"
)

// opens the repository that matches the scheme of databaseURL and creates
// the history table if it is missing
func Open(ctx context.Context, databaseURL string) (Repository, error) {
	driver, conn, err := storage.ParseURL(databaseURL)
	if err != nil {
		return nil, err
	}

	switch driver {
	case storage.DriverPostgres:
		pool, err := storage.NewPostgresPool(ctx, conn)
		if err != nil {
			return nil, err
		}

		repo, err := NewPostgresRepository(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}

		return repo, nil

	case storage.DriverSQLite:
		db, err := storage.OpenSQLite(ctx, conn)
		if err != nil {
			return nil, err
		}

		repo, err := NewSQLiteRepository(ctx, db)
		if err != nil {
			db.Close() //nolint:errcheck,gosec // error path cleanup
			return nil, err
		}

		return repo, nil
	}

	return nil, fmt.Errorf("unsupported database driver: %s", driver)
}
