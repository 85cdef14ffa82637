package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"codeberg.org/codegen/server/api/rest/pagination"
)

type SQLiteRepository struct {
	db *sql.DB
}

// wraps an open sqlite handle and ensures the history table exists
func NewSQLiteRepository(ctx context.Context, db *sql.DB) (*SQLiteRepository, error) {
	if _, err := db.ExecContext(ctx, sqliteCreateTable); err != nil {
		return nil, fmt.Errorf("failed to create history table: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, prompt, response string) (*Record, error) {
	row := r.db.QueryRowContext(ctx, sqliteCreate, prompt, response)

	record, err := scanSQLite(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert history record: %w", err)
	}

	return record, nil
}

func (r *SQLiteRepository) List(ctx context.Context, params pagination.Params) ([]Record, error) {
	limit := -1
	if params.Limit > 0 {
		limit = params.Limit
	}

	rows, err := r.db.QueryContext(ctx, sqliteList, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	records := []Record{}

	for rows.Next() {
		record, err := scanSQLite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}

		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	return records, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, sqliteDelete, id); err != nil {
		return fmt.Errorf("failed to delete history record: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSQLite(row scanner) (*Record, error) {
	var (
		record    Record
		createdAt string
	)

	if err := row.Scan(&record.ID, &record.Prompt, &record.Response, &createdAt); err != nil {
		return nil, err
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}

	record.CreatedAt = ts

	return &record, nil
}
