package history

import (
	"context"
	"fmt"

	"codeberg.org/codegen/server/api/rest/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

// wraps an open pool and ensures the history table exists
func NewPostgresRepository(ctx context.Context, db *pgxpool.Pool) (*PostgresRepository, error) {
	if _, err := db.Exec(ctx, postgresCreateTable); err != nil {
		return nil, fmt.Errorf("failed to create history table: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, prompt, response string) (*Record, error) {
	var record Record

	err := r.db.QueryRow(ctx, postgresCreate, prompt, response).Scan(
		&record.ID,
		&record.Prompt,
		&record.Response,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert history record: %w", err)
	}

	return &record, nil
}

func (r *PostgresRepository) List(ctx context.Context, params pagination.Params) ([]Record, error) {
	var limit any
	if params.Limit > 0 {
		limit = params.Limit
	}

	rows, err := r.db.Query(ctx, postgresList, limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Record, error) {
		var record Record
		err := row.Scan(&record.ID, &record.Prompt, &record.Response, &record.CreatedAt)
		return record, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan history: %w", err)
	}

	if records == nil {
		records = []Record{}
	}

	return records, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, postgresDelete, id); err != nil {
		return fmt.Errorf("failed to delete history record: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Close() error {
	r.db.Close()
	return nil
}
