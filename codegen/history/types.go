package history

import (
	"context"
	"time"

	"codeberg.org/codegen/server/api/rest/pagination"
)

// one stored prompt/response exchange
type Record struct {
	ID        int64     `json:"id"`
	Prompt    string    `json:"prompt"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// persistence for generation history.
// records are only ever created or deleted, never updated
type Repository interface {
	Create(ctx context.Context, prompt, response string) (*Record, error)
	// most recent first; a zero limit returns every record
	List(ctx context.Context, params pagination.Params) ([]Record, error)
	// deleting an id that does not exist is not an error
	Delete(ctx context.Context, id int64) error
	Close() error
}
