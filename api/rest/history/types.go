package history

import (
	"context"

	"codeberg.org/codegen/server/api/rest/pagination"
	"codeberg.org/codegen/server/codegen/history"
)

type Store interface {
	List(ctx context.Context, params pagination.Params) ([]history.Record, error)
	Delete(ctx context.Context, id int64) error
}

// list query parameters; both optional, zero limit means everything
type ListQuery struct {
	Limit  string `form:"limit"`
	Offset string `form:"offset"`
}
