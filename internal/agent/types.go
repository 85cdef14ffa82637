package agent

import (
	"context"

	"codeberg.org/codegen/server/codegen/history"
	"codeberg.org/codegen/server/internal/llm"
)

// structured view of one gateway reply
type GenerateResponse struct {
	Code        string `json:"code"`
	Explanation string `json:"explanation"`
	// usually a list; nil when the reply was not a JSON object
	Resources any `json:"resources"`
}

// the part of history.Repository the generation path writes to
type HistoryWriter interface {
	Create(ctx context.Context, prompt, response string) (*history.Record, error)
}

// gateway -> interpreter -> history
type Agent struct {
	completer llm.Completer
	history   HistoryWriter
}
