package generate

import (
	"context"

	"codeberg.org/codegen/server/internal/agent"
)

// form fields accepted by POST /generate-code
type Request struct {
	Prompt string `form:"prompt" json:"prompt" binding:"required"`
}

type Generator interface {
	Generate(ctx context.Context, prompt string) (*agent.GenerateResponse, error)
}
