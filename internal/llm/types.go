package llm

import (
	"context"
	"errors"
)

var (
	// transport failure, timeout, or non-2xx status from the gateway
	ErrGateway = errors.New("gateway request failed")
	// the gateway answered but the body is not a chat completion with content
	ErrResponseFormat = errors.New("malformed gateway response")
)

// sends one prompt and returns the assistant message text verbatim
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Model() string
}

// holds configuration for the gateway client
type Config struct {
	BaseURL           string // e.g. "http://localhost:8001/v1"
	Model             string // e.g. "gpt-4o-mini"
	APIKey            string // optional bearer token
	RequestsPerSecond float64
	SystemPrompt      string // defaults to SystemPrompt
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

// field order matches what the gateway logs and what tests assert on
type chatCompletionRequest struct {
	Model          string         `json:"model"`
	Store          bool           `json:"store"`
	ResponseFormat responseFormat `json:"response_format"`
	Messages       []chatMessage  `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message *struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// reports whether err means the gateway replied with an unusable body
func IsResponseFormatError(err error) bool {
	return errors.Is(err, ErrResponseFormat)
}
