package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	chatCompletionsPath = "/chat/completions"
	maxErrorBodyBytes   = 512
)

// shared HTTP client for gateway calls
// reuses connection pool and timeout configuration
var gatewayHTTPClient = &http.Client{
	Timeout: 60 * time.Second, // total request timeout
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// talks to an OpenAI-compatible chat completion endpoint
type Client struct {
	config     Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(config Config) *Client {
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	if config.SystemPrompt == "" {
		config.SystemPrompt = SystemPrompt
	}

	limit := rate.Inf
	if config.RequestsPerSecond > 0 {
		limit = rate.Limit(config.RequestsPerSecond)
	}

	return &Client{
		config:     config,
		httpClient: gatewayHTTPClient,
		limiter:    rate.NewLimiter(limit, 1),
	}
}

func (c *Client) Model() string {
	return c.config.Model
}

// sends the system instruction and prompt as one chat completion and
// returns choices[0].message.content untouched. single attempt, no retries
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Model:          c.config.Model,
		Store:          true,
		ResponseFormat: responseFormat{Type: "json_object"},
		Messages: []chatMessage{
			{Role: "system", Content: c.config.SystemPrompt},
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+chatCompletionsPath, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrGateway, err)
	}

	req.Header.Set("Content-Type", "application/json")

	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: rate limiter: %v", ErrGateway, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes)) //nolint:errcheck
		return "", fmt.Errorf("%w: status %d: %s", ErrGateway, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", ErrGateway, err)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("%w: %v", ErrResponseFormat, err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrResponseFormat)
	}

	message := completion.Choices[0].Message
	if message == nil || message.Content == nil {
		return "", fmt.Errorf("%w: choices[0].message.content is missing", ErrResponseFormat)
	}

	return *message.Content, nil
}
