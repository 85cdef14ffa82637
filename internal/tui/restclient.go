package tui

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-resty/resty/v2"
)

const (
	defaultAPIEndpoint = "http://127.0.0.1:8000"

	// slightly longer than the server's gateway timeout
	generateTimeout = 75 * time.Second
	requestTimeout  = 10 * time.Second
)

// talks to the codegen REST API
type APIClient struct {
	client *resty.Client
}

// creates a client for endpoint, falling back to CODEGEN_API_ENDPOINT and then the local default
func NewAPIClient(endpoint string) *APIClient {
	if endpoint == "" {
		endpoint = os.Getenv("CODEGEN_API_ENDPOINT")
	}

	if endpoint == "" {
		endpoint = defaultAPIEndpoint
	}

	return &APIClient{
		client: resty.New().SetBaseURL(strings.TrimRight(endpoint, "/")),
	}
}

// posts the prompt as a form and returns the interpreted result
func (c *APIClient) Generate(ctx context.Context, prompt string) (*GenerateResult, error) {
	var (
		result GenerateResult
		apiErr errorResponse
	)

	res, err := c.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"prompt": prompt}).
		SetResult(&result).
		SetError(&apiErr).
		Post("/generate-code")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if !res.IsSuccess() {
		return nil, apiErr.asError(res)
	}

	return &result, nil
}

// returns stored exchanges, most recent first
func (c *APIClient) History(ctx context.Context) ([]HistoryRecord, error) {
	var (
		records []HistoryRecord
		apiErr  errorResponse
	)

	res, err := c.client.R().
		SetContext(ctx).
		SetResult(&records).
		SetError(&apiErr).
		Get("/history")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if !res.IsSuccess() {
		return nil, apiErr.asError(res)
	}

	return records, nil
}

func (c *APIClient) DeleteHistory(ctx context.Context, id int64) error {
	var apiErr errorResponse

	res, err := c.client.R().
		SetContext(ctx).
		SetError(&apiErr).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/history/{id}")
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if !res.IsSuccess() {
		return apiErr.asError(res)
	}

	return nil
}

// reports whether the server answers /check-connection with status online
func (c *APIClient) CheckConnection(ctx context.Context) bool {
	var status struct {
		Status string `json:"status"`
	}

	res, err := c.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/check-connection")

	return err == nil && res.IsSuccess() && status.Status == "online"
}

// returns a tea.Cmd that sends a generate request
func (c *APIClient) GenerateCmd(prompt string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()

		result, err := c.Generate(ctx, prompt)
		if err != nil {
			return GenerateErrorMsg{prompt: prompt, err: err}
		}

		return GenerateResultMsg{prompt: prompt, result: *result}
	}
}

func (c *APIClient) HistoryCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		records, err := c.History(ctx)
		if err != nil {
			return ErrorMsg{err: err}
		}

		return HistoryLoadedMsg{records: records}
	}
}

func (c *APIClient) DeleteHistoryCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := c.DeleteHistory(ctx, id); err != nil {
			return ErrorMsg{err: err}
		}

		return HistoryDeletedMsg{id: id}
	}
}

func (c *APIClient) CheckConnectionCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return ConnectionMsg{online: c.CheckConnection(ctx)}
	}
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e errorResponse) asError(res *resty.Response) error {
	if e.Error != "" {
		return fmt.Errorf("%s: %s", e.Error, e.Message)
	}

	return fmt.Errorf("request failed with status %d: %s", res.StatusCode(), res.String())
}

// base URL requests are sent to
func (c *APIClient) Endpoint() string {
	return c.client.BaseURL
}
