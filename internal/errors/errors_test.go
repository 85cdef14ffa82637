package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(method, path string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, nil)

	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category string
	}{
		{"pg error", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), CategoryDatabase},
		{"no rows", fmt.Errorf("lookup: %w", pgx.ErrNoRows), CategoryNotFound},
		{"deadline", context.DeadlineExceeded, CategoryTimeout},
		{"canceled", context.Canceled, CategoryTimeout},
		{"dial", errors.New("dial tcp 127.0.0.1:5432: connect: refused"), CategoryNetwork},
		{"validation", errors.New("prompt is required"), CategoryValidation},
		{"unknown", errors.New("something odd"), CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := classifyError(tt.err)
			assert.Equal(t, tt.category, info.category)
			assert.Equal(t, tt.err.Error(), info.sanitized, "details are not sanitized outside production")
		})
	}
}

func TestClassifyError_ProductionSanitizes(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	info := classifyError(fmt.Errorf("list history: %w", &pgconn.PgError{Message: "relation missing"}))

	assert.Equal(t, CategoryDatabase, info.category)
	assert.Equal(t, "database operation failed", info.sanitized)
}

func TestUpstreamError(t *testing.T) {
	c, w := newTestContext(http.MethodPost, "/generate-code")

	UpstreamError(c, CodeLLMAPIError, "LLM API error", errors.New("status 502"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w)
	assert.Equal(t, CodeLLMAPIError, resp.Error)
	assert.Equal(t, "LLM API error: status 502", resp.Message)
}

func TestParsePathInt(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, _ := newTestContext(http.MethodDelete, "/history/42")
		c.Params = gin.Params{{Key: "id", Value: "42"}}

		id, ok := ParsePathInt(c, "id")

		assert.True(t, ok)
		assert.Equal(t, int64(42), id)
	})

	t.Run("not a number", func(t *testing.T) {
		c, w := newTestContext(http.MethodDelete, "/history/abc")
		c.Params = gin.Params{{Key: "id", Value: "abc"}}

		_, ok := ParsePathInt(c, "id")

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, CodeBadRequest, decode(t, w).Error)
	})
}

func TestValidationError(t *testing.T) {
	c, w := newTestContext(http.MethodPost, "/generate-code")

	ValidationError(c, errors.New("prompt is required"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, CodeValidationError, resp.Error)
	assert.Equal(t, "request validation failed", resp.Message)
	assert.Equal(t, "prompt is required", resp.Details)
}
