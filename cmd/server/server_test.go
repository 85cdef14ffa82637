package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"codeberg.org/codegen/server/codegen/history"
	"codeberg.org/codegen/server/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fake chat completion endpoint that answers every request with content
func newFakeGateway(t *testing.T, content string, calls *atomic.Int32) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		body, err := json.Marshal(map[string]any{
			"choices": []any{
				map[string]any{"message": map[string]any{"role": "assistant", "content": content}},
			},
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(body) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)

	return srv
}

func newTestServer(t *testing.T, gatewayURL string) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		LLMAPIBase:      gatewayURL,
		LLMModel:        "test-model",
		DatabaseURL:     "sqlite://" + filepath.Join(t.TempDir(), "history.db"),
		Host:            "127.0.0.1",
		Port:            "0",
		Environment:     "development",
		CORSOrigins:     []string{"*"},
		ShutdownTimeout: time.Second,
	}

	srv, err := NewServer(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, srv.services.History.Close())
	})

	return srv
}

func do(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	return w
}

func postGenerate(srv *Server, prompt string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/generate-code", strings.NewReader(url.Values{"prompt": {prompt}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return do(srv, req)
}

func listHistory(t *testing.T, srv *Server) []history.Record {
	t.Helper()

	w := do(srv, httptest.NewRequest(http.MethodGet, "/history", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var records []history.Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))

	return records
}

func TestGenerateThenHistory(t *testing.T) {
	var calls atomic.Int32
	raw := `{"code":"print('hi')\\nprint('bye')","explanation":" выводит строки ","resources":[{"url":"https://docs.python.org","title":"Python docs"}]}`
	gateway := newFakeGateway(t, raw, &calls)
	srv := newTestServer(t, gateway.URL)

	w := postGenerate(srv, "print two lines")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"code": "print('hi')\nprint('bye')",
		"explanation": "выводит строки",
		"resources": [{"url":"https://docs.python.org","title":"Python docs"}]
	}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	w = postGenerate(srv, "second prompt")
	require.Equal(t, http.StatusOK, w.Code)

	records := listHistory(t, srv)
	require.Len(t, records, 2)
	assert.Equal(t, "second prompt", records[0].Prompt, "most recent first")
	assert.Equal(t, "print two lines", records[1].Prompt)
	assert.Equal(t, raw, records[1].Response, "raw gateway text is stored")
	assert.Equal(t, int32(2), calls.Load())
}

func TestDeleteHistory(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, newFakeGateway(t, "plain text", &calls).URL)

	require.Equal(t, http.StatusOK, postGenerate(srv, "keep").Code)
	require.Equal(t, http.StatusOK, postGenerate(srv, "drop").Code)

	records := listHistory(t, srv)
	require.Len(t, records, 2)

	w := do(srv, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/history/%d", records[0].ID), nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(srv, httptest.NewRequest(http.MethodDelete, "/history/424242", nil))
	assert.Equal(t, http.StatusNoContent, w.Code, "missing ids are not an error")

	remaining := listHistory(t, srv)
	require.Len(t, remaining, 1)
	assert.Equal(t, "keep", remaining[0].Prompt)
}

func TestCheckConnectionDoesNotCallGateway(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, newFakeGateway(t, "{}", &calls).URL)

	w := do(srv, httptest.NewRequest(http.MethodGet, "/check-connection", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"online"}`, w.Body.String())
	assert.Zero(t, calls.Load())
}

func TestGatewayDown(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	t.Cleanup(gateway.Close)
	srv := newTestServer(t, gateway.URL)

	w := postGenerate(srv, "anything")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "llm_api_error", body["error"])
	assert.True(t, strings.HasPrefix(body["message"], "LLM API error: "))
	assert.Empty(t, listHistory(t, srv), "failed generations are not recorded")
}

func TestIndexPage(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, newFakeGateway(t, "{}", &calls).URL)

	w := do(srv, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test-model")
}

func TestCORSPreflight(t *testing.T) {
	var calls atomic.Int32
	srv := newTestServer(t, newFakeGateway(t, "{}", &calls).URL)

	req := httptest.NewRequest(http.MethodOptions, "/generate-code", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := do(srv, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
