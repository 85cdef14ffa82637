package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure("production", &buf)
	t.Cleanup(func() { Configure(os.Getenv("ENVIRONMENT"), nil) })

	Debug("hidden")
	ErrorErr(errors.New("boom"), "history write failed", "prompt_len", 5)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "only the error line should be written")
	assert.Equal(t, "history write failed", entry["msg"])
	assert.Equal(t, "boom", entry["error"])
	assert.EqualValues(t, 5, entry["prompt_len"])
}

func TestConfigure_DevelopmentIncludesDebug(t *testing.T) {
	var buf bytes.Buffer
	Configure("development", &buf)
	t.Cleanup(func() { Configure(os.Getenv("ENVIRONMENT"), nil) })

	Debug("gateway request", "model", "gpt-4o-mini")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "model=gpt-4o-mini")
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))

	scoped := With("request_id", "abc")
	ctx := WithContext(context.Background(), scoped)

	assert.Same(t, scoped, FromContext(ctx))
}
