package agent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret_WellFormed(t *testing.T) {
	resp := Interpret(`{"code":"x","explanation":"y","resources":[]}`)

	assert.Equal(t, "x", resp.Code)
	assert.Equal(t, "y", resp.Explanation)
	assert.NotNil(t, resp.Resources)
	assert.Empty(t, resp.Resources)
}

func TestInterpret_NotJSON(t *testing.T) {
	resp := Interpret("hello")

	assert.Equal(t, "", resp.Code)
	assert.Equal(t, "hello", resp.Explanation)
	assert.Nil(t, resp.Resources)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"","explanation":"hello","resources":null}`, string(body))
}

func TestInterpret_NonObjectJSON(t *testing.T) {
	for _, raw := range []string{`[1,2]`, `"text"`, `42`, `null`, `{"code":"x"} trailing`} {
		resp := Interpret(raw)

		assert.Equal(t, raw, resp.Explanation, raw)
		assert.Empty(t, resp.Code, raw)
		assert.Nil(t, resp.Resources, raw)
	}
}

func TestInterpret_CodeEscapes(t *testing.T) {
	resp := Interpret(`{"code":"  def f():\\n    return 1  ","explanation":"  пояснение \n"}`)

	assert.Equal(t, "def f():\n    return 1", resp.Code)
	assert.Equal(t, "пояснение", resp.Explanation)
	assert.Equal(t, []any{}, resp.Resources)
}

func TestInterpret_MissingAndNonStringFields(t *testing.T) {
	resp := Interpret(`{"code":123,"explanation":null}`)

	assert.Equal(t, "", resp.Code)
	assert.Equal(t, "", resp.Explanation)
	assert.Equal(t, []any{}, resp.Resources)
}

func TestInterpret_Resources(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"list kept", `{"resources":[{"url":"https://docs.python.org","title":"Python docs"}]}`,
			`[{"url":"https://docs.python.org","title":"Python docs"}]`},
		{"null", `{"resources":null}`, `[]`},
		{"false", `{"resources":false}`, `[]`},
		{"empty string", `{"resources":""}`, `[]`},
		{"zero", `{"resources":0}`, `[]`},
		{"empty object", `{"resources":{}}`, `[]`},
		{"single object kept", `{"resources":{"url":"u","title":"t"}}`, `{"url":"u","title":"t"}`},
		{"string kept", `{"resources":"https://go.dev"}`, `"https://go.dev"`},
		{"true kept", `{"resources":true}`, `true`},
		{"number kept", `{"resources":3}`, `3`},
		{"large number kept", `{"resources":[12345678901234567890]}`, `[12345678901234567890]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Interpret(tt.raw)

			body, err := json.Marshal(resp.Resources)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(body))
		})
	}
}

func TestInterpret_TrimsSeparatorControls(t *testing.T) {
	resp := Interpret("{\"code\":\"\\u001cprint(1)\\u001f\",\"explanation\":\"\\u001d\\u00a0ok\\u001e \"}")

	assert.Equal(t, "print(1)", resp.Code)
	assert.Equal(t, "ok", resp.Explanation)
}
