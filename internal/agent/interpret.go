package agent

import (
	"encoding/json"
	"io"
	"strings"
	"unicode"
)

// turns the raw assistant text into a GenerateResponse. it never fails:
// text that is not a JSON object becomes the explanation with null resources
func Interpret(raw string) GenerateResponse {
	fields, ok := decodeObject(raw)
	if !ok {
		return GenerateResponse{
			Code:        "",
			Explanation: raw,
			Resources:   nil,
		}
	}

	code, _ := fields["code"].(string)
	explanation, _ := fields["explanation"].(string)

	return GenerateResponse{
		Code:        strings.ReplaceAll(trimText(code), `\n`, "\n"),
		Explanation: trimText(explanation),
		Resources:   normalizeResources(fields["resources"]),
	}
}

// decodes exactly one JSON object, rejecting trailing data
func decodeObject(raw string) (map[string]any, bool) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, false
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}

	fields, ok := value.(map[string]any)

	return fields, ok
}

// falsy values become an empty list, anything else is passed through as decoded
func normalizeResources(value any) any {
	if !truthy(value) {
		return []any{}
	}

	return value
}

// strips unicode whitespace plus the ASCII file/group/record/unit separators
func trimText(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
	})
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		return !isZeroNumber(v)
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	}

	return true
}

// out-of-range values still parse to ±Inf or 0
func isZeroNumber(n json.Number) bool {
	f, _ := n.Float64() //nolint:errcheck
	return f == 0
}
