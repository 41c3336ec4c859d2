package utils

import (
	"encoding/json"
	"strings"
)

// ExtractJSONObject coerces raw model output into JSON. It first attempts a
// strict parse of the whole text; if that fails it retries on the substring
// from the first '{' to the last '}', which recovers objects wrapped in prose
// or markdown fences. No further repair is attempted: anything the two steps
// cannot parse is a hard failure.
func ExtractJSONObject(raw string) (json.RawMessage, error) {
	var direct json.RawMessage
	if err := json.Unmarshal([]byte(raw), &direct); err == nil {
		return direct, nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, ErrCompletionNotJSON
	}

	var rescued json.RawMessage
	if err := json.Unmarshal([]byte(raw[start:end+1]), &rescued); err != nil {
		return nil, ErrCompletionNotJSON
	}
	return rescued, nil
}
