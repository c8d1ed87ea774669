package nlu

import (
	"encoding/json"
	"strings"
)

// Salvage decodes model output that should be JSON but may be wrapped in
// prose. It tries the whole text first, then the widest brace-delimited
// substring. Returns false when neither decodes; callers treat that as an
// empty response, never as a turn-failing error.
func Salvage(text string, v any) bool {
	t := strings.TrimSpace(text)
	if t == "" {
		return false
	}
	if json.Unmarshal([]byte(t), v) == nil {
		return true
	}
	start := strings.Index(t, "{")
	end := strings.LastIndex(t, "}")
	if start >= 0 && end > start {
		if json.Unmarshal([]byte(t[start:end+1]), v) == nil {
			return true
		}
	}
	return false
}
