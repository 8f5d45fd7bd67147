package reasoning

import (
	"fmt"
	"strings"
)

// ExtractJSON pulls a JSON object out of a model response. Models without
// API-level schema enforcement often wrap payloads in markdown code fences or
// surround them with prose; this strips both before handing the bytes to
// json.Unmarshal.
func ExtractJSON(raw string) ([]byte, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	return []byte(cleaned[start : end+1]), nil
}
