package gemini

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON extracts JSON content from markdown code blocks or plain text.
// Even with a declared response schema the model occasionally wraps its
// output in ```json fences.
func ExtractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}

// DecodeJSON unmarshals model output into v after stripping fences.
func DecodeJSON(content string, v interface{}) error {
	if err := json.Unmarshal([]byte(ExtractJSON(content)), v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
