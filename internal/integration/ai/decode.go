package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// cleanPayload strips Markdown code-fence delimiters that chat models wrap
// around JSON payloads despite being told not to.
func cleanPayload(raw string) string {
	clean := strings.TrimSpace(raw)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}

// unmarshalPayload decodes a model reply into v after fence stripping. The
// whole cleaned reply must be the JSON document; prose around the payload is
// a schema violation, not something to scrape around.
func unmarshalPayload(raw string, v any) error {
	clean := cleanPayload(raw)
	if clean == "" {
		return fmt.Errorf("empty model reply")
	}
	if err := json.Unmarshal([]byte(clean), v); err != nil {
		return fmt.Errorf("decode model reply: %w", err)
	}
	return nil
}
