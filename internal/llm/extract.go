package llm

import (
	"encoding/json"
)

// extractJSONArray returns the first well-formed JSON array embedded in
// free-form text.
func extractJSONArray(text string) (json.RawMessage, error) {
	return extractBalanced(text, '[', ']')
}

// extractJSONObject returns the first well-formed JSON object embedded in
// free-form text.
func extractJSONObject(text string) (json.RawMessage, error) {
	return extractBalanced(text, '{', '}')
}

// extractBalanced scans text for the first balanced open/close span that
// decodes as valid JSON. The scan is string-aware: delimiters inside JSON
// string literals do not affect nesting depth. Models wrap output in prose
// and markdown fences, so extraction cannot assume the payload starts the
// response.
func extractBalanced(text string, open, closing byte) (json.RawMessage, error) {
	for start := 0; start < len(text); start++ {
		if text[start] != open {
			continue
		}

		depth := 0
		inString := false
		escaped := false

	scan:
		for i := start; i < len(text); i++ {
			c := text[i]

			if escaped {
				escaped = false
				continue
			}

			switch {
			case inString && c == '\\':
				escaped = true
			case c == '"':
				inString = !inString
			case inString:
				// Delimiters inside strings are payload, not structure.
			case c == open:
				depth++
			case c == closing:
				depth--
				if depth == 0 {
					candidate := text[start : i+1]
					if json.Valid([]byte(candidate)) {
						return json.RawMessage(candidate), nil
					}
					// Balanced but undecodable; try the next opening
					// delimiter.
					break scan
				}
			}
		}
	}

	return nil, &ParseError{Msg: "no balanced JSON value found in response"}
}
