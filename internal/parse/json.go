package parse

import "strings"

// FirstJSONObject extracts the first balanced JSON object from text by
// brace matching, skipping braces inside string literals. Returns the raw
// object text and whether one was found. Reasoning models wrap their JSON
// in prose or code fences often enough that a plain unmarshal is not safe.
func FirstJSONObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}
