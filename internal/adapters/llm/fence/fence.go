// Package fence strips markdown code fences from model replies. Models
// asked for JSON still occasionally wrap the payload in ```json blocks
// even when the request sets a JSON response mime type.
package fence

import "strings"

// Strip removes a surrounding markdown code fence, if any, and trims
// whitespace. Text without a fence is returned trimmed. Strip is
// idempotent.
func Strip(text string) string {
	s := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(s, "```json"):
		s = strings.TrimPrefix(s, "```json")
	case strings.HasPrefix(s, "```"):
		s = strings.TrimPrefix(s, "```")
	default:
		return s
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
