package observability

import "unicode"

const defaultStringLimit = 256

// Sanitize strips control characters and truncates value to limit runes so
// request data cannot forge log lines.
func Sanitize(value string, limit int) string {
	if limit <= 0 {
		limit = defaultStringLimit
	}
	cleaned := make([]rune, 0, len(value))
	for _, r := range value {
		if unicode.IsControl(r) {
			continue
		}
		cleaned = append(cleaned, r)
	}
	if len(cleaned) > limit {
		cleaned = cleaned[:limit]
	}
	return string(cleaned)
}
