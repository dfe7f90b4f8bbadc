package common

import (
	"strings"
	"unicode"
)

// Slugify collapses arbitrary text to a URL-safe token: lowercase
// alphanumerics separated by single hyphens. Deterministic, so the same
// name always routes to the same page.
func Slugify(text string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
