package domain

import (
	"strings"
	"unicode"
)

// Slugify converts a display name into a URL slug:
//   - lowercase
//   - letters and digits kept, everything else collapsed into single hyphens
//   - no leading/trailing hyphens
//
// Uniqueness is enforced by the store; callers append a suffix on conflict.
func Slugify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(name))
	prevHyphen := true // suppress leading hyphen
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen {
			b.WriteRune('-')
			prevHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
