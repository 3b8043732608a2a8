package service

import (
	"strings"
)

// Slugify derives a URL-safe slug from a title: lowercase, runs of
// characters outside [a-z0-9] collapsed to single hyphens, edge hyphens
// trimmed.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := false

	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen && b.Len() > 0 {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
