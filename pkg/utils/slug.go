package utils

import "strings"

// Slugify converts a display name into a URL-safe slug:
// lowercase, runs of non-alphanumerics collapsed into single dashes,
// leading/trailing dashes trimmed.
func Slugify(text string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash

	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
