package services

import (
	"regexp"
	"strings"
)

// splitList turns separator-encoded text columns into slices, dropping
// empty segments.
func splitList(value, sep string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}

	parts := strings.Split(value, sep)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

var slugStrip = regexp.MustCompile(`[^a-z0-9-]`)

// generateSlug derives a URL-safe slug from a display name.
func generateSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	return slugStrip.ReplaceAllString(slug, "")
}
