package services

import (
	"regexp"
	"strings"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	edgeHyphens     = regexp.MustCompile(`(^-|-$)`)
)

// Slugify derives a URL-safe slug from a display name: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, no leading or
// trailing hyphen.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	slug = edgeHyphens.ReplaceAllString(slug, "")
	return slug
}
