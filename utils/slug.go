package utils

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a category name: lowercase,
// non-alphanumeric runs collapsed to a single dash, leading and
// trailing dashes stripped.
func Slugify(name string) string {
	slug := nonAlnum.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
