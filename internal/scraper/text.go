package scraper

import "strings"

// trimmed collapses runs of whitespace into single spaces and trims the
// ends. Scraped nodes often carry layout newlines and indentation.
func trimmed(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
