package ui

import (
	"strings"
	"time"
)

// articleSlug extracts the article name from a Wikipedia URL for compact
// display.
func articleSlug(url string) string {
	if _, after, found := strings.Cut(url, "/wiki/"); found && after != "" {
		return after
	}
	return url
}

// formatDate renders a creation timestamp for the history listing.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02")
}

// formatCached renders the cached-result flag.
func formatCached(cached bool) string {
	if cached {
		return "Yes"
	}
	return "No"
}
