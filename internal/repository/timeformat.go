package repository

import (
	"strings"
	"time"
)

// Timestamps live in TEXT columns on both backends; RFC3339 keeps them
// sortable and dialect-neutral.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
