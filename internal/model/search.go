package model

import (
	"strings"
	"time"
)

// FilterLogs keeps the logs whose title, location, description or any tag
// contains term, ignoring case. A blank term keeps everything.
func FilterLogs(logs []Log, term string) []Log {
	if strings.TrimSpace(term) == "" {
		return logs
	}
	term = strings.ToLower(term)

	filtered := make([]Log, 0, len(logs))
	for _, l := range logs {
		if matches(l, term) {
			filtered = append(filtered, l)
		}
	}
	return filtered
}

func matches(l Log, term string) bool {
	if strings.Contains(strings.ToLower(l.Title), term) ||
		strings.Contains(strings.ToLower(l.Location), term) ||
		strings.Contains(strings.ToLower(l.Description), term) {
		return true
	}
	for _, tag := range l.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// TravelCategories lists the suggested tags.
func TravelCategories() []string {
	return []string{
		"Adventure",
		"Beach",
		"City",
		"Culture",
		"Family",
		"Food",
		"Hiking",
		"Historical",
		"Mountain",
		"Nature",
		"Relaxation",
		"Road Trip",
		"Romantic",
		"Shopping",
		"Sightseeing",
		"Solo Travel",
		"Wildlife",
	}
}

// FormatDate renders an ISO-8601 date as "January 2, 2006". Input that
// does not parse is returned as is.
func FormatDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.UTC().Format("January 2, 2006")
}
