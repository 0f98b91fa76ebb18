package model

import (
	"math"
	"strings"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Validate checks the entry rule by rule and stops at the first violation.
func (n NewLog) Validate() error {
	if isBlank(n.Title) {
		return &ValidationError{Field: "title", Message: "Title is required"}
	}
	if isBlank(n.Description) {
		return &ValidationError{Field: "description", Message: "Description is required"}
	}
	if isBlank(n.Location) {
		return &ValidationError{Field: "location", Message: "Location is required"}
	}
	if isBlank(n.UserID) {
		return &ValidationError{Field: "userId", Message: "User ID is required"}
	}
	if err := validateCoordinate("latitude", "Latitude", n.Latitude); err != nil {
		return err
	}
	if err := validateCoordinate("longitude", "Longitude", n.Longitude); err != nil {
		return err
	}
	if isBlank(n.Date) {
		return &ValidationError{Field: "date", Message: "Date is required"}
	}
	if _, err := time.Parse(time.RFC3339, n.Date); err != nil {
		return &ValidationError{Field: "date", Message: "Date must be an ISO-8601 timestamp"}
	}
	if n.Rating < MinRating || n.Rating > MaxRating {
		return &ValidationError{Field: "rating", Message: "Rating must be between 1 and 5"}
	}
	return nil
}

// Validate checks a stored entry with the same rules used on creation.
func (l Log) Validate() error {
	return l.WithoutID().Validate()
}

func validateCoordinate(field, label string, v *float64) error {
	if v == nil {
		return &ValidationError{Field: field, Message: label + " is required"}
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return &ValidationError{Field: field, Message: label + " must be a number"}
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
