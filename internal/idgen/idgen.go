package idgen

import "github.com/google/uuid"

// Generator hands out identifiers for new log entries.
type Generator interface {
	Next() string
}

// UUIDGenerator returns random version 4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) Next() string {
	return uuid.New().String()
}

// Func adapts a plain function to the Generator interface.
type Func func() string

func (f Func) Next() string {
	return f()
}
