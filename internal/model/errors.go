package model

import "errors"

var (
	ErrValidation  = errors.New("validation failed")
	ErrLogNotFound = errors.New("log not found")
	ErrPersistence = errors.New("failed to persist logs")
	ErrLoad        = errors.New("failed to load logs")
)

// ValidationError reports the first rule a log entry violates.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
