package util

import "fmt"

// ValidationError marks a submission rejected before any work started,
// e.g. a missing required form field. Surfaced to the client as a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// ExtractionError marks a failure to get plain text out of an uploaded
// document (unsupported format, corrupt file, extractor failure).
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func NewExtractionError(err error) *ExtractionError {
	return &ExtractionError{Err: err}
}
