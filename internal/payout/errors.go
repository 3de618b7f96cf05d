package payout

import "fmt"

// ValidationError reports malformed or out-of-range calculation input.
// Raised before any waterfall stage runs; a calculation is never partial.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationErr(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
