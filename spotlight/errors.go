package spotlight

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTourNotFound is returned when a named tour does not exist.
var ErrTourNotFound = errors.New("tour not found")

// ValidationError describes one invalid field in a tour file.
type ValidationError struct {
	Tour   string // tour name, or "#index" when unnamed
	Step   int    // 1-based step, 0 for tour-level fields
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Step > 0 {
		return fmt.Sprintf("tour %s step %d: field %q: %s", e.Tour, e.Step, e.Field, e.Reason)
	}
	return fmt.Sprintf("tour %s: field %q: %s", e.Tour, e.Field, e.Reason)
}

// AggregateError collects every validation failure of a document.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, err)
	}
	return b.String()
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns the individual failures if err is an
// AggregateError, otherwise nil.
func ValidationErrors(err error) []error {
	var agg *AggregateError
	if errors.As(err, &agg) {
		return agg.Errors
	}
	return nil
}
