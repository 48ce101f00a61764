// Package errors holds the sentinels recipegen matches on and the
// DetailError format used to print failures.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation marks bad user input: an unknown --type, an empty
	// --name, a version with a path separator.
	ErrValidation = errors.New("validation error")

	// ErrPermission marks a recipe or config file that could not be written
	// for lack of filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound marks a path recipegen could not locate, such as the
	// home directory holding the config file.
	ErrNotFound = errors.New("not found")
)

// DetailError is printed to stderr as a headed block:
//
//	Error: <Type>
//	  Location: <Location>
//	  Field: <Field>
//
//	  <Message>
//
//	Hint: <Hint>
//
// Location, Field and Hint lines are left out when empty.
type DetailError struct {
	// Type heads the block ("validation failed", "permission denied").
	Type string

	// Message says what went wrong with this invocation.
	Message string

	// Location is the recipe file or output directory involved.
	Location string

	// Field is the command-line flag at fault, e.g. "--type".
	Field string

	// Hint tells the user how to recover.
	Hint string

	// Cause is matched by errors.Is and errors.As.
	Cause error
}

func (e *DetailError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Error: %s\n", e.Type)
	if e.Location != "" {
		fmt.Fprintf(&b, "  Location: %s\n", e.Location)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, "  Field: %s\n", e.Field)
	}
	fmt.Fprintf(&b, "\n  %s\n", e.Message)
	if e.Hint != "" {
		fmt.Fprintf(&b, "\nHint: %s\n", e.Hint)
	}

	return b.String()
}

func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError reports a bad flag value. A nil cause becomes
// ErrValidation.
func NewValidationError(message, field, hint string, cause error) error {
	if cause == nil {
		cause = ErrValidation
	}
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   cause,
	}
}

// NewPermissionError reports a write refused by the filesystem. The result
// matches both ErrPermission and cause.
func NewPermissionError(message, location, hint string, cause error) error {
	wrapped := ErrPermission
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w", ErrPermission, cause)
	}
	return &DetailError{
		Type:     "permission denied",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    wrapped,
	}
}

// Wrap prefixes sentinel with message.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
