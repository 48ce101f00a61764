package recipe

import (
	"fmt"
	"strings"

	oerrors "github.com/yocto-labs/recipegen/internal/errors"
)

// ValidationError reports an invalid request field.
type ValidationError struct {
	// Field is the request field ("name" or "version").
	Field string

	// Value is the rejected value.
	Value string

	// Reason describes the violated rule.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns the validation sentinel.
func (e *ValidationError) Unwrap() error {
	return oerrors.ErrValidation
}

// ValidateRequest checks the fields that end up in the recipe filename.
// Name and version must be non-empty and must not contain path separators,
// which would place the recipe outside the output directory.
func ValidateRequest(req Request) error {
	if err := validateFilenamePart("name", req.Name); err != nil {
		return err
	}
	return validateFilenamePart("version", req.Version)
}

// validateFields requires name and version to be present. Used when the
// recipe is only rendered.
func validateFields(req Request) error {
	if req.Name == "" {
		return &ValidationError{Field: "name", Reason: "cannot be empty"}
	}
	if req.Version == "" {
		return &ValidationError{Field: "version", Reason: "cannot be empty"}
	}
	return nil
}

func validateFilenamePart(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Reason: "cannot be empty"}
	}
	if strings.ContainsAny(value, `/\`) {
		return &ValidationError{Field: field, Value: value, Reason: "must not contain path separators"}
	}
	return nil
}
