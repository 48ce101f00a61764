package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	oerrors "github.com/yocto-labs/recipegen/internal/errors"
	"github.com/yocto-labs/recipegen/internal/recipe"
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed is set when the command already reported the failure and
	// main should exit without printing Err.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ExitCodeName(e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitGeneralError
}

// FormatError renders err for stderr. Returns "" for errors that were
// already reported.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Printed {
		return ""
	}

	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		return detail.Error()
	}

	return fmt.Sprintf("Error: %v\n", err)
}

// translateError converts generator errors into DetailErrors that name the
// offending flag or path.
func translateError(err error) error {
	var unknown *recipe.UnknownKindError
	if errors.As(err, &unknown) {
		return &oerrors.DetailError{
			Type:    "validation failed",
			Message: fmt.Sprintf("unknown recipe type %q", unknown.Kind),
			Field:   "--type",
			Hint:    "Valid types: " + strings.Join(unknown.Valid, ", "),
			Cause:   err,
		}
	}

	var invalid *recipe.ValidationError
	if errors.As(err, &invalid) {
		return oerrors.NewValidationError(invalid.Error(), "--"+invalid.Field,
			"Names and versions become part of the recipe filename and cannot contain path separators.",
			err)
	}

	if errors.Is(err, fs.ErrPermission) {
		var location string
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			location = pathErr.Path
		}
		return oerrors.NewPermissionError(err.Error(), location,
			"Choose a writable directory with --output or fix its permissions.", err)
	}

	return err
}
