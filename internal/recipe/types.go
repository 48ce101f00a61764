// Package recipe renders BitBake recipes from the built-in templates.
package recipe

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a recipe template.
type Kind string

const (
	// Autotools renders a recipe for an autotools-based package.
	Autotools Kind = "autotools"

	// CMake renders a recipe for a CMake-based package.
	CMake Kind = "cmake"

	// Python renders a recipe for a setuptools Python package.
	Python Kind = "python"

	// KernelModule renders a recipe for an out-of-tree kernel module.
	KernelModule Kind = "kernel-module"

	// Systemd renders a recipe for a daemon with a systemd unit.
	Systemd Kind = "systemd"
)

// String returns the kind tag.
func (k Kind) String() string {
	return string(k)
}

// DefaultLicense is used when a request leaves License empty.
const DefaultLicense = "MIT"

// Request selects a template and the values substituted into it.
type Request struct {
	// Kind is the template to render.
	Kind Kind

	// Name is the package name (e.g. "hello-world").
	Name string

	// Version is the package version. Freeform.
	Version string

	// License is the LICENSE value. Empty means DefaultLicense.
	License string
}

// Data is passed to template execution.
type Data struct {
	Name     string
	Version  string
	License  string
	Filename string
	// Date is the generation date, formatted YYYY-MM-DD.
	Date string
}

// ErrUnknownKind is matched by UnknownKindError via errors.Is.
var ErrUnknownKind = errors.New("unknown template kind")

// UnknownKindError is returned when a kind is not in the registry.
type UnknownKindError struct {
	// Kind is the rejected tag.
	Kind string

	// Valid lists the registered kinds.
	Valid []string
}

// Error implements the error interface.
func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown recipe type %q; valid types: %s", e.Kind, strings.Join(e.Valid, ", "))
}

// Unwrap returns ErrUnknownKind.
func (e *UnknownKindError) Unwrap() error {
	return ErrUnknownKind
}
