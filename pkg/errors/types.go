// Package errors provides typed errors for the codeinv project.
//
// This package defines domain-specific error types that provide structured
// error information for the scan pipeline (path resolution, preconditions,
// output writers). All error types implement the standard error interface and
// support errors.Is() and errors.As() from the standard library and
// cockroachdb/errors.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// PathError represents a path-resolution failure, typically an unresolvable
// symlink cycle encountered while normalizing a path.
type PathError struct {
	Path    string // Path that failed to resolve
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("path error for %s: %s", e.Path, e.Message)
	}
	return "path error: " + e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *PathError) Unwrap() error {
	return e.Cause
}

// NewPathError creates a new PathError.
func NewPathError(path, message string) *PathError {
	return &PathError{Path: path, Message: message}
}

// NewPathErrorWithCause creates a new PathError with an underlying cause.
func NewPathErrorWithCause(path, message string, cause error) *PathError {
	return &PathError{Path: path, Message: message, Cause: cause}
}

// PreconditionError represents a fatal input validation failure: the scan root
// is missing, not a directory, or unreadable. It is raised before any
// scanning state is entered.
type PreconditionError struct {
	Path    string // Offending input path
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid scan input %s: %s", e.Path, e.Message)
	}
	return "invalid scan input: " + e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *PreconditionError) Unwrap() error {
	return e.Cause
}

// NewPreconditionError creates a new PreconditionError.
func NewPreconditionError(path, message string) *PreconditionError {
	return &PreconditionError{Path: path, Message: message}
}

// NewPreconditionErrorWithCause creates a new PreconditionError with an
// underlying cause.
func NewPreconditionErrorWithCause(path, message string, cause error) *PreconditionError {
	return &PreconditionError{Path: path, Message: message, Cause: cause}
}

// WriterError represents a failure while serializing inventory records to an
// output sink (CSV, JSON, YAML, SQLite).
type WriterError struct {
	Format string // e.g., "csv", "sqlite"
	Path   string // Output path if applicable
	Cause  error
}

// Error implements the error interface.
func (e *WriterError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s writer failed for %s: %v", e.Format, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s writer failed: %v", e.Format, e.Cause)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *WriterError) Unwrap() error {
	return e.Cause
}

// NewWriterError creates a new WriterError.
func NewWriterError(format, path string, cause error) *WriterError {
	return &WriterError{Format: format, Path: path, Cause: cause}
}

// IsPathError checks if an error or any error in its chain is a PathError.
func IsPathError(err error) bool {
	var pathErr *PathError
	return errors.As(err, &pathErr)
}

// IsPreconditionError checks if an error or any error in its chain is a
// PreconditionError.
func IsPreconditionError(err error) bool {
	var preErr *PreconditionError
	return errors.As(err, &preErr)
}

// IsWriterError checks if an error or any error in its chain is a WriterError.
func IsWriterError(err error) bool {
	var wErr *WriterError
	return errors.As(err, &wErr)
}

// Is reports whether any error in err's chain matches target.
// Re-exported so callers don't need to import both this package and
// cockroachdb/errors.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message, preserving the chain.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Newf creates a new error with formatting.
func Newf(format string, args ...any) error {
	return errors.Newf(format, args...)
}
