// Package errors defines the typed errors shared across swatch.
package errors

import (
	"fmt"
)

// ValidationError captures a field-level validation failure. Validation
// failures are surfaced as messages next to the offending field; they are
// never fatal.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NotFoundError indicates a lookup by ID found nothing.
type NotFoundError struct {
	Kind string
	ID   string
}

// NewNotFoundError constructs a NotFoundError for the given entity kind.
func NewNotFoundError(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// StoreError represents a persistence failure against one of the local
// store files. A store failure is terminal for the attempt that caused it;
// the caller surfaces it once and keeps in-memory state for a retry.
type StoreError struct {
	Op   string
	Path string
	Err  error
}

// NewStoreError constructs a StoreError.
func NewStoreError(op, path string, err error) error {
	return &StoreError{Op: op, Path: path, Err: err}
}

func (e *StoreError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("store error: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("store error: %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *StoreError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a failure to decode an import file.
type ParseError struct {
	Path string
	Err  error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, err error) error {
	return &ParseError{Path: path, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("parse error: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
