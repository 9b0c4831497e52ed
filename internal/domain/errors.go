package domain

import (
	"fmt"
)

// ValidationError reports a configuration value that violates a type,
// enumeration or range constraint.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid config: %s", e.Message)
	}
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for the given field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// FileAccessError wraps a filesystem failure on the configuration file
type FileAccessError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// NewFileAccessError creates a file access error with an underlying cause
func NewFileAccessError(op, path string, err error) *FileAccessError {
	return &FileAccessError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}
