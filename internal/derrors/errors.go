// Package derrors provides custom error types for envcomplete.
// Each type carries a stable code so callers (and the serve protocol) can
// tell a missing workspace from a single unreadable file.
package derrors

import (
	"errors"
	"fmt"
)

// CodedError is the base interface for all envcomplete errors
type CodedError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all envcomplete errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// NoWorkspaceError is returned when no workspace root is configured or the
// configured root cannot be used. It aborts a whole completion request.
type NoWorkspaceError struct {
	baseError
	Root string
}

// NewNoWorkspaceError creates a new no-workspace error
func NewNoWorkspaceError(root string, message string, cause error) *NoWorkspaceError {
	return &NoWorkspaceError{
		baseError: baseError{
			code:    "NO_WORKSPACE",
			message: message,
			cause:   cause,
		},
		Root: root,
	}
}

// FileReadError represents a read or decode failure for a single env file
type FileReadError struct {
	baseError
	File string
}

// NewFileReadError creates a new file read error
func NewFileReadError(file string, message string, cause error) *FileReadError {
	return &FileReadError{
		baseError: baseError{
			code:    "FILE_READ_ERROR",
			message: message,
			cause:   cause,
		},
		File: file,
	}
}

// ConfigurationError represents errors in configuration files
type ConfigurationError struct {
	baseError
	Path string
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(path string, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		baseError: baseError{
			code:    "CONFIG_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// ValidationError represents errors during validation
type ValidationError struct {
	baseError
	Field string
}

// NewValidationError creates a new validation error
func NewValidationError(field string, message string, cause error) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			code:    "VALIDATION_ERROR",
			message: message,
			cause:   cause,
		},
		Field: field,
	}
}

// AlreadyExistsError represents errors when a resource already exists
type AlreadyExistsError struct {
	baseError
	Resource string
}

// NewAlreadyExistsError creates a new already exists error
func NewAlreadyExistsError(resource string, message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		baseError: baseError{
			code:    "ALREADY_EXISTS",
			message: message,
			cause:   nil,
		},
		Resource: resource,
	}
}

// IsNoWorkspace reports whether err (or any error it wraps) is a NoWorkspaceError
func IsNoWorkspace(err error) bool {
	var target *NoWorkspaceError
	return errors.As(err, &target)
}

// CodeOf returns the code of the first CodedError in err's chain, or "" if none.
func CodeOf(err error) string {
	var coded CodedError
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return ""
}
