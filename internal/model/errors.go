package model

import (
	"fmt"
	"strings"
)

// ValidationFailedError reports one or more mandatory-field violations.
// It always carries the full list so callers can show every problem at once.
type ValidationFailedError struct {
	Format Format
	Errors []string
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("e-invoice validation failed: %s", strings.Join(e.Errors, "; "))
}

// NewValidationFailedError creates a validation error from the accumulated messages
func NewValidationFailedError(format Format, errors []string) *ValidationFailedError {
	return &ValidationFailedError{
		Format: format,
		Errors: errors,
	}
}

// MappingError represents a mapping defect (e.g. an unparseable date).
// These indicate a programming or data-integrity bug, not a user error.
type MappingError struct {
	Field   string
	Message string
	Cause   error
}

func (e *MappingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("mapping failed on %s: %s (%v)", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("mapping failed on %s: %s", e.Field, e.Message)
}

func (e *MappingError) Unwrap() error {
	return e.Cause
}

// NewMappingError creates a new mapping error
func NewMappingError(field, message string, cause error) *MappingError {
	return &MappingError{
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}

// ConfigError represents a configuration problem, reported before any
// validation or mapping work occurs (e.g. no format for a country)
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// NewConfigError creates a new configuration error
func NewConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}

// RenderError represents a renderer failure with renderer context
type RenderError struct {
	Renderer string
	Message  string
	Cause    error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s (%v)", e.Renderer, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Renderer, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// NewRenderError creates a new render error
func NewRenderError(renderer, message string, cause error) *RenderError {
	return &RenderError{
		Renderer: renderer,
		Message:  message,
		Cause:    cause,
	}
}
