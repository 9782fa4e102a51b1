// Package errors holds the typed errors returned by configuration loading
// and the command line. Widget and pagination code never returns errors.
package errors

import (
	"fmt"
	"strings"
)

// ParseError is a YAML decoding failure, with the line when known.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError is a single configuration rule failure. Field is the
// dotted path of the offending value.
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

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationErrors collects every rule failure found in one document.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	switch len(e) {
	case 0:
		return "validation error"
	case 1:
		return e[0].Error()
	}
	parts := make([]string, len(e))
	for i, v := range e {
		parts[i] = v.Error()
	}
	return fmt.Sprintf("%d validation errors:\n  %s", len(e), strings.Join(parts, "\n  "))
}

// Unwrap exposes each failure to errors.Is and errors.As.
func (e ValidationErrors) Unwrap() []error {
	out := make([]error, len(e))
	for i, v := range e {
		out[i] = v
	}
	return out
}

// FlagError is an invalid command line flag value.
type FlagError struct {
	Flag    string
	Value   any
	Message string
}

// NewFlagError constructs a FlagError.
func NewFlagError(flag string, value any, message string) error {
	return &FlagError{Flag: flag, Value: value, Message: message}
}

func (e *FlagError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid --%s %v: %s", e.Flag, e.Value, e.Message)
}
