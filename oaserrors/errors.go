// Package oaserrors provides structured error types for oasts.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors.
//
// # Error Categories
//
//   - ParseError: YAML/JSON decoding failures and structural issues
//   - VersionError: the document declares an unsupported OpenAPI version
//   - ReferenceError: $ref pointers that are malformed, dangling, or circular
//   - ConfigError: Invalid configuration or input options
//
// # Usage with errors.Is
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("api.yaml"))
//	if errors.Is(err, oaserrors.ErrUnsupportedVersion) {
//	    // Only OAS 3.1.x is accepted
//	}
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrUnsupportedVersion indicates the document's OpenAPI version is not supported.
	ErrUnsupportedVersion = errors.New("unsupported version")

	// ErrReference indicates a reference resolution failure.
	ErrReference = errors.New("reference error")

	// ErrInvalidReference indicates a $ref that is not a local "#/" pointer.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrUnresolvedReference indicates a $ref pointing at a path absent from the document.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrCircularReference indicates a chain of $ref pointers that never reaches a value.
	ErrCircularReference = errors.New("circular reference")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to decode an OpenAPI document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// VersionError reports a document whose declared OpenAPI version is outside
// the supported family.
type VersionError struct {
	// Version is the version string found in the document ("" when missing)
	Version string
	// Supported describes the accepted versions (e.g., "3.1.x")
	Supported string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *VersionError) Error() string {
	msg := "unsupported version"
	if e.Version == "" {
		msg += ": document does not declare an 'openapi' version"
	} else {
		msg += fmt.Sprintf(": OpenAPI %s is not supported", e.Version)
	}
	if e.Supported != "" {
		msg += " (supported: " + e.Supported + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *VersionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *VersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}

// ReferenceError represents a failure to resolve a $ref.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// IsInvalid is true if the reference is not a local "#/" pointer
	IsInvalid bool
	// IsUnresolved is true if the pointer names a path absent from the document
	IsUnresolved bool
	// IsCircular is true if following the reference chain did not terminate
	IsCircular bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	switch {
	case e.IsCircular:
		msg = "circular reference"
	case e.IsInvalid:
		msg = "invalid reference"
	case e.IsUnresolved:
		msg = "unresolved reference"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference, and also the specific sentinel for whichever
// flag is set.
func (e *ReferenceError) Is(target error) bool {
	switch target {
	case ErrReference:
		return true
	case ErrInvalidReference:
		return e.IsInvalid
	case ErrUnresolvedReference:
		return e.IsUnresolved
	case ErrCircularReference:
		return e.IsCircular
	}
	return false
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
