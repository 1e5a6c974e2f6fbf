// Package errors provides structured error types for molgraph.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - ELEMENT_*: Periodic-table lookup failures
//   - STRUCTURE_*: Molecular structure inconsistencies
//   - CONVERSION_*: Text-format parse/serialize failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeElementNotFound, "unknown element symbol: %s", sym)
//	if errors.Is(err, errors.ErrCodeElementNotFound) {
//	    // Handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeConversionParse, origErr, "parse %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle  Code = "INVALID_STYLE"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Configuration errors (periodic-table lookups)
	ErrCodeElementNotFound Code = "ELEMENT_NOT_FOUND"

	// Structural errors (molecular graph invariant violations)
	ErrCodeStructureHydrogen Code = "STRUCTURE_HYDROGEN_DEGREE"
	ErrCodeStructureSpin     Code = "STRUCTURE_SPIN_CODE"
	ErrCodeStructureBond     Code = "STRUCTURE_BOND_ORDER"

	// Conversion errors (foreign model boundary)
	ErrCodeConversionParse     Code = "CONVERSION_PARSE"
	ErrCodeConversionSerialize Code = "CONVERSION_SERIALIZE"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
// Adapters use this to surface underlying parse/serialize failures unchanged:
// the cause stays reachable through errors.Is/As and the printed message.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsStructural reports whether err carries any STRUCTURE_* code.
// Compression and import must fail with a structural error rather than
// silently patching an inconsistent molecule.
func IsStructural(err error) bool {
	switch GetCode(err) {
	case ErrCodeStructureHydrogen, ErrCodeStructureSpin, ErrCodeStructureBond:
		return true
	}
	return false
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
