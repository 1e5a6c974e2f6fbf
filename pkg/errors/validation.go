package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// elementSymbolRegex matches IUPAC-style element symbols: an uppercase letter
// optionally followed by one or two lowercase letters (e.g. "C", "Cl", "Uue").
var elementSymbolRegex = regexp.MustCompile(`^[A-Z][a-z]{0,2}$`)

// ValidateElementSymbol validates the shape of an element symbol before a
// registry lookup. Registry misses are reported separately as
// ELEMENT_NOT_FOUND; this check only rejects strings that could never be a
// symbol.
func ValidateElementSymbol(symbol string) error {
	if symbol == "" {
		return New(ErrCodeInvalidInput, "element symbol cannot be empty")
	}
	if !elementSymbolRegex.MatchString(symbol) {
		return New(ErrCodeInvalidInput, "malformed element symbol: %q", symbol)
	}
	return nil
}

// ValidateAtomLabel validates a free-text atom label.
// Labels are carried through serialization, so control characters and
// unreasonable lengths are rejected up front.
func ValidateAtomLabel(label string) error {
	const maxLabelLength = 64
	if len(label) > maxLabelLength {
		return New(ErrCodeInvalidInput, "atom label too long (max %d characters)", maxLabelLength)
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "atom label contains control characters")
		}
	}
	return nil
}

// ValidateOutputPath validates a destination path for rendered or converted
// output. It prevents path traversal and ensures a reasonable length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}
