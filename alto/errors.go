package alto

import (
	"errors"
	"fmt"
)

// ErrorKind classifies parse failures.
type ErrorKind int

const (
	// MalformedStructure indicates broken XML or a description in which no
	// page produced a single fragment.
	MalformedStructure ErrorKind = iota

	// MissingGeometry indicates a page without usable dimensions. Missing
	// word-level geometry is not an error; it defaults to zero.
	MissingGeometry

	// EncodingError indicates the description declares a character encoding
	// the parser cannot decode.
	EncodingError
)

// String returns a short identifier for the kind.
func (k ErrorKind) String() string {
	switch k {
	case MissingGeometry:
		return "missing geometry"
	case EncodingError:
		return "encoding error"
	default:
		return "malformed structure"
	}
}

// ParseError is the failure type returned by the parser. Kind distinguishes
// the failure class; Err holds the underlying cause when one exists.
type ParseError struct {
	Kind ErrorKind
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("alto: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("alto: %s", e.Kind)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a ParseError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind == kind
	}
	return false
}
