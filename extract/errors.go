package extract

import "fmt"

// ConversionError reports a failed pdfalto run. Stderr carries the
// extractor's diagnostic output when available.
type ConversionError struct {
	Path   string
	Stderr string
	Err    error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("converting %s: %v: %s", e.Path, e.Err, e.Stderr)
	}
	return fmt.Sprintf("converting %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConversionError) Unwrap() error {
	return e.Err
}
