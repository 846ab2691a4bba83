// Package render draws the first page of a certificate document into an
// image for the session preview.
package render

import "fmt"

// RenderError represents a failed document load, parse or render. The
// session survives it; only the preview region degrades.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
