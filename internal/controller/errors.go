// Package controller drives one certificate session from raw query
// parameters to a renderable view, and applies step-completion events.
package controller

import "fmt"

// UnavailableError is the single terminal class for every pre-content
// failure: missing or unknown organization, missing required parameters.
// The wrapped cause is for diagnostics only and must never reach the user;
// the page shows one generic unavailable state for all of them.
type UnavailableError struct {
	Cause error
}

func (e *UnavailableError) Error() string {
	return "page not available"
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// UnknownStepError reports a step name outside step1/step2.
type UnknownStepError struct {
	Step string
}

func (e *UnknownStepError) Error() string {
	return fmt.Sprintf("unknown step %q", e.Step)
}
