// Package portalerrors defines the internal error type shared by usecases
// and translated to HTTP responses in exactly one place.
package portalerrors

import "fmt"

// InternalError carries the component, call site, and original error of an
// internal failure. The friendly message is what may be shown to a caller;
// the rest is for logs only.
type InternalError struct {
	file          string
	Function      string
	Call          string
	Message       string
	InnerTrace    string
	OriginalError error
}

// CreatePortalError creates the base error for a component; usecases wrap
// it with call context as failures occur.
func CreatePortalError(file string) InternalError {
	return InternalError{
		file: file,
	}
}

func (e InternalError) Error() string {
	return fmt.Sprintf("%s - %s - %s: %s", e.file, e.Function, e.Call, e.Message)
}

func (e InternalError) Unwrap() error {
	return e.OriginalError
}

// Wrap records where the failure happened and keeps the original error.
func (e InternalError) Wrap(function, call string, err error) InternalError {
	e.Function = function
	e.Call = call
	e.OriginalError = err

	if err != nil {
		e.Message = err.Error()
		e.InnerTrace = fmt.Sprintf("%v", err)
	}

	return e
}

// AddMessage sets the outward-facing message for this error.
func (e InternalError) AddMessage(message string) InternalError {
	e.Message = message

	return e
}

// FriendlyMessage is the short, non-technical text safe to surface to users.
func (e InternalError) FriendlyMessage() string {
	return e.Message
}
