package dto

import "github.com/gym-network-toolkit/portal/pkg/portalerrors"

// NotValidError flags request payloads that fail validation before any
// work happens. Never retried.
type NotValidError struct {
	Portal portalerrors.InternalError
}

func (e NotValidError) Error() string {
	return e.Portal.Error()
}

func (e NotValidError) Wrap(call, function string, err error) NotValidError {
	e.Portal = e.Portal.Wrap(call, function, err)

	return e
}
