// Package sqldb holds the error types shared by database-backed repositories.
package sqldb

import "github.com/gym-network-toolkit/portal/pkg/portalerrors"

// DatabaseError -.
type DatabaseError struct {
	Portal portalerrors.InternalError
}

func (e DatabaseError) Error() string {
	return e.Portal.Error()
}

func (e DatabaseError) Wrap(call, function string, err error) DatabaseError {
	e.Portal = e.Portal.Wrap(call, function, err)

	return e
}

// NotFoundError -.
type NotFoundError struct {
	Portal portalerrors.InternalError
}

func (e NotFoundError) Error() string {
	return e.Portal.Error()
}

func (e NotFoundError) Wrap(call, function string, err error) NotFoundError {
	e.Portal = e.Portal.Wrap(call, function, err)

	return e
}
