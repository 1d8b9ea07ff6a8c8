// Package validation carries the error type presence checks return, so
// handlers can tell a rejected payload apart from a store failure.
package validation

import "errors"

// Error reports a request payload that failed a presence check.
type Error string

func (e Error) Error() string { return string(e) }

// Required returns the canonical missing-field error.
func Required(field string) error {
	return Error(field + " is required")
}

// IsError reports whether err is, or wraps, a validation error.
func IsError(err error) bool {
	var v Error
	return errors.As(err, &v)
}
