package nextredirect

import (
	"errors"
	"fmt"
)

// ErrInvalidRedirect is returned by NavigationTypeFromError and
// StatusCodeFromError when the value they are given is not a recognized
// redirect signal. Callers are expected to gate those accessors behind
// IsRedirectError; hitting this error indicates a programming mistake, not
// a condition to handle silently.
var ErrInvalidRedirect = errors.New("nextredirect: not a redirect error")

// InvalidStatusCodeError is returned by NewError for a status code outside
// the valid redirect set. The check runs at construction time so that a
// signal whose digest would fail recognition downstream can never exist.
type InvalidStatusCodeError struct {
	// Status is the rejected status code.
	Status int
}

// Error implements the error interface.
func (e *InvalidStatusCodeError) Error() string {
	return fmt.Sprintf("nextredirect: %d is not a valid redirect status code", e.Status)
}

// InvalidNavigationTypeError is returned by NewError for a navigation type
// other than push or replace.
type InvalidNavigationTypeError struct {
	// Type is the rejected navigation type.
	Type NavigationType
}

// Error implements the error interface.
func (e *InvalidNavigationTypeError) Error() string {
	return fmt.Sprintf("nextredirect: %q is not a valid navigation type", string(e.Type))
}
