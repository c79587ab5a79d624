package geoapi

import (
	"errors"
	"fmt"
)

// Error represents a failure from a geographic upstream service.
type Error struct {
	Service    string
	Code       string
	Message    string
	StatusCode int
	Cause      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error (%s): %s: %v", e.Service, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error (%s): %s", e.Service, e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for Error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError creates a new upstream Error.
func NewError(service, code, message string) *Error {
	return &Error{
		Service: service,
		Code:    code,
		Message: message,
	}
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// WithStatusCode adds an HTTP status code to the error.
func (e *Error) WithStatusCode(code int) *Error {
	e.StatusCode = code
	return e
}

// Sentinel errors for common lookup outcomes.
var (
	// ErrCEPNotFound indicates the postal code is not registered upstream.
	ErrCEPNotFound = errors.New("cep not found")

	// ErrNoCoordinates indicates the geocoder returned zero results.
	ErrNoCoordinates = errors.New("no coordinates found for address")

	// ErrNoRoute indicates no route exists between the two points.
	ErrNoRoute = errors.New("no route found")

	// ErrInvalidCEP indicates the postal code is malformed.
	ErrInvalidCEP = errors.New("invalid cep")
)

// IsNotFound reports whether the error is one of the not-found outcomes,
// as opposed to a transport or data-shape failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCEPNotFound) ||
		errors.Is(err, ErrNoCoordinates) ||
		errors.Is(err, ErrNoRoute)
}
