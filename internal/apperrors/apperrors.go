// Package apperrors defines the typed error taxonomy shared by every
// fallible operation in the application core.
//
// Each error carries an HTTP-style status code, an optional status message
// override, an optional wrapped cause, and an optional structured detail
// payload. Transport layers branch on the kind sentinels via [errors.Is] and
// map StatusCode/StatusMessage to the wire; the core never signals a domain
// failure through an untyped error.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind sentinels. Every *Error wraps exactly one of these so that callers
// can branch with errors.Is without inspecting status codes.
var (
	// ErrNotFound marks failures where a referenced entity is absent.
	ErrNotFound = errors.New("not found")

	// ErrAuthenticationRequired marks failures where a session is missing or
	// expired and the caller must re-authenticate.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrAccessForbidden marks failures where credentials are wrong or the
	// entity exists but access is denied.
	ErrAccessForbidden = errors.New("access forbidden")

	// ErrBadRequest marks structurally malformed input or cross-referencing
	// mismatches (e.g. a session presented for the wrong user).
	ErrBadRequest = errors.New("bad request")

	// ErrInvalidParameter marks a caller-supplied argument that failed
	// validation. The error detail names the offending parameter.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrHTTPStatus is the fallback kind for errors built via [HTTPStatus]
	// with a code that has no dedicated sentinel.
	ErrHTTPStatus = errors.New("http status error")
)

// Error is the concrete error type produced by the constructors below.
type Error struct {
	kind    error
	message string
	cause   error

	// StatusCode is the HTTP-style status code associated with the failure.
	StatusCode int

	// StatusMessage is the reason phrase for StatusCode. When not supplied
	// explicitly it defaults to the standard phrase from [http.StatusText].
	StatusMessage string

	// Detail is an optional structured payload describing the failure.
	Detail any
}

// ParameterDetail is the Detail payload attached by [InvalidParameter].
type ParameterDetail struct {
	ParameterName  string `json:"parameter_name"`
	ParameterValue any    `json:"parameter_value"`
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap exposes both the kind sentinel and the wrapped cause so that
// errors.Is and errors.As traverse them.
func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

func newError(kind error, statusCode int, message string, cause error) *Error {
	if message == "" {
		message = kind.Error()
	}
	return &Error{
		kind:          kind,
		message:       message,
		cause:         cause,
		StatusCode:    statusCode,
		StatusMessage: http.StatusText(statusCode),
	}
}

// HTTPStatus builds an error with an arbitrary status code. The status
// message defaults to the standard reason phrase and can be overridden with
// statusMessage.
func HTTPStatus(statusCode int, statusMessage, message string, cause error) *Error {
	e := newError(errForCode(statusCode), statusCode, message, cause)
	if statusMessage != "" {
		e.StatusMessage = statusMessage
	}
	return e
}

// NotFound builds a 404 error for an absent entity.
func NotFound(message string, cause error) *Error {
	return newError(ErrNotFound, http.StatusNotFound, message, cause)
}

// AuthenticationRequired builds a 401 error for a missing or expired session.
func AuthenticationRequired(message string, cause error) *Error {
	return newError(ErrAuthenticationRequired, http.StatusUnauthorized, message, cause)
}

// AccessForbidden builds a 403 error for denied access or wrong credentials.
func AccessForbidden(message string, cause error) *Error {
	return newError(ErrAccessForbidden, http.StatusForbidden, message, cause)
}

// BadRequest builds a 400 error for malformed or mismatched input.
func BadRequest(message string, cause error) *Error {
	return newError(ErrBadRequest, http.StatusBadRequest, message, cause)
}

// InvalidParameter builds a validation error naming the offending parameter.
// The transport layer maps it to 400.
func InvalidParameter(parameterName string, parameterValue any, cause error) *Error {
	e := newError(ErrInvalidParameter, http.StatusBadRequest,
		fmt.Sprintf("invalid parameter %q", parameterName), cause)
	e.Detail = ParameterDetail{
		ParameterName:  parameterName,
		ParameterValue: parameterValue,
	}
	return e
}

// errForCode maps a status code to the closest kind sentinel so that errors
// built via HTTPStatus still participate in errors.Is branching.
func errForCode(statusCode int) error {
	switch statusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrAuthenticationRequired
	case http.StatusForbidden:
		return ErrAccessForbidden
	case http.StatusBadRequest:
		return ErrBadRequest
	default:
		return ErrHTTPStatus
	}
}

// StatusOf extracts the status code and status message from err.
// Errors outside the taxonomy report 500 Internal Server Error.
func StatusOf(err error) (int, string) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.StatusCode, appErr.StatusMessage
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
