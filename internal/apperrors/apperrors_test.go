package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConstructors verifies that each constructor pins the expected status
// code and kind sentinel.
func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *Error
		wantKind   error
		wantStatus int
	}{
		{"not found", NotFound("user not found", nil), ErrNotFound, http.StatusNotFound},
		{"authentication required", AuthenticationRequired("session expired", nil), ErrAuthenticationRequired, http.StatusUnauthorized},
		{"access forbidden", AccessForbidden("wrong password", nil), ErrAccessForbidden, http.StatusForbidden},
		{"bad request", BadRequest("malformed body", nil), ErrBadRequest, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.wantKind)
			assert.Equal(t, tt.wantStatus, tt.err.StatusCode)
			assert.Equal(t, http.StatusText(tt.wantStatus), tt.err.StatusMessage)
		})
	}
}

// TestUnwrap_BothBranches verifies that errors.Is traverses the kind sentinel
// and the wrapped cause at the same time.
func TestUnwrap_BothBranches(t *testing.T) {
	cause := errors.New("underlying failure")
	err := NotFound("entity missing", cause)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "underlying failure")
}

// TestUnwrap_NoCause verifies that a cause-less error still matches its kind.
func TestUnwrap_NoCause(t *testing.T) {
	err := BadRequest("", nil)

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, ErrBadRequest.Error(), err.Error())
}

// TestInvalidParameter verifies the parameter detail payload and the 400
// mapping.
func TestInvalidParameter(t *testing.T) {
	cause := errors.New("value out of range")
	err := InvalidParameter("rounds", -1, cause)

	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)

	detail, ok := err.Detail.(ParameterDetail)
	require.True(t, ok)
	assert.Equal(t, "rounds", detail.ParameterName)
	assert.Equal(t, -1, detail.ParameterValue)
}

// TestHTTPStatus verifies the arbitrary-code constructor, its sentinel
// mapping, and the status message override.
func TestHTTPStatus(t *testing.T) {
	err := HTTPStatus(http.StatusNotFound, "", "missing", nil)
	assert.ErrorIs(t, err, ErrNotFound)

	teapot := HTTPStatus(http.StatusTeapot, "Short and Stout", "cannot brew", nil)
	assert.ErrorIs(t, teapot, ErrHTTPStatus)
	assert.Equal(t, http.StatusTeapot, teapot.StatusCode)
	assert.Equal(t, "Short and Stout", teapot.StatusMessage)
}

// TestStatusOf verifies status extraction for taxonomy errors, wrapped
// taxonomy errors, and foreign errors.
func TestStatusOf(t *testing.T) {
	code, message := StatusOf(AccessForbidden("denied", nil))
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, http.StatusText(http.StatusForbidden), message)

	wrapped := fmt.Errorf("handler: %w", NotFound("gone", nil))
	code, _ = StatusOf(wrapped)
	assert.Equal(t, http.StatusNotFound, code)

	code, message = StatusOf(errors.New("plain"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), message)
}
