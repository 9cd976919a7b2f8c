package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// tokenWithClaims builds a models.Token carrying a subject and session ID the
// way ParseToken returns them.
func tokenWithClaims(userID, sessionID string) models.Token {
	return models.Token{
		TokenClaims: models.TokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: userID},
			SessionID:        sessionID,
		},
	}
}

// nextRecorder is a terminal handler that records the context it was called
// with.
type nextRecorder struct {
	called bool
	ctx    context.Context
}

func (n *nextRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n.called = true
	n.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

// TestAuthMiddleware_Success verifies that a valid bearer token passes and
// the identifiers land in the request context.
func TestAuthMiddleware_Success(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid.jwt.token", tokenString)
			return tokenWithClaims("user-1", "session-1"), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	next := &nextRecorder{}

	req := httptest.NewRequest(http.MethodGet, "/api/todos/", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.True(t, next.called)
	assert.Equal(t, http.StatusOK, rec.Code)

	userID, ok := utils.GetUserIDFromContext(next.ctx)
	require.True(t, ok)
	assert.Equal(t, "user-1", userID)

	sessionID, ok := utils.GetSessionIDFromContext(next.ctx)
	require.True(t, ok)
	assert.Equal(t, "session-1", sessionID)
}

// TestAuthMiddleware_HeaderFailures verifies rejection of missing and
// malformed Authorization headers before the token is ever parsed.
func TestAuthMiddleware_HeaderFailures(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no token part", "Bearer"},
		{"empty token part", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				parseTokenFn: func(context.Context, string) (models.Token, error) {
					t.Fatal("token must not be parsed for a malformed header")
					return models.Token{}, nil
				},
			}

			h := newHandlerWithAuth(t, auth)
			next := &nextRecorder{}

			req := httptest.NewRequest(http.MethodGet, "/api/todos/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			assert.False(t, next.called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

// TestAuthMiddleware_InvalidToken verifies rejection of a token the service
// refuses.
func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(context.Context, string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}

	h := newHandlerWithAuth(t, auth)
	next := &nextRecorder{}

	req := httptest.NewRequest(http.MethodGet, "/api/todos/", nil)
	req.Header.Set("Authorization", "Bearer expired.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.False(t, next.called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestGetTokenFromAuthHeader covers the raw header parsing rules.
func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = getTokenFromAuthHeader("Bearer")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("Bearer ")
	assert.ErrorIs(t, err, ErrEmptyToken)
}
