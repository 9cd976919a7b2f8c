package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
)

func newBareHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(&service.Services{}, logger.Nop())
}

// TestWithTraceID_GeneratesID verifies that a request without a trace header
// receives a freshly generated UUID in the response.
func TestWithTraceID_GeneratesID(t *testing.T) {
	h := newBareHandler(t)
	next := &nextRecorder{}

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	require.True(t, next.called)
	traceID := rec.Header().Get(traceIDHeader)
	require.NotEmpty(t, traceID)

	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
}

// TestWithTraceID_PropagatesIncomingID verifies that an existing trace header
// is echoed instead of being replaced.
func TestWithTraceID_PropagatesIncomingID(t *testing.T) {
	h := newBareHandler(t)
	next := &nextRecorder{}

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "incoming-trace-id")
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, "incoming-trace-id", rec.Header().Get(traceIDHeader))
}
