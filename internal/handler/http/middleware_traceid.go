package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader names the header carrying the request trace identifier on
// both requests and responses.
const traceIDHeader = "X-Trace-ID"

// withTraceID tags every request with a trace identifier. An incoming
// X-Trace-ID header is honoured so a trace started by the client adapter
// spans the server logs too; otherwise a fresh UUID is generated. The
// identifier is attached to the request-scoped logger and echoed on the
// response.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		log := h.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
	})
}
