package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/apperrors"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

// errorResponse is the JSON body written for every failed request.
type errorResponse struct {
	Error         string `json:"error"`
	StatusMessage string `json:"status_message,omitempty"`
	Detail        any    `json:"detail,omitempty"`
}

// writeError maps a typed core error onto the HTTP response: the error's
// status code becomes the response status, its status message and detail
// payload are carried in the JSON body. Errors outside the taxonomy are
// reported as 500 without leaking their message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	statusCode, statusMessage := apperrors.StatusOf(err)

	body := errorResponse{
		Error:         err.Error(),
		StatusMessage: statusMessage,
	}

	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		body.Detail = appErr.Detail
	} else {
		log.Err(err).Msg("unexpected error outside the taxonomy")
		body.Error = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, body, statusCode)
}
