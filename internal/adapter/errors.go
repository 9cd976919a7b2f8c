package adapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-task-keeper/internal/apperrors"
)

var (
	ErrMissingBearerToken = errors.New("authorization header carries no bearer token")
)

type serverErrorResponse struct {
	Error         string `json:"error"`
	StatusMessage string `json:"status_message"`
}

// mapHTTPError converts non-2xx responses into the same error taxonomy the
// server raises, so callers can errors.Is against apperrors sentinels on
// either side of the wire.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	message := resp.Status()
	var body serverErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		message = body.Error
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return apperrors.BadRequest(message, nil)
	case http.StatusUnauthorized:
		return apperrors.AuthenticationRequired(message, nil)
	case http.StatusForbidden:
		return apperrors.AccessForbidden(message, nil)
	case http.StatusNotFound:
		return apperrors.NotFound(message, nil)
	default:
		return apperrors.HTTPStatus(resp.StatusCode(), body.StatusMessage, message, nil)
	}
}
