package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// credentialsRequest is the JSON body accepted by register and login.
type credentialsRequest struct {
	UserName string          `json:"user_name"`
	Secret   string          `json:"secret"`
	Info     models.UserInfo `json:"info"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	info, err := h.services.AuthService.RegisterUser(ctx, req.UserName, req.Secret, req.Info)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.openSessionAndRespond(w, r, info)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	info, err := h.services.AuthService.Login(ctx, req.UserName, req.Secret)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", info.ID).Msg("user successfully logged in")

	h.openSessionAndRespond(w, r, info)
}

// openSessionAndRespond opens a fresh session for the authenticated user,
// issues the transport token, and writes the public user info. Shared by
// register and login, which differ only in how the user was verified.
func (h *Handler) openSessionAndRespond(w http.ResponseWriter, r *http.Request, info models.UserInfo) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, err := h.services.AuthService.OpenSession(ctx, info.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, info.ID, session.ID)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, info, http.StatusOK)
}

// logout closes the session carried by the request token. Logging out twice
// with the same token succeeds both times.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionID, ok := utils.GetSessionIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no session id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(ctx, sessionID, time.Time{}); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
