package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

// createTodoResponse carries the ID allocated for a freshly created entry.
type createTodoResponse struct {
	ID string `json:"id"`
}

// createTodo appends a todo entry to the authenticated user's collection.
func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, sessionID, ok := requestIdentity(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if _, err := h.services.AuthService.RefreshSession(ctx, sessionID, userID, nil); err != nil {
		writeError(w, r, err)
		return
	}

	var content any
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	id, err := h.services.ContentService.CreateContent(ctx, userID, content)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, createTodoResponse{ID: id}, http.StatusCreated)
}

// listTodos returns every entry of the authenticated user in insertion order.
func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, sessionID, ok := requestIdentity(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if _, err := h.services.AuthService.RefreshSession(ctx, sessionID, userID, nil); err != nil {
		writeError(w, r, err)
		return
	}

	entries, err := h.services.ContentService.GetContents(ctx, userID, nil)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

// getTodo returns a single entry through the session-gated read path, which
// validates the user, the session, and their association before the lookup.
func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, sessionID, ok := requestIdentity(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	contentID := chi.URLParam(r, "id")

	entry, err := h.services.ContentService.GetAvailableContent(ctx, sessionID, userID, contentID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

// notImplemented stubs the update and delete routes, which are not part of
// the core contract yet.
func (h *Handler) notImplemented(w http.ResponseWriter, r *http.Request) {
	http.Error(w, http.StatusText(http.StatusNotImplemented), http.StatusNotImplemented)
}

// requestIdentity pulls the authenticated user and session identifiers the
// auth middleware stored in the request context.
func requestIdentity(r *http.Request) (userID, sessionID string, ok bool) {
	ctx := r.Context()

	userID, okUser := utils.GetUserIDFromContext(ctx)
	sessionID, okSession := utils.GetSessionIDFromContext(ctx)
	if !okUser || !okSession {
		logger.FromRequest(r).Error().Msg("no identity in request context")
		return "", "", false
	}

	return userID, sessionID, true
}
