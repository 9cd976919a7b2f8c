package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/apperrors"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/models"
)

// ─────────────────────────────────────────────
// Mock ContentService
// ─────────────────────────────────────────────

// mockContentService implements service.ContentService for unit tests.
type mockContentService struct {
	createContentFn       func(ctx context.Context, userID string, content any) (string, error)
	getContentsFn         func(ctx context.Context, userID string, filter models.ContentFilter) ([]models.Content, error)
	getContentFn          func(ctx context.Context, userID, contentID string) (models.Content, error)
	getAvailableContentFn func(ctx context.Context, sessionID, userID, contentID string) (models.Content, error)
}

func (m *mockContentService) CreateContent(ctx context.Context, userID string, content any) (string, error) {
	return m.createContentFn(ctx, userID, content)
}

func (m *mockContentService) GetContents(ctx context.Context, userID string, filter models.ContentFilter) ([]models.Content, error) {
	return m.getContentsFn(ctx, userID, filter)
}

func (m *mockContentService) GetContent(ctx context.Context, userID, contentID string) (models.Content, error) {
	return m.getContentFn(ctx, userID, contentID)
}

func (m *mockContentService) GetAvailableContent(ctx context.Context, sessionID, userID, contentID string) (models.Content, error) {
	return m.getAvailableContentFn(ctx, sessionID, userID, contentID)
}

// refreshOK is an AuthService whose session refresh always succeeds.
func refreshOK() *mockAuthService {
	return &mockAuthService{
		refreshSessionFn: func(_ context.Context, sessionID, userID string, _ map[string]any) (models.Session, error) {
			return models.Session{ID: sessionID, UserID: userID}, nil
		},
	}
}

// newHandlerWithContent builds a Handler with the given service mocks.
func newHandlerWithContent(t *testing.T, auth service.AuthService, content service.ContentService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AppInfoService: &mockAppInfoService{version: "test"},
		AuthService:    auth,
		ContentService: content,
	}
	return NewHandler(svcs, logger.Nop())
}

// ─────────────────────────────────────────────
// createTodo
// ─────────────────────────────────────────────

// TestCreateTodo_Success verifies that a created entry responds 201 with the
// allocated ID, after the session was refreshed.
func TestCreateTodo_Success(t *testing.T) {
	refreshed := false
	auth := &mockAuthService{
		refreshSessionFn: func(_ context.Context, sessionID, userID string, _ map[string]any) (models.Session, error) {
			refreshed = true
			assert.Equal(t, "session-1", sessionID)
			assert.Equal(t, "user-1", userID)
			return models.Session{ID: sessionID, UserID: userID}, nil
		},
	}
	content := &mockContentService{
		createContentFn: func(_ context.Context, userID string, payload any) (string, error) {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, map[string]any{"title": "buy milk"}, payload)
			return "content-1", nil
		},
	}

	h := newHandlerWithContent(t, auth, content)
	req := httptest.NewRequest(http.MethodPost, "/api/todos/", strings.NewReader(`{"title":"buy milk"}`))
	req = identityContext(req, "user-1", "session-1")
	rec := httptest.NewRecorder()

	h.createTodo(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, refreshed)

	var created createTodoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "content-1", created.ID)
}

// TestCreateTodo_ExpiredSession verifies that an expired session blocks the
// write with 401 before any content is stored.
func TestCreateTodo_ExpiredSession(t *testing.T) {
	auth := &mockAuthService{
		refreshSessionFn: func(context.Context, string, string, map[string]any) (models.Session, error) {
			return models.Session{}, apperrors.AuthenticationRequired("session expired", nil)
		},
	}
	content := &mockContentService{
		createContentFn: func(context.Context, string, any) (string, error) {
			t.Fatal("content must not be created with an expired session")
			return "", nil
		},
	}

	h := newHandlerWithContent(t, auth, content)
	req := httptest.NewRequest(http.MethodPost, "/api/todos/", strings.NewReader(`{"title":"x"}`))
	req = identityContext(req, "user-1", "session-1")
	rec := httptest.NewRecorder()

	h.createTodo(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestCreateTodo_NullPayload verifies that a JSON null payload is rejected as
// a bad request by the core.
func TestCreateTodo_NullPayload(t *testing.T) {
	content := &mockContentService{
		createContentFn: func(_ context.Context, _ string, payload any) (string, error) {
			assert.Nil(t, payload)
			return "", apperrors.BadRequest("invalid content", nil)
		},
	}

	h := newHandlerWithContent(t, refreshOK(), content)
	req := httptest.NewRequest(http.MethodPost, "/api/todos/", strings.NewReader(`null`))
	req = identityContext(req, "user-1", "session-1")
	rec := httptest.NewRecorder()

	h.createTodo(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTodo_NoIdentity(t *testing.T) {
	h := newHandlerWithContent(t, &mockAuthService{}, &mockContentService{})
	req := httptest.NewRequest(http.MethodPost, "/api/todos/", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.createTodo(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// listTodos
// ─────────────────────────────────────────────

// TestListTodos_Success verifies listing in insertion order.
func TestListTodos_Success(t *testing.T) {
	entries := []models.Content{
		{ID: "content-1", Content: "first"},
		{ID: "content-2", Content: "second"},
	}
	content := &mockContentService{
		getContentsFn: func(_ context.Context, userID string, filter models.ContentFilter) ([]models.Content, error) {
			assert.Equal(t, "user-1", userID)
			assert.Nil(t, filter)
			return entries, nil
		},
	}

	h := newHandlerWithContent(t, refreshOK(), content)
	req := httptest.NewRequest(http.MethodGet, "/api/todos/", nil)
	req = identityContext(req, "user-1", "session-1")
	rec := httptest.NewRecorder()

	h.listTodos(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Content
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "content-1", got[0].ID)
}

// TestListTodos_EmptyCollection verifies that a fresh user gets an empty
// JSON array, not null.
func TestListTodos_EmptyCollection(t *testing.T) {
	content := &mockContentService{
		getContentsFn: func(context.Context, string, models.ContentFilter) ([]models.Content, error) {
			return []models.Content{}, nil
		},
	}

	h := newHandlerWithContent(t, refreshOK(), content)
	req := httptest.NewRequest(http.MethodGet, "/api/todos/", nil)
	req = identityContext(req, "user-1", "session-1")
	rec := httptest.NewRecorder()

	h.listTodos(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

// ─────────────────────────────────────────────
// getTodo
// ─────────────────────────────────────────────

// TestGetTodo_Success verifies the gated single-entry read with the URL
// parameter wired through chi's route context.
func TestGetTodo_Success(t *testing.T) {
	content := &mockContentService{
		getAvailableContentFn: func(_ context.Context, sessionID, userID, contentID string) (models.Content, error) {
			assert.Equal(t, "session-1", sessionID)
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, "content-1", contentID)
			return models.Content{ID: contentID, Content: "payload"}, nil
		},
	}

	h := newHandlerWithContent(t, &mockAuthService{}, content)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", "content-1")

	req := httptest.NewRequest(http.MethodGet, "/api/todos/content-1", nil)
	req = identityContext(req, "user-1", "session-1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
	rec := httptest.NewRecorder()

	h.getTodo(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var entry models.Content
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, "content-1", entry.ID)
}

// TestGetTodo_GateErrors verifies the status mapping of every gated read
// failure.
func TestGetTodo_GateErrors(t *testing.T) {
	tests := []struct {
		name       string
		gateErr    error
		wantStatus int
	}{
		{"expired user", apperrors.AccessForbidden("unknown or expired user", nil), http.StatusForbidden},
		{"expired session", apperrors.AuthenticationRequired("unknown or expired session", nil), http.StatusUnauthorized},
		{"owner mismatch", apperrors.BadRequest("session does not belong to user", nil), http.StatusBadRequest},
		{"missing entry", apperrors.NotFound("content not found", nil), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := &mockContentService{
				getAvailableContentFn: func(context.Context, string, string, string) (models.Content, error) {
					return models.Content{}, tt.gateErr
				},
			}

			h := newHandlerWithContent(t, &mockAuthService{}, content)
			req := httptest.NewRequest(http.MethodGet, "/api/todos/content-1", nil)
			req = identityContext(req, "user-1", "session-1")
			rec := httptest.NewRecorder()

			h.getTodo(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// update / delete stubs
// ─────────────────────────────────────────────

func TestNotImplemented(t *testing.T) {
	h := newHandlerWithContent(t, &mockAuthService{}, &mockContentService{})
	req := httptest.NewRequest(http.MethodPut, "/api/todos/content-1", nil)
	rec := httptest.NewRecorder()

	h.notImplemented(rec, req)

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}
