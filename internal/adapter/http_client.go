package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-task-keeper/models"
)

// HTTPClientConfig configures the REST client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs a ServerAdapter talking to the REST API
// at cfg.BaseURL.
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

// SetToken replaces the stored bearer token.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token returns the stored bearer token.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

type credentialsRequest struct {
	UserName string          `json:"user_name"`
	Secret   string          `json:"secret"`
	Info     models.UserInfo `json:"info,omitzero"`
}

func (h *httpServerAdapter) Register(ctx context.Context, userName, secret string, info models.UserInfo) (models.UserInfo, error) {
	return h.authenticate(ctx, "/api/user/register", credentialsRequest{
		UserName: userName,
		Secret:   secret,
		Info:     info,
	})
}

func (h *httpServerAdapter) Login(ctx context.Context, userName, secret string) (models.UserInfo, error) {
	return h.authenticate(ctx, "/api/user/login", credentialsRequest{
		UserName: userName,
		Secret:   secret,
	})
}

// authenticate posts credentials, stores the issued bearer token, and
// returns the public user info from the response body.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body credentialsRequest) (models.UserInfo, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserInfo{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("auth parse bearer token: %w", err)
	}

	var info models.UserInfo
	if err := json.Unmarshal(resp.Body(), &info); err != nil {
		return models.UserInfo{}, fmt.Errorf("auth decode user info: %w", err)
	}

	h.SetToken(token)
	return info, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/user/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) CreateTodo(ctx context.Context, content any) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(content).
		Post("/api/todos/")
	if err != nil {
		return "", fmt.Errorf("create todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp.Body(), &created); err != nil {
		return "", fmt.Errorf("create todo decode response: %w", err)
	}

	return created.ID, nil
}

func (h *httpServerAdapter) Todos(ctx context.Context) ([]models.Content, error) {
	resp, err := h.authedRequest(ctx).Get("/api/todos/")
	if err != nil {
		return nil, fmt.Errorf("list todos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.Content
	if err := json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("list todos decode response: %w", err)
	}

	return entries, nil
}

func (h *httpServerAdapter) Todo(ctx context.Context, contentID string) (models.Content, error) {
	resp, err := h.authedRequest(ctx).Get("/api/todos/" + contentID)
	if err != nil {
		return models.Content{}, fmt.Errorf("get todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Content{}, err
	}

	var entry models.Content
	if err := json.Unmarshal(resp.Body(), &entry); err != nil {
		return models.Content{}, fmt.Errorf("get todo decode response: %w", err)
	}

	return entry, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.Token())
}

func parseBearerToken(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrMissingBearerToken
	}

	return parts[1], nil
}
