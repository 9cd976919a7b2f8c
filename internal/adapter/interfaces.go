// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// ServerAdapter is the client-side view of the REST API. Its login, register
// and logout operations match the contract the web UI expects from any
// identity provider, so the in-memory server and a federated provider are
// interchangeable behind it.
type ServerAdapter interface {
	// Register creates an account and stores the issued session token on
	// the adapter.
	Register(ctx context.Context, userName, secret string, info models.UserInfo) (models.UserInfo, error)

	// Login authenticates and stores the issued session token on the adapter.
	Login(ctx context.Context, userName, secret string) (models.UserInfo, error)

	// Logout closes the current session and clears the stored token.
	Logout(ctx context.Context) error

	// CreateTodo appends a todo entry to the authenticated user's collection.
	CreateTodo(ctx context.Context, content any) (string, error)

	// Todos lists the authenticated user's entries.
	Todos(ctx context.Context) ([]models.Content, error)

	// Todo fetches a single entry by ID through the session-gated read path.
	Todo(ctx context.Context, contentID string) (models.Content, error)
}
