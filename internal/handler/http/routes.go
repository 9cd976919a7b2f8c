package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the chi router: trace/logging middleware on every route,
// JWT authentication on the todo and logout groups, and open access for
// registration, login, and the version probe.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes behind session authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/user/logout", h.logout)

		r.Route("/api/todos", func(r chi.Router) {
			r.Get("/", h.listTodos)
			r.Post("/", h.createTodo)
			r.Get("/{id}", h.getTodo)
			r.Put("/{id}", h.notImplemented)
			r.Delete("/{id}", h.notImplemented)
		})
	})

	return router
}
