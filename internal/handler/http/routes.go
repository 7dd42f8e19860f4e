package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Init builds the router and wraps it in the request pipeline.
func (h *Handler) Init() http.Handler {
	router := chi.NewRouter()
	router.NotFound(notFound)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.With(h.rateLimit(routeRegister)).Post("/auth/register", h.register)
		r.With(h.rateLimit(routeLogin)).Post("/auth/login", h.login)

		r.Get("/posts", h.listPosts)
		r.Get("/posts/{id}", h.getPost)

		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/auth/me", h.me)
		r.With(h.rateLimit(routeCreatePost)).Post("/posts", h.createPost)
		r.With(h.rateLimit(routeDeletePost)).Delete("/posts/{id}", h.deletePost)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return Chain(router, h.pipeline()...)
}
