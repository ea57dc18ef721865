package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter registers the listing API routes and the shared middleware
// stack. The auth gate runs on every request; public path prefixes from the
// gate configuration pass through it unauthenticated.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)
	r.Use(handler.authGateMiddleware)

	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)

	r.Route("/api", func(r chi.Router) {
		r.Post("/public/auth/send-otp", handler.sendOtp)
		r.Post("/auth/register", handler.register)
		r.Post("/auth/login", handler.login)
		r.Post("/auth/logout", handler.logout)

		r.Get("/users/me", handler.me)

		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler.listItems)
			r.Post("/", handler.createItem)
			r.Get("/{id}", handler.getItem)
			r.Put("/{id}", handler.updateItem)
			r.Delete("/{id}", handler.deleteItem)
		})
	})

	return r
}
