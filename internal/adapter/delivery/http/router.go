// Package http provides the HTTP delivery layer for the URL shortener service.
// This package contains the HTTP handlers and related types used for processing
// incoming requests, validating input, and formatting responses.
package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
)

// UseCases groups the application services exposed over HTTP.
type UseCases struct {
	Bindings  bindingUseCase
	Leases    leaseUseCase
	Redirects redirectUseCase
}

// NewRouter initializes and returns a new Chi router configured with middleware and routes.
// A nil limiter disables redirect rate limiting.
func NewRouter(logger *httplog.Logger, verifier principalVerifier, limiter *RateLimiter, uc UseCases) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*"},
		AllowedMethods:   []string{"POST", "GET", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/ping", handlePing)

	validate := newValidator()

	r.Group(func(r chi.Router) {
		r.Use(authenticate(verifier))

		r.Route("/url_bindings", func(r chi.Router) {
			h := newBindingHandler(uc.Bindings, validate)

			r.Post("/", h.allocate)
			r.Get("/", h.find)
			r.Get("/by-user/{userID}", h.listByOwner)
			r.Patch("/{id}/reset", h.reset)
			r.Delete("/{id}", h.delete)
		})

		r.Route("/subscriptions", func(r chi.Router) {
			h := newLeaseHandler(uc.Leases, validate)

			r.Post("/", h.request)
			r.Get("/by-user/{userID}", h.listByOwner)
			r.Get("/{id}", h.find)
			r.Post("/{id}/pay", h.pay)
			r.Delete("/{id}", h.delete)
		})
	})

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Limit)
		}

		h := newRedirectHandler(uc.Redirects)
		r.Get("/*", h.redirect)
	})

	return r
}
