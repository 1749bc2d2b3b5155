package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// introspectionPrefix is reserved for the dev proxy's own routes and is never
// forwarded upstream.
const introspectionPrefix = "/__devproxy"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route(introspectionPrefix, func(r chi.Router) {
		r.Get("/rules", h.getRules)
		r.Get("/version", h.getVersion)
	})

	// proxy rules and static fallback, any method
	router.Handle("/*", h.dispatchHandler())

	return router
}
