package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// read API, behind bearer auth when a key is configured
	router.Group(func(r chi.Router) {
		if h.authKey != "" {
			r.Use(h.auth)
		}
		r.Get("/api/config", h.getFullConfig)
		r.Get("/api/config/value", h.getConfigValue)
		r.Get("/api/overrides", h.getOverrides)
		r.Get("/api/store", h.getStoreDocument)
	})

	router.Get("/api/version", h.getServerVersion)

	return router
}
