package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.checkContainer)

		r.Route("/api/databases/{scope}", func(r chi.Router) {
			r.Use(h.withScope)

			r.Get("/zones", h.allZones)
			r.Post("/zones", h.saveZone)
			r.Post("/zones/lookup", h.fetchZone)
			r.Post("/changes", h.zoneChanges)
			r.Post("/records", h.saveRecord)
			r.Post("/records/lookup", h.fetchRecord)
			r.Post("/shares", h.saveShare)
		})

		r.Post("/api/shares/accept", h.acceptShare)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
