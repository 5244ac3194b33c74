// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the whole API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS())
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Get("/", h.root)
	router.Get("/health", h.health)

	router.Route("/api/v1", func(r chi.Router) {
		// routes without authorization
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.signup)
			r.Post("/login", h.login)
			r.Post("/logout", h.logout)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/users/me", func(r chi.Router) {
				r.Get("/", h.getUserInfo)
				r.Get("/profile", h.getProfile)
				r.Put("/profile", h.updateProfile)
			})

			r.Route("/vitals", func(r chi.Router) {
				r.Post("/sync", h.syncVitals)
				r.Get("/historical", h.getHistoricalVitals)
				r.Get("/date/{date}", h.getVitalsByDate)
			})

			r.Route("/activities", func(r chi.Router) {
				r.Post("/sync", h.syncActivity)
				r.Get("/historical", h.getHistoricalActivity)
			})

			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", h.createSession)
				r.Get("/", h.listSessions)
			})

			r.Route("/alerts", func(r chi.Router) {
				r.Post("/", h.createAlert)
				r.Get("/", h.listAlerts)
				r.Post("/{alertID}/acknowledge", h.acknowledgeAlert)
			})

			r.Route("/nutrition", func(r chi.Router) {
				r.Post("/", h.logNutrition)
				r.Get("/", h.listNutrition)
				r.Post("/analyze", h.analyzeFoodImage)
			})
		})
	})

	return router
}
