// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// the live feed outlives any request timeout and can't be compressed
	router.With(h.auth).Get("/api/notes/live", h.liveNotes)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		// routes without authorization
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version/", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/api/notes/", h.listNotes)
			r.Post("/api/notes/", h.createNote)
			r.Patch("/api/notes/{id}", h.updateNote)
			r.Delete("/api/notes/{id}", h.deleteNote)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
