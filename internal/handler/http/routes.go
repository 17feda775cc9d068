// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/nonce", h.issueNonce)
		r.Post("/api/users", h.register)
		r.Get("/api/users/{handle}", h.userExists)
		r.Get("/api/users/by-key/{keyHash}", h.lookupUser)

		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/version/build", h.getBuildInfo)
		r.Get("/api/health", h.health)
	})

	// per-request proof of key possession
	router.Group(func(r chi.Router) {
		r.Use(h.schnorrAuth)
		r.Post("/api/auth/verify", h.verify)
		r.Delete("/api/users/{handle}", h.deleteUser)
	})

	// session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/session", h.session)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
