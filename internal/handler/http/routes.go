// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/conf", h.getConf)
		r.Get("/api/conf/*", h.getValue)
		r.Get("/api/history", h.getHistory)
		r.Get("/api/version", h.getVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/conf/reload", h.reload)
	})

	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
