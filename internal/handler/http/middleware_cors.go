// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// defaultAllowedOrigins is used when no origin is configured.
var defaultAllowedOrigins = []string{"*"}

// withCORS allows cross-origin calls from the configured origins with any
// method and header, credentials included.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = defaultAllowedOrigins
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
