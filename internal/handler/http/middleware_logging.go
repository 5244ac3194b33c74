// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/rs/zerolog"
)

type accessLogKey struct{}

// accessLog collects request facts known only to inner handlers, such as the
// authenticated user.
type accessLog struct {
	userID string
}

// setAccessLogUser records the caller for the access log line of the
// request. It is a no-op outside withLogging.
func setAccessLogUser(ctx context.Context, userID string) {
	if entry, ok := ctx.Value(accessLogKey{}).(*accessLog); ok {
		entry.userID = userID
	}
}

// withLogging writes one access log line per request. Server errors are
// logged at error level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		entry := &accessLog{}
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r.WithContext(context.WithValue(r.Context(), accessLogKey{}, entry)))

		var event *zerolog.Event
		if lw.status >= http.StatusInternalServerError {
			event = log.Error()
		} else {
			event = log.Info()
		}
		if entry.userID != "" {
			event = event.Str("user_id", entry.userID)
		}

		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
