// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/internal/service"
	"github.com/Tarekazabou/health-app/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken] and, on success, stores
// the caller's identity in the request context (see [utils.WithIdentity])
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized and a
// "WWW-Authenticate: Bearer" header when:
//   - the "Authorization" header is absent ([ErrEmptyAuthorizationHeader]);
//   - the header is not of the form "Bearer <token>";
//   - the token is expired, badly signed or otherwise invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("malformed authorization header")
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrUnauthorized, err))
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			if !errors.Is(err, service.ErrUnauthorized) {
				log.Err(err).Msg("error occurred during parsing token")
			}
			writeError(w, r, err)
			return
		}

		setAccessLogUser(ctx, identity.UserID)
		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}
