// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Tarekazabou/health-app/internal/app"
	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/internal/service"
	"github.com/Tarekazabou/health-app/internal/utils"
	"github.com/Tarekazabou/health-app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithAuthService(auth service.AuthService) *Handler {
	return &Handler{
		logger:   logger.Nop(),
		services: &service.Services{AuthService: auth},
	}
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		authHeader   string
		parseTokenFn func(ctx context.Context, s string) (models.Identity, error)
		wantStatus   int
		wantDetail   string
		nextCalled   bool
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantDetail: app.MsgInvalidCredentials,
		},
		{
			name:       "scheme without token",
			authHeader: "Bearer",
			wantStatus: http.StatusUnauthorized,
			wantDetail: app.MsgInvalidCredentials,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantDetail: app.MsgInvalidCredentials,
		},
		{
			name:       "valid token",
			authHeader: "Bearer " + testToken,
			wantStatus: http.StatusOK,
			nextCalled: true,
		},
		{
			name:       "lowercase scheme",
			authHeader: "bearer " + testToken,
			wantStatus: http.StatusOK,
			nextCalled: true,
		},
		{
			name:       "expired or tampered token",
			authHeader: "Bearer expired",
			wantStatus: http.StatusUnauthorized,
			wantDetail: app.MsgInvalidCredentials,
		},
		{
			name:       "unexpected parse failure",
			authHeader: "Bearer " + testToken,
			parseTokenFn: func(context.Context, string) (models.Identity, error) {
				return models.Identity{}, errors.New("key store unavailable")
			},
			wantStatus: http.StatusInternalServerError,
			wantDetail: "key store unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			h := newHandlerWithAuthService(&fakeAuthService{parseTokenFn: tt.parseTokenFn})
			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.nextCalled {
				assert.Equal(t, tt.wantStatus, rr.Code)
				return
			}

			assertErrorResponse(t, rr, tt.wantStatus, tt.wantDetail)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestAuth_IdentityInContext(t *testing.T) {
	var got models.Identity
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = utils.GetIdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(newHandlerWithAuthService(&fakeAuthService{}), "Bearer "+testToken, next)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, ok)
	assert.Equal(t, testIdentity, got)
}

func TestAuth_TokenPassedVerbatim(t *testing.T) {
	var got string
	h := newHandlerWithAuthService(&fakeAuthService{
		parseTokenFn: func(_ context.Context, s string) (models.Identity, error) {
			got = s
			return testIdentity, nil
		},
	})

	executeAuth(h, "Bearer   header.payload.signature  ", http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	assert.Equal(t, "header.payload.signature", got)
}

func TestAuth_ConcurrentRequests(t *testing.T) {
	h := newHandlerWithAuthService(&fakeAuthService{})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	const n = 50
	codes := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			header := "Bearer " + testToken
			if i%2 == 1 {
				header = "Bearer nope"
			}
			codes[i] = executeAuth(h, header, next).Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		if i%2 == 1 {
			assert.Equal(t, http.StatusUnauthorized, code, "request %d", i)
			continue
		}
		assert.Equal(t, http.StatusOK, code, "request %d", i)
	}
}
