// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/Tarekazabou/health-app/internal/app"
)

func TestUnknownRoutes_Return404JSON(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	tests := []struct {
		name       string
		method     string
		path       string
		authorized bool
	}{
		{name: "unknown top-level path", method: http.MethodGet, path: "/does-not-exist"},
		{name: "unknown api version", method: http.MethodGet, path: "/api/v2/vitals/historical"},
		{name: "unknown auth action", method: http.MethodPost, path: "/api/v1/auth/refresh"},
		{name: "unknown resource with token", method: http.MethodGet, path: "/api/v1/devices", authorized: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(router, tt.method, tt.path, "", tt.authorized)

			assertErrorResponse(t, rr, http.StatusNotFound, app.MsgResourceNotFound)
		})
	}
}

func TestWrongMethod_Returns405JSON(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "GET on signup", method: http.MethodGet, path: "/api/v1/auth/signup"},
		{name: "DELETE on health", method: http.MethodDelete, path: "/health"},
		{name: "PUT on root", method: http.MethodPut, path: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(router, tt.method, tt.path, "", false)

			assertErrorResponse(t, rr, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed)
		})
	}
}
