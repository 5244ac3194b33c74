// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tarekazabou/health-app/internal/app"
	"github.com/Tarekazabou/health-app/internal/service"
	"github.com/Tarekazabou/health-app/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusAndDetailFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "validation",
			err:        &service.Error{Kind: service.ErrValidation, Message: app.MsgInvalidEmailFormat},
			wantStatus: http.StatusBadRequest,
			wantDetail: app.MsgInvalidEmailFormat,
		},
		{
			name:       "conflict is a bad request",
			err:        &service.Error{Kind: service.ErrConflict, Message: app.MsgEmailAlreadyRegistered},
			wantStatus: http.StatusBadRequest,
			wantDetail: app.MsgEmailAlreadyRegistered,
		},
		{
			name:       "unauthorized",
			err:        &service.Error{Kind: service.ErrUnauthorized, Message: app.MsgInvalidEmailOrPassword},
			wantStatus: http.StatusUnauthorized,
			wantDetail: app.MsgInvalidEmailOrPassword,
		},
		{
			name:       "not found wrapping a store error",
			err:        &service.Error{Kind: service.ErrNotFound, Message: app.MsgAlertNotFound, Err: store.ErrDocumentNotFound},
			wantStatus: http.StatusNotFound,
			wantDetail: app.MsgAlertNotFound,
		},
		{
			name:       "internal",
			err:        &service.Error{Kind: service.ErrInternal, Message: "Failed to fetch alerts: timeout"},
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Failed to fetch alerts: timeout",
		},
		{
			name:       "wrapped service error",
			err:        fmt.Errorf("handler: %w", &service.Error{Kind: service.ErrNotFound, Message: app.MsgUserNotFound}),
			wantStatus: http.StatusNotFound,
			wantDetail: app.MsgUserNotFound,
		},
		{
			name:       "invalid body",
			err:        fmt.Errorf("%w: unexpected EOF", ErrInvalidRequestBody),
			wantStatus: http.StatusBadRequest,
			wantDetail: app.MsgInvalidRequestBody,
		},
		{
			name:       "missing authorization header",
			err:        ErrEmptyAuthorizationHeader,
			wantStatus: http.StatusUnauthorized,
			wantDetail: app.MsgInvalidCredentials,
		},
		{
			name:       "missing identity",
			err:        ErrMissingIdentity,
			wantStatus: http.StatusUnauthorized,
			wantDetail: app.MsgInvalidCredentials,
		},
		{
			name:       "unknown error",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "disk on fire",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
			assert.Equal(t, tt.wantDetail, detailFromError(tt.err))
		})
	}
}

func TestStatusFromError_FirstKindWins(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"internal and not found", errors.Join(service.ErrInternal, service.ErrNotFound), http.StatusNotFound},
		{"not found and internal", errors.Join(service.ErrNotFound, service.ErrInternal), http.StatusNotFound},
		{"unauthorized and validation", errors.Join(service.ErrUnauthorized, service.ErrValidation), http.StatusBadRequest},
		{"internal and bad query", errors.Join(service.ErrInternal, ErrInvalidQueryParameter), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 50 {
				assert.Equal(t, tt.want, statusFromError(tt.err))
			}
		})
	}
}

func TestWriteError_Envelope(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/alerts", nil)

	writeError(rr, req, &service.Error{Kind: service.ErrNotFound, Message: app.MsgAlertNotFound})

	assertErrorResponse(t, rr, http.StatusNotFound, app.MsgAlertNotFound)
	assert.Empty(t, rr.Header().Get("WWW-Authenticate"))
}

func TestWriteErrorStatus_UnauthorizedChallenge(t *testing.T) {
	rr := httptest.NewRecorder()

	writeErrorStatus(rr, http.StatusUnauthorized, app.MsgInvalidCredentials)

	assertErrorResponse(t, rr, http.StatusUnauthorized, app.MsgInvalidCredentials)
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
}
