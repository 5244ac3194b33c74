// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/Tarekazabou/health-app/internal/app"
	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/internal/service"
	"github.com/Tarekazabou/health-app/internal/utils"
	"github.com/Tarekazabou/health-app/models"
)

// errorStatuses maps error kinds to HTTP status codes, checked in order so
// an error wrapping several kinds gets the first match. A duplicate email
// is reported as a bad request, not 409.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrValidation, http.StatusBadRequest},
	{service.ErrConflict, http.StatusBadRequest},
	{service.ErrUnauthorized, http.StatusUnauthorized},
	{service.ErrNotFound, http.StatusNotFound},

	{ErrInvalidRequestBody, http.StatusBadRequest},
	{ErrInvalidQueryParameter, http.StatusBadRequest},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrMissingIdentity, http.StatusUnauthorized},

	{service.ErrInternal, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, mapping := range errorStatuses {
		if errors.Is(err, mapping.target) {
			return mapping.status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError returns the message shown to the client for err.
func detailFromError(err error) string {
	if message := service.Message(err); message != "" {
		return message
	}

	switch {
	case errors.Is(err, ErrInvalidRequestBody):
		return app.MsgInvalidRequestBody
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, ErrEmptyAuthorizationHeader), errors.Is(err, ErrMissingIdentity):
		return app.MsgInvalidCredentials
	}
	return err.Error()
}

// writeError logs err and writes the JSON error envelope with the mapped
// status code.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeErrorStatus(w, status, detailFromError(err))
}

func writeErrorStatus(w http.ResponseWriter, status int, detail string) {
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	utils.WriteJSON(w, models.ErrorResponse{
		Success: false,
		Error:   http.StatusText(status),
		Detail:  detail,
	}, status)
}
