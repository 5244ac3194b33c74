// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/Tarekazabou/health-app/internal/app"
	"github.com/Tarekazabou/health-app/internal/utils"
	"github.com/Tarekazabou/health-app/models"
)

const (
	defaultSessionsLimit = 50
	defaultSessionsDays  = 30
)

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CreateSessionRequest
	if err = decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	sessionID, err := h.services.SessionService.CreateSession(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StandardResponse{
		Success: true,
		Message: app.MsgSessionCreated,
		Data:    map[string]string{"session_id": sessionID},
	}, http.StatusCreated)
}

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	limit, err := queryInt(r, "limit", defaultSessionsLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	days, err := queryInt(r, "days", defaultSessionsDays)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.SessionService.ListSessions(r.Context(), userID, limit, days)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
