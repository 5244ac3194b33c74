// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/Tarekazabou/health-app/internal/app"
	"github.com/Tarekazabou/health-app/internal/utils"
	"github.com/Tarekazabou/health-app/models"
	"github.com/go-chi/chi/v5"
)

const (
	defaultAlertsLimit = 50
	defaultAlertsDays  = 7
)

func (h *Handler) createAlert(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.CreateAlertRequest
	if err = decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	alertID, err := h.services.AlertService.CreateAlert(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StandardResponse{
		Success: true,
		Message: app.MsgAlertCreated,
		Data:    map[string]string{"alert_id": alertID},
	}, http.StatusCreated)
}

func (h *Handler) listAlerts(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	limit, err := queryInt(r, "limit", defaultAlertsLimit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	days, err := queryInt(r, "days", defaultAlertsDays)
	if err != nil {
		writeError(w, r, err)
		return
	}

	alerts, err := h.services.AlertService.ListAlerts(r.Context(), userID, limit, days)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}

	utils.WriteJSON(w, alerts, http.StatusOK)
}

func (h *Handler) acknowledgeAlert(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AlertService.AcknowledgeAlert(r.Context(), userID, chi.URLParam(r, "alertID")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StandardResponse{
		Success: true,
		Message: app.MsgAlertAcknowledged,
	}, http.StatusOK)
}
