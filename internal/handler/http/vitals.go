// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/Tarekazabou/health-app/internal/app"
	"github.com/Tarekazabou/health-app/internal/utils"
	"github.com/Tarekazabou/health-app/models"
	"github.com/go-chi/chi/v5"
)

// defaultHistoryDays is the window of the historical vitals and activity
// endpoints when ?days= is absent.
const defaultHistoryDays = 7

func (h *Handler) syncVitals(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.SyncVitalsRequest
	if err = decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.VitalsService.SyncDailyVitals(r.Context(), userID, req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StandardResponse{
		Success: true,
		Message: fmt.Sprintf(app.MsgVitalsSynced, req.Date),
	}, http.StatusOK)
}

func (h *Handler) getHistoricalVitals(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	days, err := queryInt(r, "days", defaultHistoryDays)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.VitalsService.GetHistoricalVitals(r.Context(), userID, days)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) getVitalsByDate(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	vitals, err := h.services.VitalsService.GetVitalsByDate(r.Context(), userID, chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, vitals, http.StatusOK)
}
