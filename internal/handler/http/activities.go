// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/Tarekazabou/health-app/internal/app"
	"github.com/Tarekazabou/health-app/internal/utils"
	"github.com/Tarekazabou/health-app/models"
)

func (h *Handler) syncActivity(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.SyncActivityRequest
	if err = decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ActivityService.SyncDailyActivity(r.Context(), userID, req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StandardResponse{
		Success: true,
		Message: fmt.Sprintf(app.MsgActivitySynced, req.Date),
	}, http.StatusOK)
}

func (h *Handler) getHistoricalActivity(w http.ResponseWriter, r *http.Request) {
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

	resp, err := h.services.ActivityService.GetHistoricalActivity(r.Context(), userID, days)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
