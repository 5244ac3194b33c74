// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/Tarekazabou/health-app/internal/app"
	"github.com/Tarekazabou/health-app/internal/utils"
	"github.com/Tarekazabou/health-app/models"
)

const defaultNutritionDays = 30

func (h *Handler) logNutrition(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.LogNutritionRequest
	if err = decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	entryID, err := h.services.NutritionService.LogNutrition(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StandardResponse{
		Success: true,
		Message: app.MsgNutritionEntryLogged,
		Data:    map[string]string{"entry_id": entryID},
	}, http.StatusCreated)
}

func (h *Handler) listNutrition(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	days, err := queryInt(r, "days", defaultNutritionDays)
	if err != nil {
		writeError(w, r, err)
		return
	}

	entries, err := h.services.NutritionService.ListNutrition(r.Context(), userID, days)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []models.NutritionEntry{}
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

// analyzeFoodImage is a placeholder for photo based meal logging.
func (h *Handler) analyzeFoodImage(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, h.services.NutritionService.AnalyzeFoodImage(r.Context(), userID), http.StatusOK)
}
