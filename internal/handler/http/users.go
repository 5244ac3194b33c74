// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/Tarekazabou/health-app/internal/app"
	"github.com/Tarekazabou/health-app/internal/utils"
	"github.com/Tarekazabou/health-app/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.ProfileUpdate
	if err = decodeBody(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.UpdateProfile(r.Context(), userID, update); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StandardResponse{
		Success: true,
		Message: app.MsgProfileUpdated,
	}, http.StatusOK)
}

func (h *Handler) getUserInfo(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	info, err := h.services.UserService.GetUserInfo(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, info, http.StatusOK)
}
