// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/Tarekazabou/health-app/internal/app"
	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/internal/utils"
	"github.com/Tarekazabou/health-app/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Signup(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", resp.UserID).Msg("user successfully signed up")
	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", resp.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, resp, http.StatusOK)
}

// logout is stateless: the client discards its token.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StandardResponse{
		Success: true,
		Message: app.MsgLoggedOut,
	}, http.StatusOK)
}
