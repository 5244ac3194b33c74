// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/Tarekazabou/health-app/internal/config"
	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/internal/service"
	"github.com/Tarekazabou/health-app/internal/utils"
)

// Handler serves the REST API on top of the service layer.
type Handler struct {
	services *service.Services

	// cfg carries CORS origins and the per-request timeout.
	cfg config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}

// decodeBody reads the JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	if err := utils.DecodeJSON(r, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	return nil
}

// queryInt reads an integer query parameter, falling back to def.
func queryInt(r *http.Request, name string, def int) (int, error) {
	value, err := utils.QueryInt(r, name, def)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidQueryParameter, err)
	}
	return value, nil
}

// currentUserID returns the id of the authenticated caller.
func currentUserID(r *http.Request) (string, error) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return "", ErrMissingIdentity
	}
	return id, nil
}
