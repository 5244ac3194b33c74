// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/internal/store"
	"github.com/Tarekazabou/health-app/internal/validators"
	"github.com/Tarekazabou/health-app/models"
)

type sessionService struct {
	sessionRepository store.SessionRepository
	validator         validators.Validator
	now               func() time.Time
	logger            *logger.Logger
}

func NewSessionService(sessions store.SessionRepository, validator validators.Validator, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessions,
		validator:         validator,
		now:               time.Now,
		logger:            logger,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, userID string, req models.CreateSessionRequest) (string, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", validationError(err)
	}

	id, err := s.sessionRepository.CreateSession(ctx, req.Session(userID))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.CreateSession").Msg("session creation failed")
		return "", internalError("Failed to create session", err)
	}
	return id, nil
}

// ListSessions returns up to limit sessions started within the last days,
// newest first.
func (s *sessionService) ListSessions(ctx context.Context, userID string, limit, days int) (models.SessionsResponse, error) {
	sessions, err := s.sessionRepository.ListSessions(ctx, userID, daysAgo(s.now(), days), limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionService.ListSessions").Msg("sessions read failed")
		return models.SessionsResponse{}, internalError("Failed to fetch sessions", err)
	}

	return models.SessionsResponse{
		Sessions: sessions,
		Total:    len(sessions),
	}, nil
}
