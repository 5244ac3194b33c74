// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/Tarekazabou/health-app/internal/app"
	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/internal/store"
	"github.com/Tarekazabou/health-app/internal/validators"
	"github.com/Tarekazabou/health-app/models"
)

type alertService struct {
	alertRepository store.AlertRepository
	validator       validators.Validator
	now             func() time.Time
	logger          *logger.Logger
}

func NewAlertService(alerts store.AlertRepository, validator validators.Validator, logger *logger.Logger) AlertService {
	return &alertService{
		alertRepository: alerts,
		validator:       validator,
		now:             time.Now,
		logger:          logger,
	}
}

// CreateAlert stores a new unacknowledged alert for the user.
func (s *alertService) CreateAlert(ctx context.Context, userID string, req models.CreateAlertRequest) (string, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", validationError(err)
	}

	alert := req.Alert(userID)
	id, err := s.alertRepository.CreateAlert(ctx, alert)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*alertService.CreateAlert").Msg("alert creation failed")
		return "", internalError("Failed to create alert", err)
	}

	logger.FromContext(ctx).Debug().Str("alert_id", id).Str("severity", alert.Severity).Msg("alert created")
	return id, nil
}

func (s *alertService) ListAlerts(ctx context.Context, userID string, limit, days int) ([]models.Alert, error) {
	alerts, err := s.alertRepository.ListAlerts(ctx, userID, daysAgo(s.now(), days), limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*alertService.ListAlerts").Msg("alerts read failed")
		return nil, internalError("Failed to fetch alerts", err)
	}
	return alerts, nil
}

// AcknowledgeAlert marks the alert as acknowledged now. Acknowledging twice
// succeeds; an unknown alert is [ErrNotFound].
func (s *alertService) AcknowledgeAlert(ctx context.Context, userID, alertID string) error {
	err := s.alertRepository.AcknowledgeAlert(ctx, userID, alertID, s.now().Unix())
	if err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return newError(ErrNotFound, app.MsgAlertNotFound, err)
		}
		logger.FromContext(ctx).Err(err).Str("func", "*alertService.AcknowledgeAlert").Str("alert_id", alertID).Msg("alert acknowledgement failed")
		return internalError("Failed to acknowledge alert", err)
	}
	return nil
}
