// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Tarekazabou/health-app/internal/app"
	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/internal/store"
	"github.com/Tarekazabou/health-app/internal/validators"
	"github.com/Tarekazabou/health-app/models"
)

type vitalsService struct {
	vitalsRepository store.VitalsRepository
	validator        validators.Validator
	now              func() time.Time
	logger           *logger.Logger
}

func NewVitalsService(vitals store.VitalsRepository, validator validators.Validator, logger *logger.Logger) VitalsService {
	return &vitalsService{
		vitalsRepository: vitals,
		validator:        validator,
		now:              time.Now,
		logger:           logger,
	}
}

// SyncDailyVitals replaces the stored vitals of req.Date with req.
func (s *vitalsService) SyncDailyVitals(ctx context.Context, userID string, req models.SyncVitalsRequest) error {
	if err := s.validator.Validate(ctx, req); err != nil {
		return validationError(err)
	}

	vitals := models.DailyVitals{
		UserID:   userID,
		Date:     req.Date,
		Readings: req.Readings,
		Summary:  *req.Summary,
	}
	if err := s.vitalsRepository.SaveDailyVitals(ctx, vitals); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*vitalsService.SyncDailyVitals").Str("date", req.Date).Msg("vitals sync failed")
		return internalError("Failed to sync vitals", err)
	}

	logger.FromContext(ctx).Debug().Str("date", req.Date).Int("readings", len(req.Readings)).Msg("vitals synced")
	return nil
}

// GetHistoricalVitals returns the vitals of the last days calendar days,
// today included, oldest first.
func (s *vitalsService) GetHistoricalVitals(ctx context.Context, userID string, days int) (models.VitalsRangeResponse, error) {
	start, end := dateRange(s.now(), days)

	vitals, err := s.vitalsRepository.GetVitalsRange(ctx, userID, start, end)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*vitalsService.GetHistoricalVitals").Msg("vitals range read failed")
		return models.VitalsRangeResponse{}, internalError("Failed to fetch historical vitals", err)
	}

	return models.VitalsRangeResponse{
		Data:      vitals,
		Days:      days,
		StartDate: start,
		EndDate:   end,
	}, nil
}

func (s *vitalsService) GetVitalsByDate(ctx context.Context, userID, date string) (models.DailyVitals, error) {
	vitals, err := s.vitalsRepository.GetVitalsByDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return models.DailyVitals{}, newError(ErrNotFound, fmt.Sprintf(app.MsgNoVitalsForDate, date), err)
		}
		logger.FromContext(ctx).Err(err).Str("func", "*vitalsService.GetVitalsByDate").Msg("vitals read failed")
		return models.DailyVitals{}, internalError("Failed to fetch vitals", err)
	}

	return vitals, nil
}
