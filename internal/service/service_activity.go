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

type activityService struct {
	activityRepository store.ActivityRepository
	validator          validators.Validator
	now                func() time.Time
	logger             *logger.Logger
}

func NewActivityService(activity store.ActivityRepository, validator validators.Validator, logger *logger.Logger) ActivityService {
	return &activityService{
		activityRepository: activity,
		validator:          validator,
		now:                time.Now,
		logger:             logger,
	}
}

func (s *activityService) SyncDailyActivity(ctx context.Context, userID string, req models.SyncActivityRequest) error {
	if err := s.validator.Validate(ctx, req); err != nil {
		return validationError(err)
	}

	if err := s.activityRepository.SaveDailyActivity(ctx, req.DailyActivity(userID)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*activityService.SyncDailyActivity").Str("date", req.Date).Msg("activity sync failed")
		return internalError("Failed to sync activity", err)
	}
	return nil
}

func (s *activityService) GetHistoricalActivity(ctx context.Context, userID string, days int) (models.ActivityRangeResponse, error) {
	start, end := dateRange(s.now(), days)

	activity, err := s.activityRepository.GetActivityRange(ctx, userID, start, end)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*activityService.GetHistoricalActivity").Msg("activity range read failed")
		return models.ActivityRangeResponse{}, internalError("Failed to fetch historical activity", err)
	}

	return models.ActivityRangeResponse{
		Data:      activity,
		Days:      days,
		StartDate: start,
		EndDate:   end,
	}, nil
}
