// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/Tarekazabou/health-app/internal/app"
	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/internal/store"
	"github.com/Tarekazabou/health-app/internal/validators"
	"github.com/Tarekazabou/health-app/models"
)

type nutritionService struct {
	nutritionRepository store.NutritionRepository
	validator           validators.Validator
	now                 func() time.Time
	logger              *logger.Logger
}

func NewNutritionService(nutrition store.NutritionRepository, validator validators.Validator, logger *logger.Logger) NutritionService {
	return &nutritionService{
		nutritionRepository: nutrition,
		validator:           validator,
		now:                 time.Now,
		logger:              logger,
	}
}

func (s *nutritionService) LogNutrition(ctx context.Context, userID string, req models.LogNutritionRequest) (string, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return "", validationError(err)
	}

	id, err := s.nutritionRepository.CreateNutritionEntry(ctx, req.Entry(userID))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*nutritionService.LogNutrition").Msg("nutrition entry creation failed")
		return "", internalError("Failed to log nutrition", err)
	}
	return id, nil
}

// ListNutrition returns the entries logged within the last days, newest
// first.
func (s *nutritionService) ListNutrition(ctx context.Context, userID string, days int) ([]models.NutritionEntry, error) {
	now := s.now()

	entries, err := s.nutritionRepository.ListNutritionEntries(ctx, userID, daysAgo(now, days), now.Unix())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*nutritionService.ListNutrition").Msg("nutrition read failed")
		return nil, internalError("Failed to fetch nutrition entries", err)
	}
	return entries, nil
}

// AnalyzeFoodImage is a placeholder until image analysis is available.
func (s *nutritionService) AnalyzeFoodImage(context.Context, string) models.FoodAnalysis {
	return models.FoodAnalysis{
		Message: app.MsgFoodAnalysisComingSoon,
		Note:    app.MsgFoodAnalysisNote,
	}
}
