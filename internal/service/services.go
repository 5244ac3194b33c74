// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/Tarekazabou/health-app/internal/config"
	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/internal/store"
	"github.com/Tarekazabou/health-app/internal/validators"
)

type Services struct {
	AuthService      AuthService
	UserService      UserService
	VitalsService    VitalsService
	ActivityService  ActivityService
	SessionService   SessionService
	AlertService     AlertService
	NutritionService NutritionService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRecordValidator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, storages.ProfileRepository, validator, cfg.App, logger),
		UserService:      NewUserService(storages.UserRepository, storages.ProfileRepository, validator, logger),
		VitalsService:    NewVitalsService(storages.VitalsRepository, validator, logger),
		ActivityService:  NewActivityService(storages.ActivityRepository, validator, logger),
		SessionService:   NewSessionService(storages.SessionRepository, validator, logger),
		AlertService:     NewAlertService(storages.AlertRepository, validator, logger),
		NutritionService: NewNutritionService(storages.NutritionRepository, validator, logger),
		AppInfoService:   appInfoService,
	}, nil
}
