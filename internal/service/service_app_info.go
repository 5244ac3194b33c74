// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/Tarekazabou/health-app/internal/config"
	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/models"
)

const (
	statusRunning = "running"
	statusHealthy = "healthy"

	// healthServiceName identifies this service to health checks.
	healthServiceName = "healthtrack-api"
)

type appInfoService struct {
	appName    string
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appName:    cfg.Name,
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return models.AppInfo{
		Message: s.appName,
		Version: s.appVersion,
		Status:  statusRunning,
	}
}

func (s *appInfoService) GetHealth(ctx context.Context) models.HealthStatus {
	return models.HealthStatus{
		Status:  statusHealthy,
		Service: healthServiceName,
	}
}
