// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/Tarekazabou/health-app/models"
)

// AuthService registers accounts, checks credentials and issues and verifies
// bearer tokens.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.TokenResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error)
	CreateToken(ctx context.Context, identity models.Identity) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Identity, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) error
	GetUserInfo(ctx context.Context, userID string) (models.UserInfo, error)
}

type VitalsService interface {
	SyncDailyVitals(ctx context.Context, userID string, req models.SyncVitalsRequest) error
	GetHistoricalVitals(ctx context.Context, userID string, days int) (models.VitalsRangeResponse, error)
	GetVitalsByDate(ctx context.Context, userID, date string) (models.DailyVitals, error)
}

type ActivityService interface {
	SyncDailyActivity(ctx context.Context, userID string, req models.SyncActivityRequest) error
	GetHistoricalActivity(ctx context.Context, userID string, days int) (models.ActivityRangeResponse, error)
}

type SessionService interface {
	CreateSession(ctx context.Context, userID string, req models.CreateSessionRequest) (string, error)
	ListSessions(ctx context.Context, userID string, limit, days int) (models.SessionsResponse, error)
}

type AlertService interface {
	CreateAlert(ctx context.Context, userID string, req models.CreateAlertRequest) (string, error)
	ListAlerts(ctx context.Context, userID string, limit, days int) ([]models.Alert, error)
	AcknowledgeAlert(ctx context.Context, userID, alertID string) error
}

type NutritionService interface {
	LogNutrition(ctx context.Context, userID string, req models.LogNutritionRequest) (string, error)
	ListNutrition(ctx context.Context, userID string, days int) ([]models.NutritionEntry, error)
	AnalyzeFoodImage(ctx context.Context, userID string) models.FoodAnalysis
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
	GetHealth(ctx context.Context) models.HealthStatus
}
