// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strconv"

	"github.com/Tarekazabou/health-app/models"
)

// Demo account returned when the API runs without a configured backend.
const (
	DemoEmail    = "demo@example.com"
	DemoUsername = "demo_user"

	demoAge      = 30
	demoWeightKg = 70.0
	demoHeightCm = 175.0
)

// demoRepository implements every repository interface without a backend:
// writes are accepted and dropped, reads return empty or canned results.
type demoRepository struct{}

var (
	_ UserRepository      = demoRepository{}
	_ ProfileRepository   = demoRepository{}
	_ VitalsRepository    = demoRepository{}
	_ ActivityRepository  = demoRepository{}
	_ SessionRepository   = demoRepository{}
	_ AlertRepository     = demoRepository{}
	_ NutritionRepository = demoRepository{}
)

func (demoRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	user.ID = "demo_user_" + user.Email
	return user, nil
}

func (demoRepository) FindUserByEmail(context.Context, string) (models.User, error) {
	return models.User{}, ErrNoUserWasFound
}

func (demoRepository) GetUserByID(_ context.Context, userID string) (models.User, error) {
	return models.User{
		ID:       userID,
		Email:    DemoEmail,
		Username: DemoUsername,
	}, nil
}

func (demoRepository) UpdateLastLogin(context.Context, string) error {
	return nil
}

func (demoRepository) GetProfile(_ context.Context, userID string) (models.UserProfile, error) {
	age, weight, height := demoAge, demoWeightKg, demoHeightCm

	profile := models.DefaultProfile(userID)
	profile.Age = &age
	profile.WeightKg = &weight
	profile.HeightCm = &height
	return profile, nil
}

func (demoRepository) UpsertProfile(context.Context, string, models.ProfileUpdate) error {
	return nil
}

func (demoRepository) SaveDailyVitals(context.Context, models.DailyVitals) error {
	return nil
}

func (demoRepository) GetVitalsRange(context.Context, string, string, string) ([]models.DailyVitals, error) {
	return []models.DailyVitals{}, nil
}

func (demoRepository) GetVitalsByDate(context.Context, string, string) (models.DailyVitals, error) {
	return models.DailyVitals{}, ErrDocumentNotFound
}

func (demoRepository) SaveDailyActivity(context.Context, models.DailyActivity) error {
	return nil
}

func (demoRepository) GetActivityRange(context.Context, string, string, string) ([]models.DailyActivity, error) {
	return []models.DailyActivity{}, nil
}

func (demoRepository) CreateSession(_ context.Context, session models.Session) (string, error) {
	return "demo_session_" + strconv.FormatInt(session.StartTime, 10), nil
}

func (demoRepository) ListSessions(context.Context, string, int64, int) ([]models.Session, error) {
	return []models.Session{}, nil
}

func (demoRepository) CreateAlert(_ context.Context, alert models.Alert) (string, error) {
	return "demo_alert_" + strconv.FormatInt(alert.Timestamp, 10), nil
}

func (demoRepository) ListAlerts(context.Context, string, int64, int) ([]models.Alert, error) {
	return []models.Alert{}, nil
}

func (demoRepository) AcknowledgeAlert(context.Context, string, string, int64) error {
	return nil
}

func (demoRepository) CreateNutritionEntry(_ context.Context, entry models.NutritionEntry) (string, error) {
	return "demo_nutrition_" + strconv.FormatInt(entry.Timestamp, 10), nil
}

func (demoRepository) ListNutritionEntries(context.Context, string, int64, int64) ([]models.NutritionEntry, error) {
	return []models.NutritionEntry{}, nil
}
