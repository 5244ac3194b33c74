// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/Tarekazabou/health-app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoStorages_SyntheticIDs(t *testing.T) {
	s := NewDemoStorages()
	ctx := testContext()

	user, err := s.UserRepository.CreateUser(ctx, models.User{Email: "a@b.co", Username: "a"})
	require.NoError(t, err)
	assert.Equal(t, "demo_user_a@b.co", user.ID)

	sessionID, err := s.SessionRepository.CreateSession(ctx, models.Session{StartTime: 1700000000})
	require.NoError(t, err)
	assert.Equal(t, "demo_session_1700000000", sessionID)

	alertID, err := s.AlertRepository.CreateAlert(ctx, models.Alert{Timestamp: 42})
	require.NoError(t, err)
	assert.Equal(t, "demo_alert_42", alertID)

	entryID, err := s.NutritionRepository.CreateNutritionEntry(ctx, models.NutritionEntry{Timestamp: 7})
	require.NoError(t, err)
	assert.Equal(t, "demo_nutrition_7", entryID)
}

func TestDemoStorages_CannedReads(t *testing.T) {
	s := NewDemoStorages()
	ctx := testContext()

	_, err := s.UserRepository.FindUserByEmail(ctx, "a@b.co")
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	user, err := s.UserRepository.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: "u1", Email: "demo@example.com", Username: "demo_user"}, user)

	profile, err := s.ProfileRepository.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", profile.UserID)
	assert.Equal(t, 30, *profile.Age)
	assert.Equal(t, 70.0, *profile.WeightKg)
	assert.Equal(t, 175.0, *profile.HeightCm)
	assert.Equal(t, 2000, profile.DailyCalorieGoal)
	assert.Equal(t, 10000, profile.DailyStepGoal)
	assert.Equal(t, 5.0, profile.DailyDistanceGoal)
	assert.Equal(t, 30, profile.DailyActiveMinutesGoal)
	assert.Equal(t, 150, profile.DailyProteinGoal)
	assert.Equal(t, 250, profile.DailyCarbsGoal)
	assert.Equal(t, 70, profile.DailyFatsGoal)

	vitals, err := s.VitalsRepository.GetVitalsRange(ctx, "u1", "2024-01-01", "2024-01-07")
	require.NoError(t, err)
	assert.NotNil(t, vitals)
	assert.Empty(t, vitals)

	_, err = s.VitalsRepository.GetVitalsByDate(ctx, "u1", "2024-01-01")
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	activity, err := s.ActivityRepository.GetActivityRange(ctx, "u1", "2024-01-01", "2024-01-07")
	require.NoError(t, err)
	assert.Empty(t, activity)

	sessions, err := s.SessionRepository.ListSessions(ctx, "u1", 0, 50)
	require.NoError(t, err)
	assert.Empty(t, sessions)

	alerts, err := s.AlertRepository.ListAlerts(ctx, "u1", 0, 50)
	require.NoError(t, err)
	assert.Empty(t, alerts)

	entries, err := s.NutritionRepository.ListNutritionEntries(ctx, "u1", 0, 100)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDemoStorages_WritesAreAccepted(t *testing.T) {
	s := NewDemoStorages()
	ctx := testContext()

	assert.NoError(t, s.UserRepository.UpdateLastLogin(ctx, "u1"))
	assert.NoError(t, s.ProfileRepository.UpsertProfile(ctx, "u1", models.DefaultGoals()))
	assert.NoError(t, s.VitalsRepository.SaveDailyVitals(ctx, models.DailyVitals{UserID: "u1", Date: "2024-01-01"}))
	assert.NoError(t, s.ActivityRepository.SaveDailyActivity(ctx, models.DailyActivity{UserID: "u1", Date: "2024-01-01"}))
	assert.NoError(t, s.AlertRepository.AcknowledgeAlert(ctx, "u1", "missing", 1))

	// nothing was kept
	profile, err := s.ProfileRepository.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 30, *profile.Age)
}

func TestDemoStorages_BackendAndClose(t *testing.T) {
	s := NewDemoStorages()

	assert.Equal(t, BackendDemo, s.Backend())
	assert.NoError(t, s.Close())
}
