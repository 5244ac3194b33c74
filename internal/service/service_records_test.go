// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/internal/mock"
	"github.com/Tarekazabou/health-app/internal/store"
	"github.com/Tarekazabou/health-app/internal/validators"
	"github.com/Tarekazabou/health-app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fixedNow() time.Time { return testNow }

func ptr[T any](v T) *T { return &v }

// ── Vitals ───────────────────────────────────────────────────────────────────

func newTestVitalsSvc(t *testing.T, ctrl *gomock.Controller) (*vitalsService, *mock.MockVitalsRepository) {
	t.Helper()
	repo := mock.NewMockVitalsRepository(ctrl)
	svc := NewVitalsService(repo, validators.NewRecordValidator(), logger.Nop()).(*vitalsService)
	svc.now = fixedNow
	return svc, repo
}

func TestVitalsService_SyncDailyVitals_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestVitalsSvc(t, ctrl)
	ctx := context.Background()

	hr := 72
	req := models.SyncVitalsRequest{
		Date:     "2024-01-15",
		Readings: []models.VitalReading{{Timestamp: 1705312200, HeartRate: &hr}},
		Summary:  &models.VitalsSummary{Steps: 5000},
	}

	repo.EXPECT().SaveDailyVitals(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, v models.DailyVitals) error {
			assert.Equal(t, "user-1", v.UserID)
			assert.Equal(t, "2024-01-15", v.Date)
			assert.Equal(t, req.Readings, v.Readings)
			assert.Equal(t, 5000, v.Summary.Steps)
			return nil
		},
	)

	require.NoError(t, svc.SyncDailyVitals(ctx, "user-1", req))
}

func TestVitalsService_SyncDailyVitals_MissingSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestVitalsSvc(t, ctrl)

	err := svc.SyncDailyVitals(context.Background(), "user-1", models.SyncVitalsRequest{
		Date:     "2024-01-15",
		Readings: []models.VitalReading{},
	})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Field 'summary' is required", Message(err))
}

func TestVitalsService_SyncDailyVitals_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestVitalsSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().SaveDailyVitals(ctx, gomock.Any()).Return(errStorage)

	err := svc.SyncDailyVitals(ctx, "user-1", models.SyncVitalsRequest{
		Date:     "2024-01-15",
		Readings: []models.VitalReading{},
		Summary:  &models.VitalsSummary{},
	})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, "Failed to sync vitals: storage error", Message(err))
}

func TestVitalsService_GetHistoricalVitals_Window(t *testing.T) {
	tests := []struct {
		days      int
		wantStart string
	}{
		{days: 1, wantStart: "2024-01-15"},
		{days: 7, wantStart: "2024-01-09"},
		{days: 30, wantStart: "2023-12-17"},
	}

	for _, tt := range tests {
		ctrl := gomock.NewController(t)
		svc, repo := newTestVitalsSvc(t, ctrl)
		ctx := context.Background()

		stored := []models.DailyVitals{{UserID: "user-1", Date: tt.wantStart}}
		repo.EXPECT().GetVitalsRange(ctx, "user-1", tt.wantStart, "2024-01-15").Return(stored, nil)

		got, err := svc.GetHistoricalVitals(ctx, "user-1", tt.days)
		require.NoError(t, err)

		assert.Equal(t, stored, got.Data)
		assert.Equal(t, tt.days, got.Days)
		assert.Equal(t, tt.wantStart, got.StartDate)
		assert.Equal(t, "2024-01-15", got.EndDate)
	}
}

func TestVitalsService_GetHistoricalVitals_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestVitalsSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetVitalsRange(ctx, "user-1", gomock.Any(), gomock.Any()).Return(nil, errStorage)

	_, err := svc.GetHistoricalVitals(ctx, "user-1", 7)

	assert.Equal(t, "Failed to fetch historical vitals: storage error", Message(err))
}

func TestVitalsService_GetVitalsByDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestVitalsSvc(t, ctrl)
	ctx := context.Background()

	stored := models.DailyVitals{UserID: "user-1", Date: "2024-01-14"}
	repo.EXPECT().GetVitalsByDate(ctx, "user-1", "2024-01-14").Return(stored, nil)
	repo.EXPECT().GetVitalsByDate(ctx, "user-1", "2024-01-13").Return(models.DailyVitals{}, store.ErrDocumentNotFound)
	repo.EXPECT().GetVitalsByDate(ctx, "user-1", "2024-01-12").Return(models.DailyVitals{}, errStorage)

	got, err := svc.GetVitalsByDate(ctx, "user-1", "2024-01-14")
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	_, err = svc.GetVitalsByDate(ctx, "user-1", "2024-01-13")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "No vitals found for 2024-01-13", Message(err))

	_, err = svc.GetVitalsByDate(ctx, "user-1", "2024-01-12")
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, "Failed to fetch vitals: storage error", Message(err))
}

// ── Activity ─────────────────────────────────────────────────────────────────

func newTestActivitySvc(t *testing.T, ctrl *gomock.Controller) (*activityService, *mock.MockActivityRepository) {
	t.Helper()
	repo := mock.NewMockActivityRepository(ctrl)
	svc := NewActivityService(repo, validators.NewRecordValidator(), logger.Nop()).(*activityService)
	svc.now = fixedNow
	return svc, repo
}

func TestActivityService_SyncDailyActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestActivitySvc(t, ctrl)
	ctx := context.Background()

	req := models.SyncActivityRequest{
		Date:            "2024-01-15",
		Steps:           ptr(8000),
		DistanceKm:      ptr(6.1),
		ActiveMinutes:   ptr(45),
		CaloriesBurned:  ptr(320),
		HourlyBreakdown: []models.HourlyActivity{{Hour: 9, Steps: 1200}},
	}
	repo.EXPECT().SaveDailyActivity(ctx, models.DailyActivity{
		UserID:          "user-1",
		Date:            "2024-01-15",
		Steps:           8000,
		DistanceKm:      6.1,
		ActiveMinutes:   45,
		CaloriesBurned:  320,
		HourlyBreakdown: req.HourlyBreakdown,
	}).Return(nil)

	require.NoError(t, svc.SyncDailyActivity(ctx, "user-1", req))
}

func TestActivityService_SyncDailyActivity_ZeroTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestActivitySvc(t, ctrl)
	ctx := context.Background()

	req := models.SyncActivityRequest{
		Date:           "2024-01-15",
		Steps:          ptr(0),
		DistanceKm:     ptr(0.0),
		ActiveMinutes:  ptr(0),
		CaloriesBurned: ptr(0),
	}
	repo.EXPECT().SaveDailyActivity(ctx, models.DailyActivity{UserID: "user-1", Date: "2024-01-15"}).Return(nil)

	require.NoError(t, svc.SyncDailyActivity(ctx, "user-1", req))
}

func TestActivityService_SyncDailyActivity_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestActivitySvc(t, ctrl)
	ctx := context.Background()

	err := svc.SyncDailyActivity(ctx, "user-1", models.SyncActivityRequest{
		Steps: ptr(10), DistanceKm: ptr(1.0), ActiveMinutes: ptr(5), CaloriesBurned: ptr(40),
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Field 'date' is required", Message(err))

	err = svc.SyncDailyActivity(ctx, "user-1", models.SyncActivityRequest{
		Date: "2024-01-15", DistanceKm: ptr(1.0), ActiveMinutes: ptr(5), CaloriesBurned: ptr(40),
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Field 'steps' is required", Message(err))
}

func TestActivityService_GetHistoricalActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestActivitySvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetActivityRange(ctx, "user-1", "2024-01-09", "2024-01-15").Return([]models.DailyActivity{}, nil)
	repo.EXPECT().GetActivityRange(ctx, "user-1", "2024-01-15", "2024-01-15").Return(nil, errStorage)

	got, err := svc.GetHistoricalActivity(ctx, "user-1", 7)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-09", got.StartDate)
	assert.Equal(t, "2024-01-15", got.EndDate)
	assert.Empty(t, got.Data)

	_, err = svc.GetHistoricalActivity(ctx, "user-1", 1)
	assert.Equal(t, "Failed to fetch historical activity: storage error", Message(err))
}

// ── Sessions ─────────────────────────────────────────────────────────────────

func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller) (*sessionService, *mock.MockSessionRepository) {
	t.Helper()
	repo := mock.NewMockSessionRepository(ctrl)
	svc := NewSessionService(repo, validators.NewRecordValidator(), logger.Nop()).(*sessionService)
	svc.now = fixedNow
	return svc, repo
}

func TestSessionService_CreateSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	req := models.CreateSessionRequest{SessionType: "run", StartTime: ptr[int64](100), EndTime: ptr[int64](1900), DurationSeconds: ptr[int64](1800)}
	repo.EXPECT().CreateSession(ctx, models.Session{
		UserID:          "user-1",
		SessionType:     "run",
		StartTime:       100,
		EndTime:         1900,
		DurationSeconds: 1800,
	}).Return("session-1", nil)

	id, err := svc.CreateSession(ctx, "user-1", req)

	require.NoError(t, err)
	assert.Equal(t, "session-1", id)
}

func TestSessionService_CreateSession_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	valid := models.CreateSessionRequest{SessionType: "walk", StartTime: ptr[int64](0), EndTime: ptr[int64](60), DurationSeconds: ptr[int64](60)}

	noType := valid
	noType.SessionType = ""
	_, err := svc.CreateSession(ctx, "user-1", noType)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Field 'session_type' is required", Message(err))

	noDuration := valid
	noDuration.DurationSeconds = nil
	_, err = svc.CreateSession(ctx, "user-1", noDuration)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Field 'duration_seconds' is required", Message(err))

	repo.EXPECT().CreateSession(ctx, gomock.Any()).Return("", errStorage)
	_, err = svc.CreateSession(ctx, "user-1", valid)
	assert.Equal(t, "Failed to create session: storage error", Message(err))
}

func TestSessionService_ListSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	since := testNow.Add(-30 * 24 * time.Hour).Unix()
	sessions := []models.Session{{ID: "b", StartTime: 200}, {ID: "a", StartTime: 100}}
	repo.EXPECT().ListSessions(ctx, "user-1", since, 10).Return(sessions, nil)

	got, err := svc.ListSessions(ctx, "user-1", 10, 30)

	require.NoError(t, err)
	assert.Equal(t, sessions, got.Sessions)
	assert.Equal(t, 2, got.Total)
}

func TestSessionService_ListSessions_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().ListSessions(ctx, "user-1", gomock.Any(), 10).Return(nil, errStorage)

	_, err := svc.ListSessions(ctx, "user-1", 10, 30)

	assert.Equal(t, "Failed to fetch sessions: storage error", Message(err))
}

// ── Alerts ───────────────────────────────────────────────────────────────────

func newTestAlertSvc(t *testing.T, ctrl *gomock.Controller) (*alertService, *mock.MockAlertRepository) {
	t.Helper()
	repo := mock.NewMockAlertRepository(ctrl)
	svc := NewAlertService(repo, validators.NewRecordValidator(), logger.Nop()).(*alertService)
	svc.now = fixedNow
	return svc, repo
}

func TestAlertService_CreateAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAlertSvc(t, ctrl)
	ctx := context.Background()

	req := models.CreateAlertRequest{
		Timestamp:  ptr[int64](1705312200),
		Severity:   models.SeverityCritical,
		VitalType:  "heart_rate",
		Message:    "Heart rate above 150",
		VitalValue: ptr(152.0),
	}
	repo.EXPECT().CreateAlert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Alert) (string, error) {
			assert.Empty(t, a.ID)
			assert.Equal(t, "user-1", a.UserID)
			assert.Equal(t, int64(1705312200), a.Timestamp)
			assert.Equal(t, req.Message, a.Message)
			assert.False(t, a.Acknowledged)
			assert.Nil(t, a.AcknowledgedAt)
			return "alert-1", nil
		},
	)

	id, err := svc.CreateAlert(ctx, "user-1", req)

	require.NoError(t, err)
	assert.Equal(t, "alert-1", id)
}

func TestAlertService_CreateAlert_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAlertSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.CreateAlert(ctx, "user-1", models.CreateAlertRequest{Timestamp: ptr[int64](1), Severity: "info", VitalType: "spo2"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Field 'message' is required", Message(err))

	_, err = svc.CreateAlert(ctx, "user-1", models.CreateAlertRequest{Severity: "info", VitalType: "spo2", Message: "Low"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Field 'timestamp' is required", Message(err))
}

func TestAlertService_ListAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAlertSvc(t, ctrl)
	ctx := context.Background()

	since := testNow.Add(-7 * 24 * time.Hour).Unix()
	alerts := []models.Alert{{ID: "alert-1"}}
	repo.EXPECT().ListAlerts(ctx, "user-1", since, 50).Return(alerts, nil)
	repo.EXPECT().ListAlerts(ctx, "user-1", since, 5).Return(nil, errStorage)

	got, err := svc.ListAlerts(ctx, "user-1", 50, 7)
	require.NoError(t, err)
	assert.Equal(t, alerts, got)

	_, err = svc.ListAlerts(ctx, "user-1", 5, 7)
	assert.Equal(t, "Failed to fetch alerts: storage error", Message(err))
}

func TestAlertService_AcknowledgeAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAlertSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().AcknowledgeAlert(ctx, "user-1", "alert-1", testNow.Unix()).Return(nil)
	repo.EXPECT().AcknowledgeAlert(ctx, "user-1", "missing", testNow.Unix()).Return(store.ErrDocumentNotFound)
	repo.EXPECT().AcknowledgeAlert(ctx, "user-1", "broken", testNow.Unix()).Return(errStorage)

	require.NoError(t, svc.AcknowledgeAlert(ctx, "user-1", "alert-1"))

	err := svc.AcknowledgeAlert(ctx, "user-1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Alert not found", Message(err))

	err = svc.AcknowledgeAlert(ctx, "user-1", "broken")
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, "Failed to acknowledge alert: storage error", Message(err))
}

// ── Nutrition ────────────────────────────────────────────────────────────────

func newTestNutritionSvc(t *testing.T, ctrl *gomock.Controller) (*nutritionService, *mock.MockNutritionRepository) {
	t.Helper()
	repo := mock.NewMockNutritionRepository(ctrl)
	svc := NewNutritionService(repo, validators.NewRecordValidator(), logger.Nop()).(*nutritionService)
	svc.now = fixedNow
	return svc, repo
}

func TestNutritionService_LogNutrition(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNutritionSvc(t, ctrl)
	ctx := context.Background()

	req := models.LogNutritionRequest{
		Timestamp: ptr[int64](1705312200),
		MealType:  "lunch",
		Calories:  ptr(650),
		ProteinG:  ptr(35.0),
		CarbsG:    ptr(70.5),
		FatsG:     ptr(0.0),
	}
	repo.EXPECT().CreateNutritionEntry(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.NutritionEntry) (string, error) {
			assert.Empty(t, e.ID)
			assert.Equal(t, "user-1", e.UserID)
			assert.Equal(t, int64(1705312200), e.Timestamp)
			assert.Equal(t, 650, e.Calories)
			assert.Equal(t, 70.5, e.CarbsG)
			return "entry-1", nil
		},
	)

	id, err := svc.LogNutrition(ctx, "user-1", req)

	require.NoError(t, err)
	assert.Equal(t, "entry-1", id)
}

func TestNutritionService_LogNutrition_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNutritionSvc(t, ctrl)
	ctx := context.Background()

	valid := models.LogNutritionRequest{
		Timestamp: ptr[int64](1705312200),
		MealType:  "snack",
		Calories:  ptr(100),
		ProteinG:  ptr(1.0),
		CarbsG:    ptr(20.0),
		FatsG:     ptr(0.5),
	}

	noMeal := valid
	noMeal.MealType = ""
	_, err := svc.LogNutrition(ctx, "user-1", noMeal)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Field 'meal_type' is required", Message(err))

	noCalories := valid
	noCalories.Calories = nil
	_, err = svc.LogNutrition(ctx, "user-1", noCalories)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Field 'calories' is required", Message(err))

	repo.EXPECT().CreateNutritionEntry(ctx, gomock.Any()).Return("", errStorage)
	_, err = svc.LogNutrition(ctx, "user-1", valid)
	assert.Equal(t, "Failed to log nutrition: storage error", Message(err))
}

func TestNutritionService_ListNutrition(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNutritionSvc(t, ctrl)
	ctx := context.Background()

	start := testNow.Add(-24 * time.Hour).Unix()
	entries := []models.NutritionEntry{{ID: "entry-1"}}
	repo.EXPECT().ListNutritionEntries(ctx, "user-1", start, testNow.Unix()).Return(entries, nil)

	got, err := svc.ListNutrition(ctx, "user-1", 1)

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestNutritionService_ListNutrition_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNutritionSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().ListNutritionEntries(ctx, "user-1", gomock.Any(), gomock.Any()).Return(nil, errStorage)

	_, err := svc.ListNutrition(ctx, "user-1", 1)

	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, "Failed to fetch nutrition entries: storage error", Message(err))
}

func TestNutritionService_AnalyzeFoodImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestNutritionSvc(t, ctrl)

	got := svc.AnalyzeFoodImage(context.Background(), "user-1")

	assert.Equal(t, "AI food analysis coming soon!", got.Message)
	assert.Equal(t, "This endpoint will integrate with Gen AI backend in the future", got.Note)
}
