// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_CreateAndList(t *testing.T) {
	docs := newMemoryDocumentStore()
	repo := NewSessionRepository(docs, logger.Nop())
	ctx := testContext()

	for _, start := range []int64{1000, 3000, 2000, 500} {
		id, err := repo.CreateSession(ctx, models.Session{UserID: "u1", SessionType: "running", StartTime: start, EndTime: start + 60})
		require.NoError(t, err)
		assert.NotEmpty(t, id)
	}
	_, err := repo.CreateSession(ctx, models.Session{UserID: "u2", SessionType: "cycling", StartTime: 2500})
	require.NoError(t, err)

	got, err := repo.ListSessions(ctx, "u1", 1000, 50)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, int64(3000), got[0].StartTime)
	assert.Equal(t, int64(2000), got[1].StartTime)
	assert.Equal(t, int64(1000), got[2].StartTime)
	for _, s := range got {
		assert.Equal(t, "u1", s.UserID)
		assert.NotEmpty(t, s.ID)
	}

	limited, err := repo.ListSessions(ctx, "u1", 0, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, int64(3000), limited[0].StartTime)
}

func TestSessionRepository_StoresID(t *testing.T) {
	docs := newMemoryDocumentStore()
	repo := NewSessionRepository(docs, logger.Nop())

	id, err := repo.CreateSession(testContext(), models.Session{UserID: "u1", SessionType: "yoga", StartTime: 10})
	require.NoError(t, err)

	stored := docs.raw(UserCollection("u1", CollectionSessions).Doc(id))
	assert.Equal(t, id, stored["id"])
	assert.Equal(t, "u1", stored["user_id"])
	assert.Equal(t, "yoga", stored["session_type"])
}

func TestAlertRepository_CreateListAcknowledge(t *testing.T) {
	docs := newMemoryDocumentStore()
	repo := NewAlertRepository(docs, logger.Nop())
	ctx := testContext()

	oldID, err := repo.CreateAlert(ctx, models.Alert{UserID: "u1", Timestamp: 100, Severity: models.SeverityInfo, VitalType: "spo2", Message: "old"})
	require.NoError(t, err)
	newID, err := repo.CreateAlert(ctx, models.Alert{UserID: "u1", Timestamp: 200, Severity: models.SeverityCritical, VitalType: "heart_rate", Message: "new"})
	require.NoError(t, err)

	alerts, err := repo.ListAlerts(ctx, "u1", 0, 50)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, newID, alerts[0].ID)
	assert.Equal(t, oldID, alerts[1].ID)
	assert.False(t, alerts[0].Acknowledged)
	assert.Nil(t, alerts[0].AcknowledgedAt)

	recent, err := repo.ListAlerts(ctx, "u1", 150, 50)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "new", recent[0].Message)

	require.NoError(t, repo.AcknowledgeAlert(ctx, "u1", newID, 300))
	require.NoError(t, repo.AcknowledgeAlert(ctx, "u1", newID, 400))

	alerts, err = repo.ListAlerts(ctx, "u1", 150, 50)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.True(t, alerts[0].Acknowledged)
	require.NotNil(t, alerts[0].AcknowledgedAt)
	assert.Equal(t, int64(400), *alerts[0].AcknowledgedAt)
	assert.Equal(t, "new", alerts[0].Message)
}

func TestAlertRepository_AcknowledgeMissing(t *testing.T) {
	repo := NewAlertRepository(newMemoryDocumentStore(), logger.Nop())

	err := repo.AcknowledgeAlert(testContext(), "u1", "missing", 300)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestAlertRepository_AcknowledgeOtherUsersAlert(t *testing.T) {
	repo := NewAlertRepository(newMemoryDocumentStore(), logger.Nop())
	ctx := testContext()

	id, err := repo.CreateAlert(ctx, models.Alert{UserID: "u1", Timestamp: 100, Severity: "info", VitalType: "spo2", Message: "m"})
	require.NoError(t, err)

	err = repo.AcknowledgeAlert(ctx, "u2", id, 300)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestNutritionRepository_CreateAndList(t *testing.T) {
	repo := NewNutritionRepository(newMemoryDocumentStore(), logger.Nop())
	ctx := testContext()

	for _, ts := range []int64{50, 100, 150, 200, 250} {
		_, err := repo.CreateNutritionEntry(ctx, models.NutritionEntry{UserID: "u1", Timestamp: ts, MealType: "lunch", Calories: 500, ProteinG: 30.5})
		require.NoError(t, err)
	}

	got, err := repo.ListNutritionEntries(ctx, "u1", 100, 200)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, int64(200), got[0].Timestamp)
	assert.Equal(t, int64(150), got[1].Timestamp)
	assert.Equal(t, int64(100), got[2].Timestamp)
	assert.Equal(t, 30.5, got[0].ProteinG)
	assert.Equal(t, "u1", got[0].UserID)

	empty, err := repo.ListNutritionEntries(ctx, "u2", 0, 1000)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
