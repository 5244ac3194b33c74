// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/Tarekazabou/health-app/models"
)

// DocumentStore is the low-level backend every repository is built on: a
// hierarchical document database addressed by slash separated paths.
//
// Implementations: [FirestoreDocumentStore] and [SQLDocumentStore].
type DocumentStore interface {
	// NewID returns a fresh document identifier for the collection.
	NewID(collection Collection) string

	// Get reads a single document. Returns [ErrDocumentNotFound] when it
	// does not exist.
	Get(ctx context.Context, ref DocumentRef) (Document, error)

	// Set creates or fully overwrites the document.
	Set(ctx context.Context, ref DocumentRef, fields map[string]any) error

	// Merge creates the document or merges the top-level fields into it.
	Merge(ctx context.Context, ref DocumentRef, fields map[string]any) error

	// Update merges the top-level fields into an existing document.
	// Returns [ErrDocumentNotFound] when it does not exist.
	Update(ctx context.Context, ref DocumentRef, fields map[string]any) error

	// Query returns the documents of a collection matching q.
	Query(ctx context.Context, q Query) ([]Document, error)

	Close() error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByID(ctx context.Context, userID string) (models.User, error)
	UpdateLastLogin(ctx context.Context, userID string) error
}

type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (models.UserProfile, error)
	UpsertProfile(ctx context.Context, userID string, update models.ProfileUpdate) error
}

type VitalsRepository interface {
	SaveDailyVitals(ctx context.Context, vitals models.DailyVitals) error
	GetVitalsRange(ctx context.Context, userID, startDate, endDate string) ([]models.DailyVitals, error)
	GetVitalsByDate(ctx context.Context, userID, date string) (models.DailyVitals, error)
}

type ActivityRepository interface {
	SaveDailyActivity(ctx context.Context, activity models.DailyActivity) error
	GetActivityRange(ctx context.Context, userID, startDate, endDate string) ([]models.DailyActivity, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) (string, error)
	ListSessions(ctx context.Context, userID string, since int64, limit int) ([]models.Session, error)
}

type AlertRepository interface {
	CreateAlert(ctx context.Context, alert models.Alert) (string, error)
	ListAlerts(ctx context.Context, userID string, since int64, limit int) ([]models.Alert, error)
	AcknowledgeAlert(ctx context.Context, userID, alertID string, at int64) error
}

type NutritionRepository interface {
	CreateNutritionEntry(ctx context.Context, entry models.NutritionEntry) (string, error)
	ListNutritionEntries(ctx context.Context, userID string, start, end int64) ([]models.NutritionEntry, error)
}
