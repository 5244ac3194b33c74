// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/models"
)

// activityRepository stores daily activity totals at
// users/{id}/daily_activities/{date}.
type activityRepository struct {
	docs DocumentStore
	now  Clock
}

func NewActivityRepository(docs DocumentStore, logger *logger.Logger) ActivityRepository {
	logger.Debug().Msg("creating activity repository")
	return &activityRepository{
		docs: docs,
		now:  time.Now,
	}
}

func (r *activityRepository) SaveDailyActivity(ctx context.Context, activity models.DailyActivity) error {
	log := logger.FromContext(ctx)

	syncedAt := isoTimestamp(r.now())
	activity.SyncedAt = &syncedAt

	fields, err := toFields(activity)
	if err != nil {
		log.Err(err).Str("func", "*activityRepository.SaveDailyActivity").Msg("error encoding activity")
		return err
	}

	ref := UserCollection(activity.UserID, CollectionDailyActivities).Doc(activity.Date)
	if err = r.docs.Set(ctx, ref, fields); err != nil {
		log.Err(err).Str("func", "*activityRepository.SaveDailyActivity").Str("date", activity.Date).Msg("error saving activity")
		return err
	}
	return nil
}

func (r *activityRepository) GetActivityRange(ctx context.Context, userID, startDate, endDate string) ([]models.DailyActivity, error) {
	q := Query{
		Collection: UserCollection(userID, CollectionDailyActivities),
		OrderBy:    "date",
		Direction:  Ascending,
	}.
		Where("date", OpGreaterOrEqual, startDate).
		Where("date", OpLessOrEqual, endDate)

	docs, err := r.docs.Query(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*activityRepository.GetActivityRange").Msg("error querying activity")
		return nil, err
	}

	return decodeDocuments(docs, func(_ Document, a *models.DailyActivity) {
		a.UserID = userID
	})
}
