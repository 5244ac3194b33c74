// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/models"
)

// vitalsRepository stores one document per user and calendar date at
// users/{id}/daily_vitals/{date}.
type vitalsRepository struct {
	docs DocumentStore
	now  Clock
}

func NewVitalsRepository(docs DocumentStore, logger *logger.Logger) VitalsRepository {
	logger.Debug().Msg("creating vitals repository")
	return &vitalsRepository{
		docs: docs,
		now:  time.Now,
	}
}

// SaveDailyVitals overwrites the vitals of vitals.Date and stamps synced_at.
func (r *vitalsRepository) SaveDailyVitals(ctx context.Context, vitals models.DailyVitals) error {
	log := logger.FromContext(ctx)

	syncedAt := isoTimestamp(r.now())
	vitals.SyncedAt = &syncedAt

	fields, err := toFields(vitals)
	if err != nil {
		log.Err(err).Str("func", "*vitalsRepository.SaveDailyVitals").Msg("error encoding vitals")
		return err
	}

	ref := UserCollection(vitals.UserID, CollectionDailyVitals).Doc(vitals.Date)
	if err = r.docs.Set(ctx, ref, fields); err != nil {
		log.Err(err).Str("func", "*vitalsRepository.SaveDailyVitals").Str("date", vitals.Date).Msg("error saving vitals")
		return err
	}
	return nil
}

// GetVitalsRange returns the vitals dated within [startDate, endDate],
// ascending by date.
func (r *vitalsRepository) GetVitalsRange(ctx context.Context, userID, startDate, endDate string) ([]models.DailyVitals, error) {
	q := Query{
		Collection: UserCollection(userID, CollectionDailyVitals),
		OrderBy:    "date",
		Direction:  Ascending,
	}.
		Where("date", OpGreaterOrEqual, startDate).
		Where("date", OpLessOrEqual, endDate)

	docs, err := r.docs.Query(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*vitalsRepository.GetVitalsRange").Msg("error querying vitals")
		return nil, err
	}

	return decodeDocuments(docs, func(_ Document, v *models.DailyVitals) {
		v.UserID = userID
	})
}

// GetVitalsByDate returns the vitals of a single date or [ErrDocumentNotFound].
func (r *vitalsRepository) GetVitalsByDate(ctx context.Context, userID, date string) (models.DailyVitals, error) {
	doc, err := r.docs.Get(ctx, UserCollection(userID, CollectionDailyVitals).Doc(date))
	if err != nil {
		return models.DailyVitals{}, err
	}

	var vitals models.DailyVitals
	if err = fromFields(doc.Data, &vitals); err != nil {
		return models.DailyVitals{}, err
	}
	vitals.UserID = userID

	return vitals, nil
}
