// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/models"
)

type alertRepository struct {
	docs DocumentStore
}

func NewAlertRepository(docs DocumentStore, logger *logger.Logger) AlertRepository {
	logger.Debug().Msg("creating alert repository")
	return &alertRepository{docs: docs}
}

func (r *alertRepository) CreateAlert(ctx context.Context, alert models.Alert) (string, error) {
	log := logger.FromContext(ctx)

	collection := UserCollection(alert.UserID, CollectionAlerts)
	alert.ID = r.docs.NewID(collection)

	fields, err := toFields(alert)
	if err != nil {
		log.Err(err).Str("func", "*alertRepository.CreateAlert").Msg("error encoding alert")
		return "", err
	}

	if err = r.docs.Set(ctx, collection.Doc(alert.ID), fields); err != nil {
		log.Err(err).Str("func", "*alertRepository.CreateAlert").Msg("error saving alert")
		return "", err
	}
	return alert.ID, nil
}

// ListAlerts returns up to limit alerts raised at or after since, newest first.
func (r *alertRepository) ListAlerts(ctx context.Context, userID string, since int64, limit int) ([]models.Alert, error) {
	q := Query{
		Collection: UserCollection(userID, CollectionAlerts),
		OrderBy:    "timestamp",
		Direction:  Descending,
		Limit:      limit,
	}.Where("timestamp", OpGreaterOrEqual, since)

	docs, err := r.docs.Query(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*alertRepository.ListAlerts").Msg("error querying alerts")
		return nil, err
	}

	return decodeDocuments(docs, func(doc Document, a *models.Alert) {
		a.ID = doc.ID
		a.UserID = userID
	})
}

// AcknowledgeAlert marks the alert acknowledged at the given unix time.
// Acknowledging twice only moves acknowledged_at. Returns
// [ErrDocumentNotFound] when the alert does not exist.
func (r *alertRepository) AcknowledgeAlert(ctx context.Context, userID, alertID string, at int64) error {
	err := r.docs.Update(ctx, UserCollection(userID, CollectionAlerts).Doc(alertID), map[string]any{
		"acknowledged":    true,
		"acknowledged_at": at,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*alertRepository.AcknowledgeAlert").Str("alert_id", alertID).Msg("error acknowledging alert")
		return err
	}
	return nil
}
