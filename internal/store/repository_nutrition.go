// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/models"
)

type nutritionRepository struct {
	docs DocumentStore
}

func NewNutritionRepository(docs DocumentStore, logger *logger.Logger) NutritionRepository {
	logger.Debug().Msg("creating nutrition repository")
	return &nutritionRepository{docs: docs}
}

func (r *nutritionRepository) CreateNutritionEntry(ctx context.Context, entry models.NutritionEntry) (string, error) {
	log := logger.FromContext(ctx)

	collection := UserCollection(entry.UserID, CollectionNutrition)
	entry.ID = r.docs.NewID(collection)

	fields, err := toFields(entry)
	if err != nil {
		log.Err(err).Str("func", "*nutritionRepository.CreateNutritionEntry").Msg("error encoding nutrition entry")
		return "", err
	}

	if err = r.docs.Set(ctx, collection.Doc(entry.ID), fields); err != nil {
		log.Err(err).Str("func", "*nutritionRepository.CreateNutritionEntry").Msg("error saving nutrition entry")
		return "", err
	}
	return entry.ID, nil
}

// ListNutritionEntries returns the entries logged within [start, end],
// newest first.
func (r *nutritionRepository) ListNutritionEntries(ctx context.Context, userID string, start, end int64) ([]models.NutritionEntry, error) {
	q := Query{
		Collection: UserCollection(userID, CollectionNutrition),
		OrderBy:    "timestamp",
		Direction:  Descending,
	}.
		Where("timestamp", OpGreaterOrEqual, start).
		Where("timestamp", OpLessOrEqual, end)

	docs, err := r.docs.Query(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*nutritionRepository.ListNutritionEntries").Msg("error querying nutrition")
		return nil, err
	}

	return decodeDocuments(docs, func(doc Document, e *models.NutritionEntry) {
		e.ID = doc.ID
		e.UserID = userID
	})
}
