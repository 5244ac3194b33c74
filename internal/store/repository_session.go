// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/models"
)

type sessionRepository struct {
	docs DocumentStore
}

func NewSessionRepository(docs DocumentStore, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{docs: docs}
}

// CreateSession stores the session under a generated id and returns the id.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (string, error) {
	log := logger.FromContext(ctx)

	collection := UserCollection(session.UserID, CollectionSessions)
	session.ID = r.docs.NewID(collection)

	fields, err := toFields(session)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error encoding session")
		return "", err
	}

	if err = r.docs.Set(ctx, collection.Doc(session.ID), fields); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error saving session")
		return "", err
	}
	return session.ID, nil
}

// ListSessions returns up to limit sessions started at or after since,
// newest first.
func (r *sessionRepository) ListSessions(ctx context.Context, userID string, since int64, limit int) ([]models.Session, error) {
	q := Query{
		Collection: UserCollection(userID, CollectionSessions),
		OrderBy:    "start_time",
		Direction:  Descending,
		Limit:      limit,
	}.Where("start_time", OpGreaterOrEqual, since)

	docs, err := r.docs.Query(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.ListSessions").Msg("error querying sessions")
		return nil, err
	}

	return decodeDocuments(docs, func(doc Document, s *models.Session) {
		s.ID = doc.ID
		s.UserID = userID
	})
}
