// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"time"

	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/models"
)

// profileRepository stores the single profile document of each user at
// users/{id}/profile/data.
type profileRepository struct {
	docs DocumentStore
	now  Clock
}

func NewProfileRepository(docs DocumentStore, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		docs: docs,
		now:  time.Now,
	}
}

func profileRef(userID string) DocumentRef {
	return UserCollection(userID, CollectionProfile).Doc(profileDocumentID)
}

// GetProfile returns the stored profile or [ErrProfileNotFound]. Goals
// missing from the stored document take their default values.
func (r *profileRepository) GetProfile(ctx context.Context, userID string) (models.UserProfile, error) {
	doc, err := r.docs.Get(ctx, profileRef(userID))
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return models.UserProfile{}, ErrProfileNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*profileRepository.GetProfile").Msg("error reading profile")
		return models.UserProfile{}, err
	}

	profile := models.DefaultProfile(userID)
	if err = fromFields(doc.Data, &profile); err != nil {
		return models.UserProfile{}, err
	}
	profile.UserID = userID

	return profile, nil
}

// UpsertProfile merges the set fields of update into the profile, creating
// it when absent. user_id and updated_at are always stamped.
func (r *profileRepository) UpsertProfile(ctx context.Context, userID string, update models.ProfileUpdate) error {
	log := logger.FromContext(ctx)

	fields, err := toFields(update)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpsertProfile").Msg("error encoding profile")
		return err
	}
	fields["user_id"] = userID
	fields["updated_at"] = isoTimestamp(r.now())

	if err = r.docs.Merge(ctx, profileRef(userID), fields); err != nil {
		log.Err(err).Str("func", "*profileRepository.UpsertProfile").Msg("error saving profile")
		return err
	}
	return nil
}
