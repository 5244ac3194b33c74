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

// userRepository is the [DocumentStore]-backed implementation of
// [UserRepository]. Accounts live in the top-level "users" collection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of store interactions.
type userRepository struct {
	docs DocumentStore
	now  Clock
}

// NewUserRepository constructs a [UserRepository] backed by docs.
func NewUserRepository(docs DocumentStore, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		docs: docs,
		now:  time.Now,
	}
}

// CreateUser persists a new account and returns it with the server-assigned
// fields (ID, CreatedAt) populated.
//
// Error handling:
//   - uniqueness violation on the email → [ErrDuplicateDocument] (SQL backend).
//   - any other backend error → returned wrapped.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.ID = r.docs.NewID(UsersCollection())
	user.CreatedAt = isoTimestamp(r.now())

	fields, err := toFields(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error encoding user")
		return models.User{}, err
	}

	if err = r.docs.Set(ctx, UsersCollection().Doc(user.ID), fields); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error saving user")
		return models.User{}, err
	}

	return user, nil
}

// FindUserByEmail returns the account registered with email.
// Returns [ErrNoUserWasFound] when there is none.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	q := Query{Collection: UsersCollection(), Limit: 1}.Where("email", OpEqual, email)
	docs, err := r.docs.Query(ctx, q)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error querying users")
		return models.User{}, err
	}
	if len(docs) == 0 {
		return models.User{}, ErrNoUserWasFound
	}

	return decodeUser(docs[0])
}

// GetUserByID returns the account with the given id.
// Returns [ErrNoUserWasFound] when there is none.
func (r *userRepository) GetUserByID(ctx context.Context, userID string) (models.User, error) {
	doc, err := r.docs.Get(ctx, UsersCollection().Doc(userID))
	if err != nil {
		if errors.Is(err, ErrDocumentNotFound) {
			return models.User{}, ErrNoUserWasFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.GetUserByID").Msg("error reading user")
		return models.User{}, err
	}

	return decodeUser(doc)
}

// UpdateLastLogin stamps last_login and updated_at on the account.
func (r *userRepository) UpdateLastLogin(ctx context.Context, userID string) error {
	now := isoTimestamp(r.now())
	err := r.docs.Update(ctx, UsersCollection().Doc(userID), map[string]any{
		"last_login": now,
		"updated_at": now,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.UpdateLastLogin").Msg("error updating last login")
		return err
	}
	return nil
}

func decodeUser(doc Document) (models.User, error) {
	var user models.User
	if err := fromFields(doc.Data, &user); err != nil {
		return models.User{}, err
	}
	user.ID = doc.ID
	return user, nil
}
