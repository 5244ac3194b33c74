// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/Tarekazabou/health-app/internal/config"
	"github.com/Tarekazabou/health-app/internal/logger"
)

// Backend names reported by [Storages.Backend].
const (
	BackendFirestore = "firestore"
	BackendSQL       = "sql"
	BackendDemo      = "demo"
)

// Storages groups every repository the services depend on, all backed by
// the same document store.
type Storages struct {
	UserRepository      UserRepository
	ProfileRepository   ProfileRepository
	VitalsRepository    VitalsRepository
	ActivityRepository  ActivityRepository
	SessionRepository   SessionRepository
	AlertRepository     AlertRepository
	NutritionRepository NutritionRepository

	backend string
	docs    DocumentStore
}

// NewStorages selects the backend once at startup:
//  1. Firestore when a Firebase project or credentials are configured;
//  2. SQL (PostgreSQL or SQLite, migrated on connect) when a DSN is set;
//  3. demo storages otherwise.
//
// A configured backend that cannot be reached is an error.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch {
	case cfg.Firebase.Enabled():
		docs, err := NewFirestoreDocumentStore(ctx, cfg.Firebase, log)
		if err != nil {
			return nil, err
		}
		return NewDocumentStorages(BackendFirestore, docs, log), nil

	case cfg.DB.Enabled():
		db, err := connectSQL(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}

		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
			_ = db.Close()
			return nil, err
		}

		docs, err := NewSQLDocumentStore(db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return NewDocumentStorages(BackendSQL, docs, log), nil

	default:
		log.Warn().Str("func", "NewStorages").Msg("no storage backend configured, running in demo mode")
		return NewDemoStorages(), nil
	}
}

func connectSQL(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Dialect() {
	case config.DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DialectSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, cfg.Dialect())
	}
}

// NewDocumentStorages builds every repository on top of docs.
func NewDocumentStorages(backend string, docs DocumentStore, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(docs, log),
		ProfileRepository:   NewProfileRepository(docs, log),
		VitalsRepository:    NewVitalsRepository(docs, log),
		ActivityRepository:  NewActivityRepository(docs, log),
		SessionRepository:   NewSessionRepository(docs, log),
		AlertRepository:     NewAlertRepository(docs, log),
		NutritionRepository: NewNutritionRepository(docs, log),
		backend:             backend,
		docs:                docs,
	}
}

// NewDemoStorages returns storages that keep nothing.
func NewDemoStorages() *Storages {
	demo := demoRepository{}
	return &Storages{
		UserRepository:      demo,
		ProfileRepository:   demo,
		VitalsRepository:    demo,
		ActivityRepository:  demo,
		SessionRepository:   demo,
		AlertRepository:     demo,
		NutritionRepository: demo,
		backend:             BackendDemo,
	}
}

// Backend returns the name of the selected backend.
func (s *Storages) Backend() string {
	return s.backend
}

// Close releases the underlying document store, if any.
func (s *Storages) Close() error {
	if s.docs == nil {
		return nil
	}
	return s.docs.Close()
}
