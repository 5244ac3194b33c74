// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/migrations"
	"github.com/jmoiron/sqlx"
)

// DB is a SQL connection bound to the dialect it was opened with.
type DB struct {
	*sqlx.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Dialect returns the SQL dialect of the connection ("postgres" or "sqlite").
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded goose migrations of the connection dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB.DB, db.dialect)
}
