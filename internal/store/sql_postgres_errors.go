// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassificator maps driver specific errors to an [ErrorClassification]
// so the SQL document store can translate them into store sentinel errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// Unknown is the default classification for unrecognised errors.
	Unknown ErrorClassification = iota

	// Duplicate indicates a uniqueness constraint violation.
	Duplicate

	// Unavailable indicates the database could not serve the request
	// (lost connection, locked database, server shutting down).
	Unavailable
)

// ErrDatabaseUnavailable is returned when the database cannot serve requests.
var ErrDatabaseUnavailable = errors.New("database is unavailable")

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, [Unknown] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unknown
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Unknown
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 23: unique_violation
	case pgerrcode.UniqueViolation:
		return Duplicate

	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection:
		return Unavailable

	// Class 57: operator intervention
	case pgerrcode.CannotConnectNow,
		pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown:
		return Unavailable
	}

	return Unknown
}

// classifyError wraps err with the store sentinel matching its
// classification, falling back to wrapping it with fallback.
func classifyError(c ErrorClassificator, fallback, err error) error {
	if c != nil {
		switch c.Classify(err) {
		case Duplicate:
			return fmt.Errorf("%w: %w", ErrDuplicateDocument, err)
		case Unavailable:
			return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
		}
	}
	return fmt.Errorf("%w: %w", fallback, err)
}
