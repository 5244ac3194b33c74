// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDocumentNotFound is returned when a read or an update targets a
	// document path that does not exist in the backend.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrDuplicateDocument is returned when a write violates a uniqueness
	// constraint of the backend (e.g. a second account with the same email).
	ErrDuplicateDocument = errors.New("document already exists")

	// ErrNoUserWasFound is returned when a lookup expected to match an
	// account produces no result.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProfileNotFound is returned when the user has no stored profile yet.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrInvalidField is returned when a query names a field that cannot be
	// addressed safely inside a document.
	ErrInvalidField = errors.New("invalid document field name")

	// ErrDecodingDocument is returned when stored document fields cannot be
	// converted into the requested record type.
	ErrDecodingDocument = errors.New("error decoding document")

	// ErrEncodingDocument is returned when a record cannot be converted into
	// document fields.
	ErrEncodingDocument = errors.New("error encoding document")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL document store when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single document row fails.
	ErrScanningRow = errors.New("failed to scan document row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan document rows")

	// ErrUnsupportedDialect is returned when the SQL backend is asked to
	// work with a database it has no dialect for.
	ErrUnsupportedDialect = errors.New("unsupported sql dialect")
)
