// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/Tarekazabou/health-app/internal/config"
	"github.com/Tarekazabou/health-app/internal/logger"
	"github.com/Tarekazabou/health-app/internal/utils"
)

const documentsTable = "documents"

// documentRow is a single row of the documents table.
type documentRow struct {
	ID   string `db:"id"`
	Data []byte `db:"data"`
}

// sqlDialect holds the JSON expressions that differ between PostgreSQL JSONB
// and SQLite JSON1.
type sqlDialect struct {
	placeholder sq.PlaceholderFormat

	// jsonValue wraps the bound JSON text parameter.
	jsonValue string

	textField    func(field string) string
	numericField func(field string) string

	// mergeOnConflict merges excluded.data into the stored row inside
	// ON CONFLICT DO UPDATE.
	mergeOnConflict string

	// mergeExisting merges the bound JSON parameter into the data column.
	mergeExisting string
}

var postgresDialect = sqlDialect{
	placeholder: sq.Dollar,
	jsonValue:   "?::jsonb",
	textField: func(field string) string {
		return "data->>'" + field + "'"
	},
	numericField: func(field string) string {
		return "(data->>'" + field + "')::numeric"
	},
	mergeOnConflict: "documents.data || excluded.data",
	mergeExisting:   "data || ?::jsonb",
}

var sqliteDialect = sqlDialect{
	placeholder: sq.Question,
	jsonValue:   "json(?)",
	textField: func(field string) string {
		return "json_extract(data, '$." + field + "')"
	},
	numericField: func(field string) string {
		return "json_extract(data, '$." + field + "')"
	},
	mergeOnConflict: "json_patch(documents.data, excluded.data)",
	mergeExisting:   "json_patch(data, json(?))",
}

// field returns the expression addressing a top-level document field. The
// numeric form is used when the compared value is a number.
func (d sqlDialect) field(name string, sample any) string {
	switch sample.(type) {
	case int, int32, int64, float32, float64:
		return d.numericField(name)
	default:
		return d.textField(name)
	}
}

// SQLDocumentStore implements [DocumentStore] on top of a single
// "documents" table holding one JSON object per document path.
type SQLDocumentStore struct {
	db      *DB
	dialect sqlDialect
	builder sq.StatementBuilderType
	newID   func() string
	now     func() time.Time
}

// NewSQLDocumentStore constructs a document store over db.
func NewSQLDocumentStore(db *DB) (*SQLDocumentStore, error) {
	var dialect sqlDialect
	switch db.Dialect() {
	case config.DialectPostgres:
		dialect = postgresDialect
	case config.DialectSQLite:
		dialect = sqliteDialect
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, db.Dialect())
	}

	return &SQLDocumentStore{
		db:      db,
		dialect: dialect,
		builder: sq.StatementBuilder.PlaceholderFormat(dialect.placeholder),
		newID:   utils.NewDocumentID,
		now:     time.Now,
	}, nil
}

// NewID returns a UUIDv7. Identifiers are unique across collections.
func (s *SQLDocumentStore) NewID(Collection) string {
	return s.newID()
}

func (s *SQLDocumentStore) Get(ctx context.Context, ref DocumentRef) (Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Select("id", "data").
		From(documentsTable).
		Where(sq.Eq{"collection": string(ref.Collection)}).
		Where(sq.Eq{"id": ref.ID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*SQLDocumentStore.Get").Msg("error building query")
		return Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row documentRow
	if err = s.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrDocumentNotFound
		}
		log.Err(err).Str("func", "*SQLDocumentStore.Get").Str("path", ref.Path()).Msg("error executing query")
		return Document{}, classifyError(s.db.errorClassificator, ErrExecutingQuery, err)
	}

	return row.document()
}

func (s *SQLDocumentStore) Set(ctx context.Context, ref DocumentRef, fields map[string]any) error {
	return s.upsert(ctx, "*SQLDocumentStore.Set", ref, fields,
		"ON CONFLICT (collection, id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at")
}

func (s *SQLDocumentStore) Merge(ctx context.Context, ref DocumentRef, fields map[string]any) error {
	return s.upsert(ctx, "*SQLDocumentStore.Merge", ref, fields,
		"ON CONFLICT (collection, id) DO UPDATE SET data = "+s.dialect.mergeOnConflict+", updated_at = excluded.updated_at")
}

func (s *SQLDocumentStore) upsert(ctx context.Context, funcName string, ref DocumentRef, fields map[string]any, onConflict string) error {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query, args, err := s.builder.
		Insert(documentsTable).
		Columns("collection", "id", "data", "updated_at").
		Values(string(ref.Collection), ref.ID, sq.Expr(s.dialect.jsonValue, string(data)), s.now().UTC()).
		Suffix(onConflict).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", funcName).Str("path", ref.Path()).Msg("error executing statement")
		return classifyError(s.db.errorClassificator, ErrExecutingStatement, err)
	}

	return nil
}

func (s *SQLDocumentStore) Update(ctx context.Context, ref DocumentRef, fields map[string]any) error {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query, args, err := s.builder.
		Update(documentsTable).
		Set("data", sq.Expr(s.dialect.mergeExisting, string(data))).
		Set("updated_at", s.now().UTC()).
		Where(sq.Eq{"collection": string(ref.Collection)}).
		Where(sq.Eq{"id": ref.ID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*SQLDocumentStore.Update").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*SQLDocumentStore.Update").Str("path", ref.Path()).Msg("error executing statement")
		return classifyError(s.db.errorClassificator, ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}

	return nil
}

func (s *SQLDocumentStore) Query(ctx context.Context, q Query) ([]Document, error) {
	log := logger.FromContext(ctx)

	if err := validateQuery(q); err != nil {
		return nil, err
	}

	builder := s.builder.
		Select("id", "data").
		From(documentsTable).
		Where(sq.Eq{"collection": string(q.Collection)})

	for _, f := range q.Filters {
		builder = builder.Where(s.dialect.field(f.Field, f.Value)+" "+sqlOperator(f.Op)+" ?", f.Value)
	}

	if q.OrderBy != "" {
		order := s.dialect.field(q.OrderBy, orderSample(q)) + " ASC"
		if q.Direction == Descending {
			order = s.dialect.field(q.OrderBy, orderSample(q)) + " DESC"
		}
		builder = builder.OrderBy(order)
	}

	if q.Limit > 0 {
		builder = builder.Limit(uint64(q.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*SQLDocumentStore.Query").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows []documentRow
	if err = s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		log.Err(err).Str("func", "*SQLDocumentStore.Query").Str("collection", string(q.Collection)).Msg("error executing query")
		return nil, classifyError(s.db.errorClassificator, ErrExecutingQuery, err)
	}

	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		doc, err := row.document()
		if err != nil {
			log.Err(err).Str("func", "*SQLDocumentStore.Query").Str("id", row.ID).Msg("error decoding document")
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

func (s *SQLDocumentStore) Close() error {
	return s.db.Close()
}

func (r documentRow) document() (Document, error) {
	fields, err := decodeFields(r.Data)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return Document{ID: r.ID, Data: fields}, nil
}

func sqlOperator(op Operator) string {
	if op == OpEqual {
		return "="
	}
	return string(op)
}

// orderSample returns the value of a filter on the ordering field so the
// ordering uses the same expression type as the comparison.
func orderSample(q Query) any {
	for _, f := range q.Filters {
		if f.Field == q.OrderBy {
			return f.Value
		}
	}
	return nil
}
