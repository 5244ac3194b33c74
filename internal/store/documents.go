// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Collection names used by the repositories. Every per-user collection lives
// under users/{user_id}.
const (
	CollectionUsers           = "users"
	CollectionProfile         = "profile"
	CollectionDailyVitals     = "daily_vitals"
	CollectionDailyActivities = "daily_activities"
	CollectionSessions        = "sessions"
	CollectionAlerts          = "alerts"
	CollectionNutrition       = "nutrition"

	// profileDocumentID is the single document of the profile collection.
	profileDocumentID = "data"
)

// Collection is a slash separated collection path, e.g. "users/42/sessions".
type Collection string

// Doc returns the reference to document id inside the collection.
func (c Collection) Doc(id string) DocumentRef {
	return DocumentRef{Collection: c, ID: id}
}

// UsersCollection returns the top-level accounts collection.
func UsersCollection() Collection {
	return CollectionUsers
}

// UserCollection returns the sub-collection name of the given user.
func UserCollection(userID, name string) Collection {
	return Collection(CollectionUsers + "/" + userID + "/" + name)
}

// DocumentRef addresses a single document.
type DocumentRef struct {
	Collection Collection
	ID         string
}

// Path returns the full slash separated document path.
func (r DocumentRef) Path() string {
	return string(r.Collection) + "/" + r.ID
}

func (r DocumentRef) String() string {
	return r.Path()
}

// Document is a stored document: its id and its top-level fields.
//
// Numbers in Data are normalised to int64 when integral and float64
// otherwise, regardless of the backend the document was read from.
type Document struct {
	ID   string
	Data map[string]any
}

// Operator is a comparison supported by [Filter].
type Operator string

const (
	OpEqual          Operator = "=="
	OpGreaterOrEqual Operator = ">="
	OpLessOrEqual    Operator = "<="
)

// Direction is the sort direction of a [Query].
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Filter restricts a query to documents whose Field compares to Value.
type Filter struct {
	Field string
	Op    Operator
	Value any
}

// Query selects documents of a single collection.
//
// Limit <= 0 means no limit. An empty OrderBy leaves the order to the
// backend.
type Query struct {
	Collection Collection
	Filters    []Filter
	OrderBy    string
	Direction  Direction
	Limit      int
}

// Where appends a filter and returns the query for chaining.
func (q Query) Where(field string, op Operator, value any) Query {
	q.Filters = append(q.Filters, Filter{Field: field, Op: op, Value: value})
	return q
}

var fieldNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// validateField reports whether name can be embedded into a backend query.
func validateField(name string) error {
	if !fieldNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidField, name)
	}
	return nil
}

func validateQuery(q Query) error {
	if q.Collection == "" || strings.HasSuffix(string(q.Collection), "/") {
		return fmt.Errorf("%w: empty collection", ErrInvalidField)
	}
	for _, f := range q.Filters {
		if err := validateField(f.Field); err != nil {
			return err
		}
		switch f.Op {
		case OpEqual, OpGreaterOrEqual, OpLessOrEqual:
		default:
			return fmt.Errorf("%w: unsupported operator %q", ErrInvalidField, f.Op)
		}
	}
	if q.OrderBy != "" {
		return validateField(q.OrderBy)
	}
	return nil
}

// toFields converts a record into document fields using its JSON tags.
func toFields(record any) (map[string]any, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}
	fields, err := decodeFields(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}
	return fields, nil
}

// fromFields converts document fields into the record pointed to by dst.
func fromFields(fields map[string]any, dst any) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}
	if err = json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}
	return nil
}

// decodeFields parses a JSON object into normalised document fields.
func decodeFields(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	fields := map[string]any{}
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	for k, v := range fields {
		fields[k] = normalizeValue(v)
	}
	return fields, nil
}

func normalizeValue(v any) any {
	switch value := v.(type) {
	case json.Number:
		if i, err := value.Int64(); err == nil {
			return i
		}
		f, _ := value.Float64()
		return f
	case map[string]any:
		for k, inner := range value {
			value[k] = normalizeValue(inner)
		}
		return value
	case []any:
		for i, inner := range value {
			value[i] = normalizeValue(inner)
		}
		return value
	default:
		return v
	}
}
