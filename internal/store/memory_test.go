// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// memoryDocumentStore is an in-memory DocumentStore used by repository tests.
// Fields are round-tripped through toFields so stored values have the same
// types as the real backends.
type memoryDocumentStore struct {
	mu   sync.Mutex
	seq  int
	docs map[Collection]map[string]map[string]any
}

func newMemoryDocumentStore() *memoryDocumentStore {
	return &memoryDocumentStore{docs: map[Collection]map[string]map[string]any{}}
}

func (m *memoryDocumentStore) NewID(Collection) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	return fmt.Sprintf("id-%d", m.seq)
}

func (m *memoryDocumentStore) Get(_ context.Context, ref DocumentRef) (Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	fields, ok := m.docs[ref.Collection][ref.ID]
	if !ok {
		return Document{}, ErrDocumentNotFound
	}
	return Document{ID: ref.ID, Data: copyFields(fields)}, nil
}

func (m *memoryDocumentStore) Set(_ context.Context, ref DocumentRef, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.docs[ref.Collection] == nil {
		m.docs[ref.Collection] = map[string]map[string]any{}
	}
	m.docs[ref.Collection][ref.ID] = normalized(fields)
	return nil
}

func (m *memoryDocumentStore) Merge(_ context.Context, ref DocumentRef, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.docs[ref.Collection] == nil {
		m.docs[ref.Collection] = map[string]map[string]any{}
	}
	existing := m.docs[ref.Collection][ref.ID]
	if existing == nil {
		existing = map[string]any{}
	}
	for k, v := range normalized(fields) {
		existing[k] = v
	}
	m.docs[ref.Collection][ref.ID] = existing
	return nil
}

func (m *memoryDocumentStore) Update(_ context.Context, ref DocumentRef, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.docs[ref.Collection][ref.ID]
	if !ok {
		return ErrDocumentNotFound
	}
	for k, v := range normalized(fields) {
		existing[k] = v
	}
	return nil
}

func (m *memoryDocumentStore) Query(_ context.Context, q Query) ([]Document, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]Document, 0)
	for id, fields := range m.docs[q.Collection] {
		if matches(fields, q.Filters) {
			result = append(result, Document{ID: id, Data: copyFields(fields)})
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if q.OrderBy == "" {
			return result[i].ID < result[j].ID
		}
		c := compareValues(result[i].Data[q.OrderBy], result[j].Data[q.OrderBy])
		if q.Direction == Descending {
			return c > 0
		}
		return c < 0
	})

	if q.Limit > 0 && len(result) > q.Limit {
		result = result[:q.Limit]
	}
	return result, nil
}

func (m *memoryDocumentStore) Close() error {
	return nil
}

func (m *memoryDocumentStore) raw(ref DocumentRef) map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.docs[ref.Collection][ref.ID]
}

func matches(fields map[string]any, filters []Filter) bool {
	for _, f := range filters {
		value, ok := fields[f.Field]
		if !ok {
			return false
		}
		c := compareValues(value, normalizeValue(f.Value))
		switch f.Op {
		case OpEqual:
			if c != 0 {
				return false
			}
		case OpGreaterOrEqual:
			if c < 0 {
				return false
			}
		case OpLessOrEqual:
			if c > 0 {
				return false
			}
		}
	}
	return true
}

func compareValues(a, b any) int {
	if af, ok := asFloat(a); ok {
		if bf, ok := asFloat(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			}
			return 0
		}
	}
	as, bs := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	}
	return 0
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func normalized(fields map[string]any) map[string]any {
	out, err := toFields(fields)
	if err != nil {
		panic(err)
	}
	return out
}

func copyFields(fields map[string]any) map[string]any {
	return normalized(fields)
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
