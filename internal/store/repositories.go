// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"
)

// Clock returns the current time. Repositories stamp server-side timestamps
// with it.
type Clock func() time.Time

// isoTimestamp formats t as the ISO-8601 UTC timestamp stored in documents.
func isoTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// decodeDocuments converts every document into T, letting fill complete the
// fields that are implied by the document path.
func decodeDocuments[T any](docs []Document, fill func(doc Document, record *T)) ([]T, error) {
	records := make([]T, 0, len(docs))
	for _, doc := range docs {
		var record T
		if err := fromFields(doc.Data, &record); err != nil {
			return nil, err
		}
		if fill != nil {
			fill(doc, &record)
		}
		records = append(records, record)
	}
	return records, nil
}
