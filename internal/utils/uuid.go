// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// NewDocumentID returns a UUIDv7 for a new stored record. Ids issued by one
// process increase monotonically, so a collection keyed by them lists in
// insertion order. Falls back to a random UUIDv4 if the clock source fails.
func NewDocumentID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
