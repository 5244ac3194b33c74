// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FieldError: the first violated rule, carrying the human-readable
//     message returned to API callers.
//
// Usage patterns:
//  1. Inject a Validator into services.
//  2. Call Validate with context, value, and optional field names to enforce rules.
//  3. Surface FieldError.Message to the caller as the validation detail.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields (JSON names).
	Validate(context.Context, any, ...string) error
}
