// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidField     = errors.New("field value is invalid")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrWeakPassword     = errors.New("weak password")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)

// FieldError describes the first validation rule a value violates.
// Error returns Message verbatim so it can be shown to API callers.
type FieldError struct {
	// Field is the JSON name of the offending field, empty for whole-value
	// rules.
	Field string

	// Message is the human-readable description of the violated rule.
	Message string

	err error
}

func newFieldError(field, message string, err error) *FieldError {
	return &FieldError{Field: field, Message: message, err: err}
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Unwrap() error {
	return e.err
}
