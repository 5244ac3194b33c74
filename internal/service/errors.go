// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/Tarekazabou/health-app/internal/validators"
)

// Error kinds. Every error returned by a service matches exactly one of them
// with [errors.Is]; the HTTP layer maps kinds to status codes.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrInternal     = errors.New("internal error")
)

var (
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
)

// Error is a service failure carrying the message that is safe to show to
// the client.
type Error struct {
	// Kind is one of the error kinds above.
	Kind error

	// Message is the client-facing description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// Message returns the client-facing message of err, or an empty string if
// err did not originate in a service.
func Message(err error) string {
	var serviceErr *Error
	if errors.As(err, &serviceErr) {
		return serviceErr.Message
	}
	return ""
}

func newError(kind error, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// validationError converts a validator failure into a service error. Field
// errors keep their message; anything else is reported verbatim.
func validationError(err error) *Error {
	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return newError(ErrValidation, fieldErr.Message, err)
	}
	return newError(ErrValidation, err.Error(), err)
}

// internalError reports an unexpected failure as "<action>: <cause>".
func internalError(action string, err error) *Error {
	return newError(ErrInternal, fmt.Sprintf("%s: %v", action, err), err)
}
