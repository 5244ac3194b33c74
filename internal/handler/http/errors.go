// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidRequestBody is returned when the body is missing or is not
	// valid JSON for the target type.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrInvalidQueryParameter is returned for query parameters that cannot
	// be parsed.
	ErrInvalidQueryParameter = errors.New("invalid query parameter")

	// ErrMissingIdentity means an authenticated route was reached without an
	// identity in the request context.
	ErrMissingIdentity = errors.New("no authenticated identity in context")
)
