// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrEmptySecretKey indicates that no token signing secret was provided.
	ErrEmptySecretKey = errors.New("app secret key is required")
	// ErrUnsupportedTokenAlgorithm indicates an algorithm other than
	// HS256, HS384 or HS512.
	ErrUnsupportedTokenAlgorithm = errors.New("unsupported token algorithm")
	// ErrInvalidTokenExpiry indicates a non-positive token lifetime.
	ErrInvalidTokenExpiry = errors.New("access token expiry must be positive")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown SQL driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
