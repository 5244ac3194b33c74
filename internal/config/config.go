// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// HealthTrack API. It aggregates all sub-configurations and is populated by
// merging built-in defaults with values from environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application identity, debug mode and token settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the document store backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and CORS settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name is reported by the root endpoint.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Debug switches the logger to debug level.
	// Env: APP_DEBUG
	Debug bool `env:"DEBUG"`

	// SecretKey is the symmetric secret used to sign and verify access
	// tokens. Must be kept confidential.
	// Env: APP_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// TokenAlgorithm is the HMAC algorithm used for access tokens:
	// HS256, HS384 or HS512.
	// Env: APP_TOKEN_ALGORITHM
	TokenAlgorithm string `env:"TOKEN_ALGORITHM"`

	// AccessTokenExpireMinutes is the access token lifetime in minutes.
	// Env: APP_ACCESS_TOKEN_EXPIRE_MINUTES
	AccessTokenExpireMinutes int `env:"ACCESS_TOKEN_EXPIRE_MINUTES"`

	// TokenIssuer is the optional "iss" claim. When set, tokens issued by
	// another issuer are rejected.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// PasswordHashCost is the bcrypt cost factor.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`
}

// TokenDuration returns the access token lifetime.
func (a App) TokenDuration() time.Duration {
	return time.Duration(a.AccessTokenExpireMinutes) * time.Minute
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request. Zero disables the timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists the origins accepted by the CORS middleware.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Storage groups the configuration for the document store backends.
// Firebase takes precedence over DB; with neither configured the API runs
// in demo mode.
type Storage struct {
	// Firebase holds the Cloud Firestore connection settings.
	Firebase Firebase `envPrefix:"FIREBASE_"`

	// DB holds the SQL database connection settings.
	DB DB `envPrefix:"DB_"`
}

// Firebase holds the service-account settings for Cloud Firestore. Either
// CredentialsPath or the discrete key fields may be supplied.
type Firebase struct {
	// Env: STORAGE_FIREBASE_PROJECT_ID
	ProjectID string `env:"PROJECT_ID"`
	// Env: STORAGE_FIREBASE_CREDENTIALS_PATH
	CredentialsPath string `env:"CREDENTIALS_PATH"`
	// Env: STORAGE_FIREBASE_PRIVATE_KEY_ID
	PrivateKeyID string `env:"PRIVATE_KEY_ID"`
	// Env: STORAGE_FIREBASE_PRIVATE_KEY
	PrivateKey string `env:"PRIVATE_KEY"`
	// Env: STORAGE_FIREBASE_CLIENT_EMAIL
	ClientEmail string `env:"CLIENT_EMAIL"`
	// Env: STORAGE_FIREBASE_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`
	// Env: STORAGE_FIREBASE_AUTH_URI
	AuthURI string `env:"AUTH_URI"`
	// Env: STORAGE_FIREBASE_TOKEN_URI
	TokenURI string `env:"TOKEN_URI"`
}

// Enabled reports whether a Firestore backend is configured.
func (f Firebase) Enabled() bool {
	return f.ProjectID != "" || f.CredentialsPath != ""
}

// HasDiscreteCredentials reports whether the service account is given as
// individual fields rather than a credentials file.
func (f Firebase) HasDiscreteCredentials() bool {
	return f.PrivateKey != "" && f.ClientEmail != ""
}

// Supported SQL dialects.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// DB holds connection settings for the SQL document backend.
type DB struct {
	// DSN is the data source name: a PostgreSQL URL/keyword string or an
	// SQLite file path (e.g. "file:health.db?_foreign_keys=on").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver forces the dialect. When empty it is inferred from DSN.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Enabled reports whether a SQL backend is configured.
func (d DB) Enabled() bool {
	return d.DSN != ""
}

// Dialect returns the SQL dialect for the configured DSN.
func (d DB) Dialect() string {
	if d.Driver != "" {
		return strings.ToLower(d.Driver)
	}

	dsn := strings.ToLower(d.DSN)
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		return DialectPostgres
	}
	return DialectSQLite
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

const redacted = "[REDACTED]"

// Redacted returns a copy of the config with secrets masked, suitable for
// logging.
func (c StructuredConfig) Redacted() StructuredConfig {
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return redacted
	}

	c.App.SecretKey = mask(c.App.SecretKey)
	c.Storage.Firebase.PrivateKey = mask(c.Storage.Firebase.PrivateKey)
	c.Storage.Firebase.PrivateKeyID = mask(c.Storage.Firebase.PrivateKeyID)
	c.Storage.DB.DSN = mask(c.Storage.DB.DSN)
	return c
}
