// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Every violation is reported; the returned error joins them.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.SecretKey == "" {
		errs = append(errs, ErrEmptySecretKey)
	}

	switch strings.ToUpper(cfg.App.TokenAlgorithm) {
	case "HS256", "HS384", "HS512":
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnsupportedTokenAlgorithm, cfg.App.TokenAlgorithm))
	}

	if cfg.App.AccessTokenExpireMinutes <= 0 {
		errs = append(errs, ErrInvalidTokenExpiry)
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.Enabled() {
		switch cfg.Storage.DB.Dialect() {
		case DialectPostgres, DialectSQLite:
		default:
			errs = append(errs, fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
		}
	}

	return errors.Join(errs...)
}
