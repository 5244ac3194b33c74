// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// flatEnv holds the unprefixed variable names used by existing .env files
// (SECRET_KEY, ALGORITHM, FIREBASE_PROJECT_ID, ...). They only fill values
// the prefixed names leave unset.
type flatEnv struct {
	Version                  string   `env:"VERSION"`
	Debug                    bool     `env:"DEBUG"`
	SecretKey                string   `env:"SECRET_KEY"`
	Algorithm                string   `env:"ALGORITHM"`
	AccessTokenExpireMinutes int      `env:"ACCESS_TOKEN_EXPIRE_MINUTES"`
	AllowedOrigins           []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	Firebase                 Firebase `envPrefix:"FIREBASE_"`
}

func (f flatEnv) structured() StructuredConfig {
	return StructuredConfig{
		App: App{
			Version:                  f.Version,
			Debug:                    f.Debug,
			SecretKey:                f.SecretKey,
			TokenAlgorithm:           f.Algorithm,
			AccessTokenExpireMinutes: f.AccessTokenExpireMinutes,
		},
		Server:  Server{AllowedOrigins: f.AllowedOrigins},
		Storage: Storage{Firebase: f.Firebase},
	}
}

// parseEnv populates cfg from the APP_, SERVER_ and STORAGE_ variables, then
// fills the remaining gaps from the flat names.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	var flat flatEnv
	if err := env.Parse(&flat); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if err := mergo.Merge(cfg, flat.structured()); err != nil {
		return fmt.Errorf("error merging flat env configs: %w", err)
	}
	return nil
}
