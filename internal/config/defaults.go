// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "golang.org/x/crypto/bcrypt"

// Default values applied before any other source.
const (
	DefaultAppName                  = "HealthTrack API"
	DefaultAppVersion               = "1.0.0"
	DefaultTokenAlgorithm           = "HS256"
	DefaultAccessTokenExpireMinutes = 60 * 24 * 7
	DefaultHTTPAddress              = "0.0.0.0:8000"
	DefaultFirebaseAuthURI          = "https://accounts.google.com/o/oauth2/auth"
	DefaultFirebaseTokenURI         = "https://oauth2.googleapis.com/token"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:                     DefaultAppName,
			Version:                  DefaultAppVersion,
			TokenAlgorithm:           DefaultTokenAlgorithm,
			AccessTokenExpireMinutes: DefaultAccessTokenExpireMinutes,
			PasswordHashCost:         bcrypt.DefaultCost,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			AllowedOrigins: []string{"*"},
		},
		Storage: Storage{
			Firebase: Firebase{
				AuthURI:  DefaultFirebaseAuthURI,
				TokenURI: DefaultFirebaseTokenURI,
			},
		},
	}
}
