// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/Tarekazabou/health-app/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenSettings() TokenSettings {
	return TokenSettings{
		Algorithm: "HS256",
		SignKey:   "secret-key",
		Duration:  time.Hour,
	}
}

var testIdentity = models.Identity{UserID: "user-123", Email: "a@b.co", Username: "alice"}

func TestGenerateJWTToken_Success(t *testing.T) {
	now := time.Now()

	token, err := GenerateJWTToken(testTokenSettings(), testIdentity, now)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, token.SignedString, token.String())
	assert.Equal(t, "user-123", token.Claims.Subject)
	assert.Equal(t, "a@b.co", token.Claims.Email)
	assert.Equal(t, "alice", token.Claims.Username)
	assert.Equal(t, now.Add(time.Hour).Unix(), token.Claims.ExpiresAt.Unix())
	assert.Empty(t, token.Claims.Issuer)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		settings TokenSettings
		identity models.Identity
		wantErr  error
	}{
		{"empty key", TokenSettings{Algorithm: "HS256", Duration: time.Hour}, testIdentity, ErrInvalidTokenParams},
		{"zero duration", TokenSettings{Algorithm: "HS256", SignKey: "k"}, testIdentity, ErrInvalidTokenParams},
		{"empty subject", testTokenSettings(), models.Identity{}, ErrInvalidTokenParams},
		{"rsa algorithm", TokenSettings{Algorithm: "RS256", SignKey: "k", Duration: time.Hour}, testIdentity, ErrUnsupportedAlgorithm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.settings, tt.identity, time.Now())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		t.Run(alg, func(t *testing.T) {
			settings := testTokenSettings()
			settings.Algorithm = alg
			settings.Issuer = "healthtrack"

			issued, err := GenerateJWTToken(settings, testIdentity, time.Now())
			require.NoError(t, err)

			parsed, err := ValidateAndParseJWTToken(issued.SignedString, settings)
			require.NoError(t, err)
			assert.Equal(t, testIdentity, parsed.Claims.Identity())
			assert.Equal(t, "healthtrack", parsed.Claims.Issuer)
		})
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	settings := testTokenSettings()

	issued, err := GenerateJWTToken(settings, testIdentity, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, settings)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	settings := testTokenSettings()
	issued, err := GenerateJWTToken(settings, testIdentity, time.Now())
	require.NoError(t, err)

	t.Run("wrong key", func(t *testing.T) {
		other := settings
		other.SignKey = "another-key"
		_, err := ValidateAndParseJWTToken(issued.SignedString, other)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("algorithm mismatch", func(t *testing.T) {
		other := settings
		other.Algorithm = "HS512"
		_, err := ValidateAndParseJWTToken(issued.SignedString, other)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("issuer required", func(t *testing.T) {
		other := settings
		other.Issuer = "someone-else"
		_, err := ValidateAndParseJWTToken(issued.SignedString, other)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(issued.SignedString+"x", settings)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken("not-a-token", settings)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc", "abc", false},
		{"bearer abc", "abc", false},
		{"  Bearer   abc  ", "abc", false},
		{"Basic abc", "", true},
		{"Bearer", "", true},
		{"Bearer ", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
