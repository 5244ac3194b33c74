// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Tarekazabou/health-app/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned when a token cannot be trusted: bad
	// signature, unexpected algorithm, expired or malformed claims.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidTokenParams is returned when token settings are incomplete.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

	// ErrUnsupportedAlgorithm is returned for signing algorithms other than
	// HS256, HS384 and HS512.
	ErrUnsupportedAlgorithm = errors.New("unsupported token algorithm")
)

// TokenSettings describes how access tokens are signed and verified.
type TokenSettings struct {
	// Algorithm is one of HS256, HS384, HS512.
	Algorithm string

	// SignKey is the symmetric server secret.
	SignKey string

	// Duration is the token lifetime.
	Duration time.Duration

	// Issuer is optional. When set it is written to "iss" and required
	// on verification.
	Issuer string
}

// SigningMethod resolves a configured algorithm name to its HMAC signing method.
func SigningMethod(algorithm string) (jwt.SigningMethod, error) {
	switch strings.ToUpper(algorithm) {
	case jwt.SigningMethodHS256.Alg():
		return jwt.SigningMethodHS256, nil
	case jwt.SigningMethodHS384.Alg():
		return jwt.SigningMethodHS384, nil
	case jwt.SigningMethodHS512.Alg():
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
}

// GenerateJWTToken creates a signed access token for the given identity.
//
// The token includes the following claims:
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus settings.Duration
//   - Issuer    (iss): settings.Issuer, when configured
//   - email, username: copied from the identity
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(settings, user.Identity(), time.Now())
func GenerateJWTToken(settings TokenSettings, identity models.Identity, now time.Time) (models.Token, error) {
	if settings.SignKey == "" || settings.Duration <= 0 || identity.UserID == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	method, err := SigningMethod(settings.Algorithm)
	if err != nil {
		return models.Token{}, err
	}

	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    settings.Issuer,
			Subject:   identity.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(settings.Duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email:    identity.Email,
		Username: identity.Username,
	}

	token := jwt.NewWithClaims(method, claims)
	tokenString, err := token.SignedString([]byte(settings.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies the signature, algorithm, expiry and
// (when configured) issuer of tokenString and returns its claims.
//
// Every failure is reported as [ErrInvalidToken] wrapping the cause, so
// callers only need a single errors.Is check to treat the request as
// unauthenticated.
func ValidateAndParseJWTToken(tokenString string, settings TokenSettings) (models.Token, error) {
	method, err := SigningMethod(settings.Algorithm)
	if err != nil {
		return models.Token{}, err
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if settings.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(settings.Issuer))
	}

	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(settings.SignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	return models.Token{Token: token, Claims: *claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", errors.New("invalid authorization header")
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", errors.New("empty bearer token")
	}
	return token, nil
}
