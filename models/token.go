// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by an access token. The subject holds
// the user id; email and username are copied from the account at issue
// time.
type Claims struct {
	jwt.RegisteredClaims

	Email    string `json:"email"`
	Username string `json:"username"`
}

// Identity returns the account identity encoded in the claims.
func (c Claims) Identity() Identity {
	return Identity{
		UserID:   c.Subject,
		Email:    c.Email,
		Username: c.Username,
	}
}

// Token wraps a signed access token together with its claims.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims holds the parsed or issued claim set.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS form sent to the client.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
