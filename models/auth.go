// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Email    string `json:"email" validate:"email_format"`
	Password string `json:"password" validate:"password_strength"`
	Username string `json:"username" validate:"required"`
	FullName string `json:"full_name"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenTypeBearer is the only token type issued by the API.
const TokenTypeBearer = "bearer"

// TokenResponse is returned by signup and login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
}

// NewTokenResponse builds the response for an issued token.
func NewTokenResponse(token Token, identity Identity) TokenResponse {
	return TokenResponse{
		AccessToken: token.String(),
		TokenType:   TokenTypeBearer,
		UserID:      identity.UserID,
		Email:       identity.Email,
		Username:    identity.Username,
	}
}
