// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account record stored in the top-level "users"
// collection. PasswordHash never leaves the server: it is excluded from
// every response shape.
type User struct {
	// ID is the store-generated document identifier.
	ID string `json:"id"`

	// Email is unique across all accounts and used as the login identifier.
	Email string `json:"email"`

	// Username is the public handle chosen at signup.
	Username string `json:"username"`

	// FullName is the display name of the user.
	FullName string `json:"full_name"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"password_hash"`

	// CreatedAt is an ISO-8601 timestamp stamped by the server at signup.
	CreatedAt string `json:"created_at"`

	// LastLogin is an ISO-8601 timestamp stamped by the server on every
	// successful login. Empty until the first login.
	LastLogin string `json:"last_login,omitempty"`

	// UpdatedAt is stamped whenever the account record is mutated.
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Identity is the minimal view of an account returned by signup and login
// and carried by the bearer token.
type Identity struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Identity returns the minimal identity of the user.
func (u User) Identity() Identity {
	return Identity{
		UserID:   u.ID,
		Email:    u.Email,
		Username: u.Username,
	}
}

// UserInfo is the response of GET /users/me.
type UserInfo struct {
	UserID    string  `json:"user_id"`
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	FullName  string  `json:"full_name"`
	CreatedAt *string `json:"created_at"`
	LastLogin *string `json:"last_login"`
}

// Info converts the account record to its public representation.
func (u User) Info() UserInfo {
	return UserInfo{
		UserID:    u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FullName:  u.FullName,
		CreatedAt: optionalString(u.CreatedAt),
		LastLogin: optionalString(u.LastLogin),
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
