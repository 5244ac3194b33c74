// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// HealthTrack services, handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording throughout the API.
package app

// Validation messages.
const (
	// MsgInvalidEmailFormat is returned when the signup email does not match
	// the accepted address pattern.
	MsgInvalidEmailFormat = "Invalid email format"

	// MsgPasswordTooShort and the following password messages name the first
	// strength rule a signup password violates.
	MsgPasswordTooShort    = "Password must be at least 8 characters long"
	MsgPasswordNoUppercase = "Password must contain at least one uppercase letter"
	MsgPasswordNoLowercase = "Password must contain at least one lowercase letter"
	MsgPasswordNoDigit     = "Password must contain at least one number"

	// MsgNoFieldsToUpdate is returned for an empty profile update payload.
	MsgNoFieldsToUpdate = "No fields to update"

	// MsgInvalidRequestBody is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidRequestBody = "Invalid request body"
)

// Authentication messages.
const (
	// MsgEmailAlreadyRegistered is returned by signup for a taken email.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgInvalidEmailOrPassword is returned by login for an unknown email
	// and for a wrong password alike.
	MsgInvalidEmailOrPassword = "Invalid email or password"

	// MsgInvalidCredentials is returned when a bearer token is missing,
	// malformed, expired or carries a bad signature.
	MsgInvalidCredentials = "Invalid authentication credentials"
)

// Not-found messages.
const (
	MsgUserNotFound     = "User not found"
	MsgAlertNotFound    = "Alert not found"
	MsgNoVitalsForDate  = "No vitals found for %s"
	MsgResourceNotFound = "Resource not found"
	MsgMethodNotAllowed = "Method not allowed"
)

// Success messages.
const (
	MsgLoggedOut            = "Logged out successfully. Remove token from client storage."
	MsgProfileUpdated       = "Profile updated successfully"
	MsgVitalsSynced         = "Vitals for %s synced successfully"
	MsgActivitySynced       = "Activity for %s synced successfully"
	MsgSessionCreated       = "Session created successfully"
	MsgAlertCreated         = "Alert created successfully"
	MsgAlertAcknowledged    = "Alert acknowledged"
	MsgNutritionEntryLogged = "Nutrition entry logged successfully"
)

// Food analysis stub payload.
const (
	MsgFoodAnalysisComingSoon = "AI food analysis coming soon!"
	MsgFoodAnalysisNote       = "This endpoint will integrate with Gen AI backend in the future"
)
