// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is a single workout stored at users/{id}/sessions/{session_id}.
// Sessions are created once and never updated.
type Session struct {
	ID              string   `json:"id"`
	UserID          string   `json:"user_id"`
	SessionType     string   `json:"session_type"`
	StartTime       int64    `json:"start_time"`
	EndTime         int64    `json:"end_time"`
	DurationSeconds int64    `json:"duration_seconds"`
	AvgHeartRate    *int     `json:"avg_heart_rate"`
	MaxHeartRate    *int     `json:"max_heart_rate"`
	CaloriesBurned  *int     `json:"calories_burned"`
	AvgSpO2         *int     `json:"avg_spo2"`
	DistanceKm      *float64 `json:"distance_km"`
	Steps           *int     `json:"steps"`
	Notes           *string  `json:"notes"`
}

// CreateSessionRequest is the body of POST /sessions.
type CreateSessionRequest struct {
	SessionType     string   `json:"session_type" validate:"required"`
	StartTime       *int64   `json:"start_time" validate:"required"`
	EndTime         *int64   `json:"end_time" validate:"required"`
	DurationSeconds *int64   `json:"duration_seconds" validate:"required"`
	AvgHeartRate    *int     `json:"avg_heart_rate"`
	MaxHeartRate    *int     `json:"max_heart_rate"`
	CaloriesBurned  *int     `json:"calories_burned"`
	AvgSpO2         *int     `json:"avg_spo2"`
	DistanceKm      *float64 `json:"distance_km"`
	Steps           *int     `json:"steps"`
	Notes           *string  `json:"notes"`
}

// Session builds the record owned by userID from a validated request.
func (r CreateSessionRequest) Session(userID string) Session {
	return Session{
		UserID:          userID,
		SessionType:     r.SessionType,
		StartTime:       *r.StartTime,
		EndTime:         *r.EndTime,
		DurationSeconds: *r.DurationSeconds,
		AvgHeartRate:    r.AvgHeartRate,
		MaxHeartRate:    r.MaxHeartRate,
		CaloriesBurned:  r.CaloriesBurned,
		AvgSpO2:         r.AvgSpO2,
		DistanceKm:      r.DistanceKm,
		Steps:           r.Steps,
		Notes:           r.Notes,
	}
}

// SessionsResponse is the body of GET /sessions.
type SessionsResponse struct {
	Sessions []Session `json:"sessions"`
	Total    int       `json:"total"`
}
