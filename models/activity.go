// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HourlyActivity is one bucket of the daily breakdown. Hour is expected to
// be in 0..23; the range is a convention and is not enforced.
type HourlyActivity struct {
	Hour          int     `json:"hour"`
	Steps         int     `json:"steps"`
	Calories      int     `json:"calories"`
	DistanceKm    float64 `json:"distance_km"`
	ActiveMinutes int     `json:"active_minutes"`
}

// DailyActivity is the document stored at users/{id}/daily_activities/{date}.
type DailyActivity struct {
	UserID          string           `json:"user_id"`
	Date            string           `json:"date"`
	Steps           int              `json:"steps"`
	DistanceKm      float64          `json:"distance_km"`
	ActiveMinutes   int              `json:"active_minutes"`
	CaloriesBurned  int              `json:"calories_burned"`
	HourlyBreakdown []HourlyActivity `json:"hourly_breakdown"`
	SyncedAt        *string          `json:"synced_at"`
}

// SyncActivityRequest is the body of POST /activities/sync.
type SyncActivityRequest struct {
	Date            string           `json:"date" validate:"required"`
	Steps           *int             `json:"steps" validate:"required"`
	DistanceKm      *float64         `json:"distance_km" validate:"required"`
	ActiveMinutes   *int             `json:"active_minutes" validate:"required"`
	CaloriesBurned  *int             `json:"calories_burned" validate:"required"`
	HourlyBreakdown []HourlyActivity `json:"hourly_breakdown"`
}

// DailyActivity builds the day document owned by userID from a validated
// request.
func (r SyncActivityRequest) DailyActivity(userID string) DailyActivity {
	return DailyActivity{
		UserID:          userID,
		Date:            r.Date,
		Steps:           *r.Steps,
		DistanceKm:      *r.DistanceKm,
		ActiveMinutes:   *r.ActiveMinutes,
		CaloriesBurned:  *r.CaloriesBurned,
		HourlyBreakdown: r.HourlyBreakdown,
	}
}

// ActivityRangeResponse is the body of GET /activities/historical.
type ActivityRangeResponse struct {
	Data      []DailyActivity `json:"data"`
	Days      int             `json:"days"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
}
