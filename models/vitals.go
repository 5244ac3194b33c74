// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VitalReading is a single time-series sample captured by the wearable.
type VitalReading struct {
	Timestamp     int64    `json:"timestamp"`
	HeartRate     *int     `json:"heart_rate"`
	SpO2          *int     `json:"spo2"`
	Temperature   *float64 `json:"temperature"`
	AccelX        *float64 `json:"accel_x"`
	AccelY        *float64 `json:"accel_y"`
	AccelZ        *float64 `json:"accel_z"`
	GyroX         *float64 `json:"gyro_x"`
	GyroY         *float64 `json:"gyro_y"`
	GyroZ         *float64 `json:"gyro_z"`
	Battery       *int     `json:"battery"`
	ActivityState *string  `json:"activity_state"`
}

// VitalsSummary holds the day aggregates computed on the client.
// WellnessScore is opaque to the server.
type VitalsSummary struct {
	AvgHeartRate   *float64 `json:"avg_heart_rate"`
	MaxHeartRate   *int     `json:"max_heart_rate"`
	MinHeartRate   *int     `json:"min_heart_rate"`
	AvgSpO2        *float64 `json:"avg_spo2"`
	AvgTemperature *float64 `json:"avg_temperature"`
	Steps          int      `json:"steps"`
	Calories       int      `json:"calories"`
	DistanceKm     float64  `json:"distance_km"`
	ActiveMinutes  int      `json:"active_minutes"`
	WellnessScore  *int     `json:"wellness_score"`
}

// DailyVitals is the document stored at users/{id}/daily_vitals/{date}.
// A resync of the same date replaces the document entirely.
type DailyVitals struct {
	UserID   string         `json:"user_id"`
	Date     string         `json:"date"`
	Readings []VitalReading `json:"readings"`
	Summary  VitalsSummary  `json:"summary"`
	SyncedAt *string        `json:"synced_at"`
}

// SyncVitalsRequest is the body of POST /vitals/sync.
type SyncVitalsRequest struct {
	Date     string         `json:"date" validate:"required"`
	Readings []VitalReading `json:"readings" validate:"required"`
	Summary  *VitalsSummary `json:"summary" validate:"required"`
}

// VitalsRangeResponse is the body of GET /vitals/historical.
type VitalsRangeResponse struct {
	Data      []DailyVitals `json:"data"`
	Days      int           `json:"days"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
}
