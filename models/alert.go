// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Alert severities reported by the client. The set is informational and
// not enforced on input.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// Alert is a health alert stored at users/{id}/alerts/{alert_id}. The only
// mutation after creation is acknowledgement.
type Alert struct {
	ID             string   `json:"id"`
	UserID         string   `json:"user_id"`
	Timestamp      int64    `json:"timestamp"`
	Severity       string   `json:"severity" validate:"required"`
	VitalType      string   `json:"vital_type" validate:"required"`
	Message        string   `json:"message" validate:"required"`
	Recommendation *string  `json:"recommendation"`
	VitalValue     *float64 `json:"vital_value"`
	Acknowledged   bool     `json:"acknowledged"`
	AcknowledgedAt *int64   `json:"acknowledged_at"`
}

// CreateAlertRequest is the body of POST /alerts. Pointer fields tell an
// absent value from an explicit zero.
type CreateAlertRequest struct {
	Timestamp      *int64   `json:"timestamp" validate:"required"`
	Severity       string   `json:"severity" validate:"required"`
	VitalType      string   `json:"vital_type" validate:"required"`
	Message        string   `json:"message" validate:"required"`
	Recommendation *string  `json:"recommendation"`
	VitalValue     *float64 `json:"vital_value"`
}

// Alert builds the unacknowledged alert owned by userID. Call it on a
// validated request only.
func (r CreateAlertRequest) Alert(userID string) Alert {
	return Alert{
		UserID:         userID,
		Timestamp:      *r.Timestamp,
		Severity:       r.Severity,
		VitalType:      r.VitalType,
		Message:        r.Message,
		Recommendation: r.Recommendation,
		VitalValue:     r.VitalValue,
	}
}
