// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StandardResponse is the envelope used by mutating endpoints.
type StandardResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Detail  string `json:"detail,omitempty"`
}

// AppInfo is returned by GET /.
type AppInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// HealthStatus is returned by GET /health.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// BuildInfo is the metadata injected into the server binary by linker
// flags. Empty values are reported as "N/A".
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
