// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/Tarekazabou/health-app/internal/app"
)

// notFound answers unknown routes with the JSON error envelope.
func notFound(w http.ResponseWriter, _ *http.Request) {
	writeErrorStatus(w, http.StatusNotFound, app.MsgResourceNotFound)
}

// methodNotAllowed answers known routes called with an unsupported method.
func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeErrorStatus(w, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed)
}
