// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package api

import (
	"net/http"
)

// Health reports overall service health.
//
// @Summary Service health
// @Tags health
// @Produce json
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		WriteError(w, r, http.StatusServiceUnavailable, CodeInternalError, "database unavailable", nil)
		return
	}
	WriteSuccess(w, r, map[string]string{"status": "healthy"})
}

// Live is the liveness probe; it succeeds whenever the process can
// serve requests at all.
//
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Router /health/live [get]
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]string{"status": "alive"})
}

// Ready is the readiness probe; it checks the database connection.
//
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Router /health/ready [get]
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		WriteError(w, r, http.StatusServiceUnavailable, CodeInternalError, "database unavailable", nil)
		return
	}
	WriteSuccess(w, r, map[string]string{"status": "ready"})
}
