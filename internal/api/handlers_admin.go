// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package api

import (
	"net/http"

	"github.com/dietprefs/dietprefs/internal/logging"
)

// Reseed drops all data and reloads the demo dataset.
//
// @Summary Reset the database to the demo dataset
// @Tags admin
// @Produce json
// @Router /api/v1/admin/reseed [post]
func (h *Handler) Reseed(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Reseed(r.Context()); err != nil {
		WriteInternalError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Info().Msg("Database reseeded")
	WriteSuccess(w, r, map[string]string{"status": "reseeded"})
}
