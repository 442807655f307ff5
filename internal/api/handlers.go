// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package api

import (
	"github.com/dietprefs/dietprefs/internal/config"
	"github.com/dietprefs/dietprefs/internal/database"
	"github.com/dietprefs/dietprefs/internal/search"
)

// Handler holds the dependencies shared by all endpoint handlers.
type Handler struct {
	db     *database.DB
	cfg    *config.Config
	engine *search.Engine
}

// NewHandler creates the API handler set.
func NewHandler(db *database.DB, cfg *config.Config, engine *search.Engine) *Handler {
	return &Handler{db: db, cfg: cfg, engine: engine}
}
