// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package api

import (
	"net/http"

	"github.com/dietprefs/dietprefs/internal/models"
)

// AppConfigResponse is the client bootstrap payload: everything a UI
// needs to render its filter controls.
type AppConfigResponse struct {
	Pricing    PricingOptions    `json:"pricing"`
	Pagination PaginationOptions `json:"pagination"`
	Location   LocationDefaults  `json:"location"`
	Sorting    SortingOptions    `json:"sorting"`
	Prefs      []string          `json:"preferences"`
}

type PricingOptions struct {
	Options []int `json:"options"`
}

type PaginationOptions struct {
	DefaultPageSize int `json:"default_page_size"`
	MaxPageSize     int `json:"max_page_size"`
}

type LocationDefaults struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	RadiusMiles float64 `json:"radius_miles"`
}

type SortingOptions struct {
	Options      []string `json:"options"`
	DefaultBy    string   `json:"default_by"`
	DefaultOrder string   `json:"default_order"`
}

// GetAppConfig returns client bootstrap configuration.
//
// @Summary Client bootstrap configuration
// @Tags config
// @Produce json
// @Router /api/v1/config [get]
func (h *Handler) GetAppConfig(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, AppConfigResponse{
		Pricing: PricingOptions{Options: h.cfg.Pricing.Options()},
		Pagination: PaginationOptions{
			DefaultPageSize: h.cfg.Search.DefaultPageSize,
			MaxPageSize:     h.cfg.Search.MaxPageSize,
		},
		Location: LocationDefaults{
			Latitude:    h.cfg.Search.DefaultLatitude,
			Longitude:   h.cfg.Search.DefaultLongitude,
			RadiusMiles: h.cfg.Search.DefaultRadiusMiles,
		},
		Sorting: SortingOptions{
			Options:      []string{"rating", "distance", "item_count"},
			DefaultBy:    h.cfg.Search.DefaultSortBy,
			DefaultOrder: h.cfg.Search.DefaultSortOrder,
		},
		Prefs: models.PreferenceColumns(),
	})
}
