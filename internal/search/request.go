// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package search

import "github.com/dietprefs/dietprefs/internal/models"

// Sort keys accepted by the search endpoint.
const (
	SortByRating    = "rating"
	SortByDistance  = "distance"
	SortByItemCount = "item_count"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Request is a fully-parsed search request. The API layer validates
// and normalizes the wire DTO into this shape.
type Request struct {
	User1 UserProfile
	User2 UserProfile

	// Location filter. Radius defaults upstream when zero.
	Latitude    *float64
	Longitude   *float64
	RadiusMiles float64

	// Vendor tag names; unknown tags are skipped during parsing.
	Tags []string

	// Free-text query over vendor name, address, seo tags and item
	// names.
	Query string

	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// HasLocation reports whether geography filtering applies.
func (r *Request) HasLocation() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// parsedTags splits the raw tag list into recognized SQL-pushable tags
// and the open-now flag. Unknown tags vanish here.
func (r *Request) parsedTags() (tags []models.VendorTag, openNow bool) {
	for _, raw := range r.Tags {
		tag, ok := models.ParseVendorTag(raw)
		if !ok {
			continue
		}
		if tag == models.TagOpen {
			openNow = true
			continue
		}
		tags = append(tags, tag)
	}
	return tags, openNow
}

// Response is one page of search results plus the display summaries
// for each user's active filters.
type Response struct {
	Results      []models.VendorResult `json:"results"`
	User1Display string                `json:"user1_display"`
	User2Display string                `json:"user2_display"`
	Total        int                   `json:"-"`
}
