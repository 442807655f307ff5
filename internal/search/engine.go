// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package search

import (
	"context"
	"fmt"
	"time"

	"github.com/dietprefs/dietprefs/internal/database"
	"github.com/dietprefs/dietprefs/internal/display"
	"github.com/dietprefs/dietprefs/internal/geo"
	"github.com/dietprefs/dietprefs/internal/logging"
	"github.com/dietprefs/dietprefs/internal/metrics"
	"github.com/dietprefs/dietprefs/internal/models"
)

// VendorSource supplies candidate vendors for a search. Satisfied by
// *database.DB; the narrow interface keeps the engine testable with an
// in-memory fixture.
type VendorSource interface {
	VendorsForSearch(ctx context.Context, query database.VendorQuery) ([]models.Vendor, error)
}

// Engine runs the search pipeline. The SQL layer narrows candidates;
// every rule is then re-applied exactly in Go, so the store pre-filter
// can never change result semantics.
type Engine struct {
	source VendorSource
	loc    *time.Location
	now    func() time.Time
}

// NewEngine creates a search engine evaluating open-now checks in the
// given location. A nil location falls back to time.Local.
func NewEngine(source VendorSource, loc *time.Location) *Engine {
	if loc == nil {
		loc = time.Local
	}
	return &Engine{
		source: source,
		loc:    loc,
		now:    time.Now,
	}
}

// Search executes the full pipeline and returns one page of results.
// Response.Total carries the pre-pagination result count.
func (e *Engine) Search(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()

	if req.RadiusMiles <= 0 {
		req.RadiusMiles = geo.DefaultRadiusMiles
	}

	user1 := req.User1.resolve()
	user2 := req.User2.resolve()
	tags, openNow := req.parsedTags()

	query := database.VendorQuery{
		Tags:  tags,
		Query: req.Query,
		User1: database.ProfileFilter{Preferences: user1.prefs, MaxPrice: user1.maxPrice, Active: user1.active},
		User2: database.ProfileFilter{Preferences: user2.prefs, MaxPrice: user2.maxPrice, Active: user2.active},
	}
	if req.HasLocation() {
		box := geo.NewBoundingBox(*req.Latitude, *req.Longitude, req.RadiusMiles)
		query.Box = &box
	}

	vendors, err := e.source.VendorsForSearch(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetching search candidates: %w", err)
	}

	var nowLocal time.Time
	if openNow {
		nowLocal = e.now().In(e.loc)
	}

	results := make([]models.VendorResult, 0, len(vendors))
	for i := range vendors {
		vendor := &vendors[i]

		// Text search re-check. The SQL predicate is a pre-filter;
		// this is the authoritative test.
		if !vendor.MatchesText(req.Query) {
			continue
		}
		if openNow && !models.ParseWeeklyHours(vendor.Hours).OpenAt(nowLocal) {
			continue
		}
		if result := resolveVendor(vendor, req, user1, user2); result != nil {
			results = append(results, *result)
		}
	}

	sortResults(results, req.SortBy, req.SortOrder)
	total := len(results)
	page := paginate(results, req.Page, req.PageSize)

	metrics.RecordSearch(time.Since(start), total)
	logging.Ctx(ctx).Debug().
		Int("candidates", len(vendors)).
		Int("results", total).
		Str("sort_by", req.SortBy).
		Msg("Search pipeline completed")

	return &Response{
		Results:      page,
		User1Display: display.FilterSummary(req.User1.Preferences, req.User1.MaxPrice),
		User2Display: display.FilterSummary(req.User2.Preferences, req.User2.MaxPrice),
		Total:        total,
	}, nil
}
