// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package search

import (
	"math"
	"sort"

	"github.com/dietprefs/dietprefs/internal/models"
)

// sortResults orders results in place. The sort is stable so that ties
// keep resolver emission order regardless of key or direction.
func sortResults(results []models.VendorResult, sortBy, order string) {
	var less func(a, b *models.VendorResult) bool

	switch sortBy {
	case SortByRating:
		less = func(a, b *models.VendorResult) bool { return a.Rating.Percentage < b.Rating.Percentage }
	case SortByDistance:
		less = func(a, b *models.VendorResult) bool {
			return distanceKey(a) < distanceKey(b)
		}
	default:
		// item_count is the default key.
		less = func(a, b *models.VendorResult) bool {
			return a.TotalRelevant < b.TotalRelevant
		}
	}

	if order == OrderDesc {
		asc := less
		less = func(a, b *models.VendorResult) bool { return asc(b, a) }
	}

	sort.SliceStable(results, func(i, j int) bool {
		return less(&results[i], &results[j])
	})
}

// distanceKey treats a missing distance as infinitely far so unlocated
// vendors sink to the end of an ascending distance sort.
func distanceKey(r *models.VendorResult) float64 {
	if r.DistanceMiles == nil {
		return math.Inf(1)
	}
	return *r.DistanceMiles
}

// paginate slices one 1-indexed page out of the results. Out-of-range
// pages yield an empty page, never an error.
func paginate(results []models.VendorResult, page, pageSize int) []models.VendorResult {
	if page < 1 || pageSize < 1 {
		return []models.VendorResult{}
	}
	start := (page - 1) * pageSize
	if start >= len(results) {
		return []models.VendorResult{}
	}
	end := start + pageSize
	if end > len(results) {
		end = len(results)
	}
	return results[start:end]
}

// TotalPages computes ceil(total/pageSize), 0 when there are no
// results.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
