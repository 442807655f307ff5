// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package search

import (
	"github.com/dietprefs/dietprefs/internal/geo"
	"github.com/dietprefs/dietprefs/internal/models"
)

// resolveVendor applies the dual-user matching rules to one candidate
// vendor and produces a result row, or nil when the vendor is
// rejected.
//
// Rules, in order:
//  1. Each active user's matching items are computed with the exact
//     matcher.
//  2. When both users are active, both match lists must be non-empty.
//  3. The relevant set is the id-deduplicated union (both active), the
//     single user's list (one active), or the whole menu (none
//     active).
//  4. An active filter with an empty relevant set rejects the vendor.
//  5. Rating aggregates votes over the relevant set only, clamped to
//     [0,1].
//  6. With a request location, vendors strictly beyond the radius are
//     dropped and the exact distance is attached otherwise.
func resolveVendor(vendor *models.Vendor, req *Request, user1, user2 resolvedProfile) *models.VendorResult {
	var user1Items, user2Items []*models.Item
	if user1.active {
		user1Items = matchingItems(vendor.Items, user1)
	}
	if user2.active {
		user2Items = matchingItems(vendor.Items, user2)
	}

	bothActive := user1.active && user2.active
	if bothActive && (len(user1Items) == 0 || len(user2Items) == 0) {
		return nil
	}

	var relevant []*models.Item
	switch {
	case bothActive:
		relevant = unionByID(user1Items, user2Items)
	case user1.active:
		relevant = user1Items
	case user2.active:
		relevant = user2Items
	default:
		relevant = make([]*models.Item, len(vendor.Items))
		for i := range vendor.Items {
			relevant[i] = &vendor.Items[i]
		}
	}

	anyFilter := user1.active || user2.active
	if anyFilter && len(relevant) == 0 {
		return nil
	}

	// Result rows carry a snapshot without the menu; clients fetch
	// items through the vendor items endpoint.
	snapshot := *vendor
	snapshot.Items = nil

	result := &models.VendorResult{
		Vendor:        snapshot,
		Rating:        contextRating(relevant),
		User1Matches:  len(user1Items),
		User2Matches:  len(user2Items),
		TotalRelevant: len(relevant),
	}

	if req.HasLocation() {
		if !vendor.HasCoordinates() {
			return nil
		}
		d := geo.HaversineMiles(*req.Latitude, *req.Longitude, *vendor.Latitude, *vendor.Longitude)
		if d > req.RadiusMiles {
			return nil
		}
		result.DistanceMiles = &d
	}

	return result
}

func matchingItems(items []models.Item, profile resolvedProfile) []*models.Item {
	var matched []*models.Item
	for i := range items {
		if profile.matches(&items[i]) {
			matched = append(matched, &items[i])
		}
	}
	return matched
}

// unionByID merges two match lists preserving first-seen order and
// dropping duplicate item ids.
func unionByID(a, b []*models.Item) []*models.Item {
	seen := make(map[int64]struct{}, len(a)+len(b))
	union := make([]*models.Item, 0, len(a)+len(b))
	for _, list := range [][]*models.Item{a, b} {
		for _, item := range list {
			if _, dup := seen[item.ID]; dup {
				continue
			}
			seen[item.ID] = struct{}{}
			union = append(union, item)
		}
	}
	return union
}

// contextRating sums votes over the relevant items and derives the
// approval percentage, clamped to [0,1]. No votes means 0.
func contextRating(items []*models.Item) models.VendorRating {
	rating := models.VendorRating{}
	for _, item := range items {
		rating.Upvotes += item.Upvotes
		rating.TotalVotes += item.TotalVotes
	}
	if rating.TotalVotes <= 0 {
		return rating
	}
	rating.Percentage = float64(rating.Upvotes) / float64(rating.TotalVotes)
	if rating.Percentage > 1.0 {
		rating.Percentage = 1.0
	}
	return rating
}
