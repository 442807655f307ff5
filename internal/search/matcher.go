// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

// Package search implements the vendor search pipeline: geography and
// tag filtering, text search, per-user preference matching, the
// dual-user resolver, and stable sorting with pagination.
package search

import (
	"github.com/dietprefs/dietprefs/internal/models"
)

// UserProfile is one diner's constraints as supplied by the client:
// raw preference names plus an optional price ceiling in dollars.
type UserProfile struct {
	Preferences []string `json:"preferences"`
	MaxPrice    *float64 `json:"max_price,omitempty"`
}

// Active reports whether the profile constrains anything. Inactive
// profiles are skipped entirely by the resolver.
func (u UserProfile) Active() bool {
	return len(u.Preferences) > 0 || u.MaxPrice != nil
}

// resolvedProfile is a UserProfile with preference names resolved to
// attribute indexes once, so per-item matching is a fixed-size loop
// with no string work.
type resolvedProfile struct {
	prefs    []models.Preference
	maxPrice *float64
	active   bool
}

// resolve lowercases and looks up each preference name. Unknown names
// are dropped without error; they must not affect matching.
func (u UserProfile) resolve() resolvedProfile {
	r := resolvedProfile{maxPrice: u.MaxPrice, active: u.Active()}
	for _, name := range u.Preferences {
		if p, ok := models.ParsePreference(name); ok {
			r.prefs = append(r.prefs, p)
		}
	}
	return r
}

// matches applies the profile to one item.
//
// The price ceiling is checked first and fails only when both the
// ceiling and the item price are present. An empty preference list
// passes. Recognized preferences combine with AND.
func (r resolvedProfile) matches(item *models.Item) bool {
	if r.maxPrice != nil && item.Price != nil && *item.Price > *r.maxPrice {
		return false
	}
	for _, p := range r.prefs {
		if !item.Attributes.Has(p) {
			return false
		}
	}
	return true
}

// ItemMatches reports whether an item satisfies the given preference
// names and price ceiling. This is the single source of truth for
// match semantics; SQL pre-filters only narrow the candidate set.
func ItemMatches(item *models.Item, prefNames []string, maxPrice *float64) bool {
	profile := UserProfile{Preferences: prefNames, MaxPrice: maxPrice}
	return profile.resolve().matches(item)
}
