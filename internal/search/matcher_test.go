// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package search

import (
	"testing"

	"github.com/dietprefs/dietprefs/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func testItem(price *float64, attrs ...models.Preference) *models.Item {
	item := &models.Item{Name: "test item", Price: price}
	for _, p := range attrs {
		item.Attributes[p] = true
	}
	return item
}

func TestItemMatchesEmptyPreferences(t *testing.T) {
	item := testItem(floatPtr(12.0))
	if !ItemMatches(item, nil, nil) {
		t.Error("Empty preferences with no price ceiling must match")
	}
	if !ItemMatches(item, []string{}, nil) {
		t.Error("Empty preference slice must match")
	}
}

func TestItemMatchesPriceCeiling(t *testing.T) {
	tests := []struct {
		name     string
		price    *float64
		maxPrice *float64
		want     bool
	}{
		{"under ceiling", floatPtr(10), floatPtr(15), true},
		{"at ceiling", floatPtr(15), floatPtr(15), true},
		{"over ceiling", floatPtr(20), floatPtr(15), false},
		{"unpriced item passes", nil, floatPtr(15), true},
		{"no ceiling", floatPtr(99), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := testItem(tt.price, models.PrefVegan)
			if got := ItemMatches(item, []string{"vegan"}, tt.maxPrice); got != tt.want {
				t.Errorf("Expected match=%v, got %v", tt.want, got)
			}
		})
	}
}

func TestItemMatchesConjunction(t *testing.T) {
	item := testItem(nil, models.PrefVegan, models.PrefGlutenFree)

	if !ItemMatches(item, []string{"vegan", "gluten_free"}, nil) {
		t.Error("Item with both attributes must match both preferences")
	}
	if ItemMatches(item, []string{"vegan", "kosher"}, nil) {
		t.Error("Missing one preference must fail the whole conjunction")
	}
}

func TestItemMatchesUnknownNamesIgnored(t *testing.T) {
	item := testItem(nil, models.PrefVegan)

	// Unknown names must not change the outcome in either direction.
	if !ItemMatches(item, []string{"vegan", "paleo", "whole30"}, nil) {
		t.Error("Unknown preference names must be ignored")
	}
	if !ItemMatches(item, []string{"paleo"}, nil) {
		t.Error("Only-unknown preferences behave like an empty list")
	}
}

func TestItemMatchesCaseInsensitive(t *testing.T) {
	item := testItem(nil, models.PrefGlutenFree)
	if !ItemMatches(item, []string{"GLUTEN_FREE"}, nil) {
		t.Error("Preference lookup must be case-insensitive")
	}
}

func TestUserProfileActive(t *testing.T) {
	tests := []struct {
		name    string
		profile UserProfile
		want    bool
	}{
		{"empty", UserProfile{}, false},
		{"prefs only", UserProfile{Preferences: []string{"vegan"}}, true},
		{"price only", UserProfile{MaxPrice: floatPtr(10)}, true},
		{"both", UserProfile{Preferences: []string{"vegan"}, MaxPrice: floatPtr(10)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.Active(); got != tt.want {
				t.Errorf("Expected Active=%v, got %v", tt.want, got)
			}
		})
	}
}
