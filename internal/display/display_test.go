// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package display

import "testing"

func floatPtr(v float64) *float64 { return &v }

func TestFilterSummary(t *testing.T) {
	tests := []struct {
		name     string
		prefs    []string
		maxPrice *float64
		want     string
	}{
		{
			name: "empty",
			want: "",
		},
		{
			name:  "plain names use spaces",
			prefs: []string{"no_red_meat", "high_protein"},
			want:  "no red meat, high protein",
		},
		{
			name:  "special spellings",
			prefs: []string{"gmo_free", "gluten_free", "pork"},
			want:  "gmo-free, gluten-free, bacon/pork/ham",
		},
		{
			name:     "price clause last",
			prefs:    []string{"vegan"},
			maxPrice: floatPtr(15),
			want:     "vegan, under $15",
		},
		{
			name:     "price only",
			maxPrice: floatPtr(20),
			want:     "under $20",
		},
		{
			name:     "price truncates to integer dollars",
			maxPrice: floatPtr(12.75),
			want:     "under $12",
		},
		{
			name:     "low_price excluded",
			prefs:    []string{"low_price", "keto"},
			maxPrice: floatPtr(10),
			want:     "keto, under $10",
		},
		{
			name:  "input order preserved",
			prefs: []string{"sweet", "vegan", "entree"},
			want:  "sweet, vegan, entree",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSummary(tt.prefs, tt.maxPrice)
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
