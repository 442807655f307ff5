// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

// Package display renders human-readable summaries of a user's active
// filters for search result headers, e.g.
// "vegan, gluten-free, under $15".
package display

import (
	"fmt"
	"strings"
)

// displayOverrides maps preference names whose display form is not a
// plain underscore-to-space rewrite.
var displayOverrides = map[string]string{
	"gmo_free":    "gmo-free",
	"gluten_free": "gluten-free",
	"pork":        "bacon/pork/ham",
}

// FilterSummary formats a user's preference names and optional price
// ceiling as a comma-separated phrase. Preferences keep their input
// order; the price clause comes last. The pseudo-preference
// "low_price" is excluded since the ceiling already expresses it.
func FilterSummary(prefNames []string, maxPrice *float64) string {
	var parts []string
	for _, name := range prefNames {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || name == "low_price" {
			continue
		}
		parts = append(parts, displayName(name))
	}
	if maxPrice != nil {
		parts = append(parts, fmt.Sprintf("under $%d", int(*maxPrice)))
	}
	return strings.Join(parts, ", ")
}

func displayName(name string) string {
	if display, ok := displayOverrides[name]; ok {
		return display
	}
	return strings.ReplaceAll(name, "_", " ")
}
