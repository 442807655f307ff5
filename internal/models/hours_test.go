// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package models

import (
	"testing"
	"time"
)

// mondayAt builds a time on a known Monday (2026-03-02) in UTC.
func mondayAt(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func TestWeeklyHoursOpenAt(t *testing.T) {
	hours := ParseWeeklyHours(`{"monday": "10:00-22:00", "tuesday": "closed"}`)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"inside range", mondayAt(12, 30), true},
		{"opening minute inclusive", mondayAt(10, 0), true},
		{"closing minute inclusive", mondayAt(22, 0), true},
		{"before opening", mondayAt(9, 59), false},
		{"after closing", mondayAt(22, 1), false},
		{"closed day", mondayAt(12, 0).AddDate(0, 0, 1), false},
		{"missing day", mondayAt(12, 0).AddDate(0, 0, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hours.OpenAt(tt.at); got != tt.want {
				t.Errorf("Expected OpenAt=%v at %s, got %v", tt.want, tt.at, got)
			}
		})
	}
}

func TestWeeklyHoursMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"not json", "open late"},
		{"bad range", `{"monday": "10am-10pm"}`},
		{"missing dash", `{"monday": "10:00"}`},
		{"bad clock", `{"monday": "25:00-26:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours := ParseWeeklyHours(tt.raw)
			if hours.OpenAt(mondayAt(12, 0)) {
				t.Errorf("Malformed hours %q should be treated as closed", tt.raw)
			}
		})
	}
}

func TestVendorMatchesText(t *testing.T) {
	v := Vendor{
		Name:    "Backcountry Burgers",
		Address: "123 Main St, Bozeman",
		SEOTags: "burgers,grass-fed,local",
		Items: []Item{
			{Name: "Bison Smashburger"},
			{Name: "Huckleberry Shake"},
		},
	}

	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"backcountry", true},
		{"BOZEMAN", true},
		{"grass-fed", true},
		{"huckleberry", true},
		{"sushi", false},
	}

	for _, tt := range tests {
		if got := v.MatchesText(tt.query); got != tt.want {
			t.Errorf("Expected MatchesText(%q)=%v, got %v", tt.query, tt.want, got)
		}
	}
}
