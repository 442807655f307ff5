// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package models

import (
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// WeeklyHours maps lowercase weekday names to a daily schedule string,
// either "HH:MM-HH:MM" or "closed".
type WeeklyHours map[string]string

// ParseWeeklyHours decodes a vendor's hours JSON. Malformed JSON yields
// an empty schedule, which OpenAt treats as closed every day.
func ParseWeeklyHours(raw string) WeeklyHours {
	if strings.TrimSpace(raw) == "" {
		return WeeklyHours{}
	}
	var hours WeeklyHours
	if err := json.Unmarshal([]byte(raw), &hours); err != nil {
		return WeeklyHours{}
	}
	return hours
}

// OpenAt reports whether the schedule covers the given instant.
// Day resolution uses the weekday of t in t's own location. A missing
// day, the literal "closed", or a malformed range all count as closed.
// Range bounds are inclusive on both ends.
func (h WeeklyHours) OpenAt(t time.Time) bool {
	day := strings.ToLower(t.Weekday().String())
	spec, ok := h[day]
	if !ok {
		return false
	}
	spec = strings.TrimSpace(spec)
	if strings.EqualFold(spec, "closed") {
		return false
	}

	start, end, ok := parseHourRange(spec)
	if !ok {
		return false
	}
	now := t.Hour()*60 + t.Minute()
	return now >= start && now <= end
}

// parseHourRange parses "HH:MM-HH:MM" into minutes since midnight.
func parseHourRange(spec string) (start, end int, ok bool) {
	parts := strings.SplitN(spec, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, ok = parseClock(parts[0])
	if !ok {
		return 0, 0, false
	}
	end, ok = parseClock(parts[1])
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

func parseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
