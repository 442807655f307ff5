// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

// Package geo provides the distance math used by vendor search:
// great-circle distance in miles and the bounding-box pre-filter that
// narrows SQL scans before exact per-vendor distances are computed.
package geo

import "math"

const (
	// earthRadiusMiles is the mean earth radius used for haversine.
	earthRadiusMiles = 3959.0

	// milesPerDegreeLat is the approximate north-south span of one
	// degree of latitude.
	milesPerDegreeLat = 69.0

	// DefaultRadiusMiles is the search radius applied when a request
	// supplies coordinates without a radius.
	DefaultRadiusMiles = 10.0
)

// HaversineMiles returns the great-circle distance between two points
// in miles, rounded to two decimal places.
func HaversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	rLat1 := lat1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return round2(earthRadiusMiles * c)
}

// BoundingBox is a latitude/longitude rectangle guaranteed to contain
// the circle it was derived from. Membership in the box does not imply
// membership in the circle; callers confirm with HaversineMiles.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// NewBoundingBox returns the box around (lat, lng) spanning
// distanceMiles in every direction. Longitude degrees shrink with
// latitude, so the east-west delta is widened by 1/cos(lat).
func NewBoundingBox(lat, lng, distanceMiles float64) BoundingBox {
	latDelta := distanceMiles / milesPerDegreeLat
	lngDelta := distanceMiles / (milesPerDegreeLat * math.Cos(lat*math.Pi/180))

	return BoundingBox{
		MinLat: lat - latDelta,
		MaxLat: lat + latDelta,
		MinLng: lng - lngDelta,
		MaxLng: lng + lngDelta,
	}
}

// Contains reports whether the point falls inside the box, bounds
// inclusive.
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lng >= b.MinLng && lng <= b.MaxLng
}

// WithinDistance reports whether the two points are at most
// radiusMiles apart. A non-positive radius falls back to
// DefaultRadiusMiles.
func WithinDistance(lat1, lng1, lat2, lng2, radiusMiles float64) bool {
	if radiusMiles <= 0 {
		radiusMiles = DefaultRadiusMiles
	}
	return HaversineMiles(lat1, lng1, lat2, lng2) <= radiusMiles
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
