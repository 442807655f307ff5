// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package models

import (
	"strings"
	"time"
)

// Vendor is a restaurant or food vendor with its menu items.
type Vendor struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Zipcode int    `json:"zipcode"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`

	// Hours is raw JSON keyed by lowercase weekday name, each value
	// either "HH:MM-HH:MM" or "closed".
	Hours   string `json:"hours,omitempty"`
	SEOTags string `json:"seo_tags,omitempty"` // comma-separated

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Region    int      `json:"region"`

	// Service options
	Delivery  bool `json:"delivery"`
	Takeout   bool `json:"takeout"`
	Grubhub   bool `json:"grubhub"`
	Doordash  bool `json:"doordash"`
	Ubereats  bool `json:"ubereats"`
	Postmates bool `json:"postmates"`

	// Review links
	Yelp          string `json:"yelp,omitempty"`
	GoogleReviews string `json:"google_reviews,omitempty"`
	Tripadvisor   string `json:"tripadvisor,omitempty"`

	CustomByNature bool `json:"custom_by_nature"`

	// Cuisine flags
	CuisineUSA                   bool `json:"cuisine_usa"`
	CuisineEurope                bool `json:"cuisine_europe"`
	CuisineNorthAfricaMiddleEast bool `json:"cuisine_north_africa_middle_east"`
	CuisineMexicoSouthAmerica    bool `json:"cuisine_mexico_south_america"`
	CuisineSubSaharanAfrica      bool `json:"cuisine_sub_saharan_africa"`
	CuisineEastAsia              bool `json:"cuisine_east_asia"`
	Fusion                       bool `json:"fusion"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Items is the vendor's menu, populated by search and detail queries.
	Items []Item `json:"items,omitempty"`
}

// HasCoordinates reports whether the vendor can participate in
// distance calculations.
func (v *Vendor) HasCoordinates() bool {
	return v.Latitude != nil && v.Longitude != nil
}

// VendorTag is a recognized vendor-level search filter.
type VendorTag string

// Recognized vendor tags. TagOpen is special: it cannot be pushed into
// SQL and is applied against opening hours after the fetch.
const (
	TagDelivery              VendorTag = "delivery"
	TagOpen                  VendorTag = "open"
	TagTakeout               VendorTag = "takeout"
	TagFusion                VendorTag = "fusion"
	TagCuisineUSA            VendorTag = "usa"
	TagCuisineEurope         VendorTag = "europe"
	TagNorthAfricaMiddleEast VendorTag = "north_africa_middle_east"
	TagMexicoSouthAmerica    VendorTag = "mexico_south_america"
	TagSubSaharanAfrica      VendorTag = "sub_saharan_africa"
	TagEastAsia              VendorTag = "east_asia"
)

var vendorTags = map[VendorTag]struct{}{
	TagDelivery:              {},
	TagOpen:                  {},
	TagTakeout:               {},
	TagFusion:                {},
	TagCuisineUSA:            {},
	TagCuisineEurope:         {},
	TagNorthAfricaMiddleEast: {},
	TagMexicoSouthAmerica:    {},
	TagSubSaharanAfrica:      {},
	TagEastAsia:              {},
}

// ParseVendorTag resolves a client-supplied tag name. Unknown tags are
// not an error; callers skip them.
func ParseVendorTag(name string) (VendorTag, bool) {
	tag := VendorTag(strings.ToLower(strings.TrimSpace(name)))
	_, ok := vendorTags[tag]
	return tag, ok
}

// MatchesText reports whether the query is a case-insensitive substring
// of the vendor's name, address, seo tags, or any item name. An empty
// query matches everything.
func (v *Vendor) MatchesText(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(v.Name), q) ||
		strings.Contains(strings.ToLower(v.Address), q) ||
		strings.Contains(strings.ToLower(v.SEOTags), q) {
		return true
	}
	for i := range v.Items {
		if strings.Contains(strings.ToLower(v.Items[i].Name), q) {
			return true
		}
	}
	return false
}

// VendorRating is the approval over a search result's relevant item
// set: the raw vote sums plus the derived percentage, so clients can
// see the evidence behind the number.
type VendorRating struct {
	Upvotes    int     `json:"upvotes"`
	TotalVotes int     `json:"total_votes"`
	Percentage float64 `json:"percentage"` // 0-1, clamped
}

// VendorResult is one search hit: a vendor snapshot plus context-scoped
// rating, distance and match counts for the requesting users.
type VendorResult struct {
	Vendor        Vendor       `json:"vendor"`
	Rating        VendorRating `json:"rating"`
	DistanceMiles *float64     `json:"distance_miles,omitempty"` // nil when no location given
	User1Matches  int          `json:"user1_matches"`
	User2Matches  int          `json:"user2_matches"`
	TotalRelevant int          `json:"total_relevant"`
}
