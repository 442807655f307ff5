// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package database

import (
	"fmt"
	"strings"

	"github.com/dietprefs/dietprefs/internal/geo"
	"github.com/dietprefs/dietprefs/internal/models"
)

// ProfileFilter is one user's preference predicate pushed into SQL.
// Preferences are already resolved; unknown names never reach the
// store.
type ProfileFilter struct {
	Preferences []models.Preference
	MaxPrice    *float64
	Active      bool
}

// VendorQuery narrows the vendor scan for a search. It is a
// pre-filter: the search engine re-applies every rule exactly, so a
// too-wide query only costs performance, never correctness.
type VendorQuery struct {
	// Box restricts to vendors with coordinates inside the bounding
	// box. Nil means no geography filter.
	Box *geo.BoundingBox

	// Tags AND-combine; each maps to one boolean vendor column.
	Tags []models.VendorTag

	// Query is a case-insensitive substring over vendor name, address,
	// seo tags and item names.
	Query string

	User1 ProfileFilter
	User2 ProfileFilter
}

// tagColumns maps SQL-pushable vendor tags to their column names.
// TagOpen is absent on purpose; opening hours are evaluated in Go.
var tagColumns = map[models.VendorTag]string{
	models.TagDelivery:              "delivery",
	models.TagTakeout:               "takeout",
	models.TagFusion:                "fusion",
	models.TagCuisineUSA:            "cuisine_usa",
	models.TagCuisineEurope:         "cuisine_europe",
	models.TagNorthAfricaMiddleEast: "cuisine_north_africa_middle_east",
	models.TagMexicoSouthAmerica:    "cuisine_mexico_south_america",
	models.TagSubSaharanAfrica:      "cuisine_sub_saharan_africa",
	models.TagEastAsia:              "cuisine_east_asia",
}

// buildSearchConditions translates a VendorQuery into WHERE clauses
// and bind arguments.
func buildSearchConditions(q VendorQuery) ([]string, []interface{}) {
	var conditions []string
	var args []interface{}

	if q.Box != nil {
		conditions = append(conditions,
			"latitude IS NOT NULL",
			"longitude IS NOT NULL",
			"latitude BETWEEN ? AND ?",
			"longitude BETWEEN ? AND ?")
		args = append(args, q.Box.MinLat, q.Box.MaxLat, q.Box.MinLng, q.Box.MaxLng)
	}

	for _, tag := range q.Tags {
		if col, ok := tagColumns[tag]; ok {
			conditions = append(conditions, col+" = TRUE")
		}
	}

	if query := strings.TrimSpace(q.Query); query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		conditions = append(conditions,
			`(lower(name) LIKE ? OR lower(address) LIKE ? OR lower(seo_tags) LIKE ?
				OR EXISTS (SELECT 1 FROM items i WHERE i.vendor_id = vendors.id AND lower(i.name) LIKE ?))`)
		args = append(args, pattern, pattern, pattern, pattern)
	}

	if cond, condArgs := buildProfileConditions(q.User1, q.User2); cond != "" {
		conditions = append(conditions, cond)
		args = append(args, condArgs...)
	}

	return conditions, args
}

// buildProfileConditions builds the item-existence predicate for the
// active users. Users OR-combine at this stage; the resolver enforces
// the stricter dual-activity rule after the fetch.
func buildProfileConditions(user1, user2 ProfileFilter) (string, []interface{}) {
	var parts []string
	var args []interface{}

	for _, profile := range []ProfileFilter{user1, user2} {
		if !profile.Active {
			continue
		}
		cond, condArgs := profileExists(profile)
		parts = append(parts, cond)
		args = append(args, condArgs...)
	}

	switch len(parts) {
	case 0:
		return "", nil
	case 1:
		return parts[0], args
	default:
		return "(" + strings.Join(parts, " OR ") + ")", args
	}
}

// profileExists builds EXISTS(matching item) for one profile.
func profileExists(profile ProfileFilter) (string, []interface{}) {
	var itemConds []string
	var args []interface{}

	for _, p := range profile.Preferences {
		itemConds = append(itemConds, fmt.Sprintf("i.%s = TRUE", p.String()))
	}
	if profile.MaxPrice != nil {
		itemConds = append(itemConds, "(i.price IS NULL OR i.price <= ?)")
		args = append(args, *profile.MaxPrice)
	}

	cond := "EXISTS (SELECT 1 FROM items i WHERE i.vendor_id = vendors.id"
	if len(itemConds) > 0 {
		cond += " AND " + strings.Join(itemConds, " AND ")
	}
	cond += ")"
	return cond, args
}

// buildSearchWhereClause assembles the full WHERE clause. The leading
// 1=1 keeps the query valid when no conditions apply.
func buildSearchWhereClause(q VendorQuery) (string, []interface{}) {
	conditions, args := buildSearchConditions(q)
	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause += " AND " + strings.Join(conditions, " AND ")
	}
	return whereClause, args
}

// appendInClause appends "column IN (?, ?, ...)" for the given ids.
func appendInClause(conditions []string, args []interface{}, column string, ids []int64) ([]string, []interface{}) {
	if len(ids) == 0 {
		return conditions, args
	}
	placeholders := make([]string, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args = append(args, id)
	}
	conditions = append(conditions, fmt.Sprintf("%s IN (%s)", column, strings.Join(placeholders, ", ")))
	return conditions, args
}
