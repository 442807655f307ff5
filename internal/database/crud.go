// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/dietprefs/dietprefs/internal/models"
)

// InsertVendor stores a new vendor and returns its assigned id.
func (db *DB) InsertVendor(ctx context.Context, v *models.Vendor) (int64, error) {
	const sqlQuery = `INSERT INTO vendors (
		name, address, zipcode, phone, website, hours, seo_tags,
		latitude, longitude, region,
		delivery, takeout, grubhub, doordash, ubereats, postmates,
		yelp, google_reviews, tripadvisor, custom_by_nature,
		cuisine_usa, cuisine_europe, cuisine_north_africa_middle_east,
		cuisine_mexico_south_america, cuisine_sub_saharan_africa, cuisine_east_asia,
		fusion
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	RETURNING id`

	var id int64
	err := db.conn.QueryRowContext(ctx, sqlQuery,
		v.Name, v.Address, v.Zipcode, v.Phone, v.Website, v.Hours, v.SEOTags,
		v.Latitude, v.Longitude, v.Region,
		v.Delivery, v.Takeout, v.Grubhub, v.Doordash, v.Ubereats, v.Postmates,
		v.Yelp, v.GoogleReviews, v.Tripadvisor, v.CustomByNature,
		v.CuisineUSA, v.CuisineEurope, v.CuisineNorthAfricaMiddleEast,
		v.CuisineMexicoSouthAmerica, v.CuisineSubSaharanAfrica, v.CuisineEastAsia,
		v.Fusion,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert vendor %q: %w", v.Name, err)
	}
	v.ID = id
	return id, nil
}

// InsertItem stores a new menu item and returns its assigned id.
// Attribute columns are generated from the canonical preference list.
func (db *DB) InsertItem(ctx context.Context, item *models.Item) (int64, error) {
	prefCols := models.PreferenceColumns()

	cols := append([]string{"vendor_id", "name", "price"}, prefCols...)
	cols = append(cols, "upvotes", "total_votes")

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	sqlQuery := fmt.Sprintf("INSERT INTO items (%s) VALUES (%s) RETURNING id",
		strings.Join(cols, ", "), placeholders)

	args := make([]interface{}, 0, len(cols))
	args = append(args, item.VendorID, item.Name, item.Price)
	for p := models.Preference(0); p < models.NumPreferences; p++ {
		args = append(args, item.Attributes[p])
	}
	args = append(args, item.Upvotes, item.TotalVotes)

	var id int64
	if err := db.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert item %q: %w", item.Name, err)
	}
	item.ID = id
	return id, nil
}

// CountVendors returns the number of stored vendors. Used to decide
// whether startup seeding applies.
func (db *DB) CountVendors(ctx context.Context) (int, error) {
	var count int
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM vendors").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count vendors: %w", err)
	}
	return count, nil
}
