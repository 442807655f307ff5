// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package database

import (
	"fmt"
	"strings"

	"github.com/dietprefs/dietprefs/internal/models"
)

// vendorColumns is the scan order for vendor rows. Must match
// scanVendor.
const vendorColumns = `id, name, address, zipcode, phone, website, hours, seo_tags,
	latitude, longitude, region,
	delivery, takeout, grubhub, doordash, ubereats, postmates,
	yelp, google_reviews, tripadvisor, custom_by_nature,
	cuisine_usa, cuisine_europe, cuisine_north_africa_middle_east,
	cuisine_mexico_south_america, cuisine_sub_saharan_africa, cuisine_east_asia,
	fusion, created_at, updated_at`

// itemColumns returns the scan order for item rows: fixed columns
// followed by the 32 attribute columns in Preference order.
func itemColumns() string {
	cols := append([]string{"id", "vendor_id", "name", "price"}, models.PreferenceColumns()...)
	cols = append(cols, "upvotes", "total_votes", "created_at", "updated_at")
	return strings.Join(cols, ", ")
}

func (db *DB) createTables() error {
	stmts := []string{
		`CREATE SEQUENCE IF NOT EXISTS vendors_id_seq START 1`,
		`CREATE SEQUENCE IF NOT EXISTS items_id_seq START 1`,
		createVendorsTableSQL(),
		createItemsTableSQL(),
	}

	for _, stmt := range stmts {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}
	return nil
}

func createVendorsTableSQL() string {
	return `CREATE TABLE IF NOT EXISTS vendors (
		id BIGINT PRIMARY KEY DEFAULT nextval('vendors_id_seq'),
		name VARCHAR NOT NULL,
		address VARCHAR NOT NULL,
		zipcode INTEGER NOT NULL DEFAULT 0,
		phone VARCHAR NOT NULL DEFAULT '',
		website VARCHAR NOT NULL DEFAULT '',
		hours VARCHAR NOT NULL DEFAULT '',
		seo_tags VARCHAR NOT NULL DEFAULT '',
		latitude DOUBLE,
		longitude DOUBLE,
		region INTEGER NOT NULL DEFAULT 0,
		delivery BOOLEAN NOT NULL DEFAULT FALSE,
		takeout BOOLEAN NOT NULL DEFAULT FALSE,
		grubhub BOOLEAN NOT NULL DEFAULT FALSE,
		doordash BOOLEAN NOT NULL DEFAULT FALSE,
		ubereats BOOLEAN NOT NULL DEFAULT FALSE,
		postmates BOOLEAN NOT NULL DEFAULT FALSE,
		yelp VARCHAR NOT NULL DEFAULT '',
		google_reviews VARCHAR NOT NULL DEFAULT '',
		tripadvisor VARCHAR NOT NULL DEFAULT '',
		custom_by_nature BOOLEAN NOT NULL DEFAULT FALSE,
		cuisine_usa BOOLEAN NOT NULL DEFAULT FALSE,
		cuisine_europe BOOLEAN NOT NULL DEFAULT FALSE,
		cuisine_north_africa_middle_east BOOLEAN NOT NULL DEFAULT FALSE,
		cuisine_mexico_south_america BOOLEAN NOT NULL DEFAULT FALSE,
		cuisine_sub_saharan_africa BOOLEAN NOT NULL DEFAULT FALSE,
		cuisine_east_asia BOOLEAN NOT NULL DEFAULT FALSE,
		fusion BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`
}

// createItemsTableSQL builds the items DDL with one boolean column per
// attribute, generated from the canonical preference list so schema
// and matcher can never disagree on column order.
func createItemsTableSQL() string {
	var b strings.Builder
	b.WriteString(`CREATE TABLE IF NOT EXISTS items (
		id BIGINT PRIMARY KEY DEFAULT nextval('items_id_seq'),
		vendor_id BIGINT NOT NULL,
		name VARCHAR NOT NULL,
		price DOUBLE,
`)
	for _, col := range models.PreferenceColumns() {
		fmt.Fprintf(&b, "\t\t%s BOOLEAN NOT NULL DEFAULT FALSE,\n", col)
	}
	b.WriteString(`		upvotes INTEGER NOT NULL DEFAULT 0,
		total_votes INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	return b.String()
}

func (db *DB) createIndexes() error {
	stmts := []string{
		`CREATE INDEX IF NOT EXISTS idx_items_vendor_id ON items(vendor_id)`,
		`CREATE INDEX IF NOT EXISTS idx_vendors_location ON vendors(latitude, longitude)`,
	}

	for _, stmt := range stmts {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("index statement failed: %w", err)
		}
	}
	return nil
}

// dropTables removes all data objects. Used by Reseed.
func (db *DB) dropTables() error {
	stmts := []string{
		`DROP TABLE IF EXISTS items`,
		`DROP TABLE IF EXISTS vendors`,
		`DROP SEQUENCE IF EXISTS items_id_seq`,
		`DROP SEQUENCE IF EXISTS vendors_id_seq`,
	}
	for _, stmt := range stmts {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("drop statement failed: %w", err)
		}
	}
	return nil
}
