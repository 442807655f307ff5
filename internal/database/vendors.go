// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dietprefs/dietprefs/internal/metrics"
	"github.com/dietprefs/dietprefs/internal/models"
)

// VendorsForSearch returns vendors matching the query pre-filter,
// with their items attached, ordered by id for deterministic resolver
// input.
func (db *DB) VendorsForSearch(ctx context.Context, query VendorQuery) ([]models.Vendor, error) {
	defer metrics.ObserveDBQuery("vendors_for_search", time.Now())

	whereClause, args := buildSearchWhereClause(query)
	sqlQuery := fmt.Sprintf("SELECT %s FROM vendors WHERE %s ORDER BY id", vendorColumns, whereClause)

	rows, err := db.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer closeWithLog(rows, "vendor rows")

	var vendors []models.Vendor
	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, vendor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("vendor rows iteration failed: %w", err)
	}

	if err := db.attachItems(ctx, vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

// GetVendor returns one vendor with its items. Returns ErrNotFound
// when the id does not exist.
func (db *DB) GetVendor(ctx context.Context, id int64) (*models.Vendor, error) {
	defer metrics.ObserveDBQuery("get_vendor", time.Now())

	sqlQuery := fmt.Sprintf("SELECT %s FROM vendors WHERE id = ?", vendorColumns)
	stmt, err := db.getStatement(ctx, sqlQuery)
	if err != nil {
		return nil, err
	}

	vendor, err := scanVendor(stmt.QueryRowContext(ctx, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor %d: %w", id, err)
	}

	vendors := []models.Vendor{vendor}
	if err := db.attachItems(ctx, vendors); err != nil {
		return nil, err
	}
	return &vendors[0], nil
}

// GetVendorItems returns the vendor's items. Returns ErrNotFound when
// the vendor does not exist, distinguishing that from an empty menu.
func (db *DB) GetVendorItems(ctx context.Context, vendorID int64) ([]models.Item, error) {
	defer metrics.ObserveDBQuery("get_vendor_items", time.Now())

	var exists bool
	err := db.conn.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM vendors WHERE id = ?)", vendorID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check vendor %d: %w", vendorID, err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	return db.queryItems(ctx, "vendor_id = ?", vendorID)
}

// DeleteVendor removes a vendor and all of its items in one
// transaction.
func (db *DB) DeleteVendor(ctx context.Context, id int64) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM items WHERE vendor_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete vendor items: %w", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM vendors WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

// attachItems loads items for the given vendors in one query and
// distributes them by vendor id.
func (db *DB) attachItems(ctx context.Context, vendors []models.Vendor) error {
	if len(vendors) == 0 {
		return nil
	}

	ids := make([]int64, len(vendors))
	byID := make(map[int64]*models.Vendor, len(vendors))
	for i := range vendors {
		ids[i] = vendors[i].ID
		byID[vendors[i].ID] = &vendors[i]
	}

	conditions, args := appendInClause(nil, nil, "vendor_id", ids)
	sqlQuery := fmt.Sprintf("SELECT %s FROM items WHERE %s ORDER BY vendor_id, id",
		itemColumns(), strings.Join(conditions, " AND "))

	rows, err := db.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("failed to query items: %w", err)
	}
	defer closeWithLog(rows, "item rows")

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return fmt.Errorf("failed to scan item: %w", err)
		}
		if vendor, ok := byID[item.VendorID]; ok {
			vendor.Items = append(vendor.Items, item)
		}
	}
	return rows.Err()
}

// queryItems runs an item select with the given WHERE clause.
func (db *DB) queryItems(ctx context.Context, whereClause string, args ...interface{}) ([]models.Item, error) {
	sqlQuery := fmt.Sprintf("SELECT %s FROM items WHERE %s ORDER BY id", itemColumns(), whereClause)

	rows, err := db.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer closeWithLog(rows, "item rows")

	var items []models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVendor(row rowScanner) (models.Vendor, error) {
	var v models.Vendor
	err := row.Scan(
		&v.ID, &v.Name, &v.Address, &v.Zipcode, &v.Phone, &v.Website, &v.Hours, &v.SEOTags,
		&v.Latitude, &v.Longitude, &v.Region,
		&v.Delivery, &v.Takeout, &v.Grubhub, &v.Doordash, &v.Ubereats, &v.Postmates,
		&v.Yelp, &v.GoogleReviews, &v.Tripadvisor, &v.CustomByNature,
		&v.CuisineUSA, &v.CuisineEurope, &v.CuisineNorthAfricaMiddleEast,
		&v.CuisineMexicoSouthAmerica, &v.CuisineSubSaharanAfrica, &v.CuisineEastAsia,
		&v.Fusion, &v.CreatedAt, &v.UpdatedAt,
	)
	return v, err
}

func scanItem(row rowScanner) (models.Item, error) {
	var item models.Item
	dest := make([]interface{}, 0, 8+int(models.NumPreferences))
	dest = append(dest, &item.ID, &item.VendorID, &item.Name, &item.Price)
	for p := models.Preference(0); p < models.NumPreferences; p++ {
		dest = append(dest, &item.Attributes[p])
	}
	dest = append(dest, &item.Upvotes, &item.TotalVotes, &item.CreatedAt, &item.UpdatedAt)
	return item, row.Scan(dest...)
}
