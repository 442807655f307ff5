// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dietprefs/dietprefs/internal/logging"
	"github.com/dietprefs/dietprefs/internal/models"
)

// seedHours covers a typical dinner-service week.
const seedHours = `{"monday": "11:00-21:00", "tuesday": "11:00-21:00", "wednesday": "11:00-21:00", "thursday": "11:00-21:00", "friday": "11:00-22:00", "saturday": "11:00-22:00", "sunday": "closed"}`

type seedItem struct {
	name       string
	price      float64
	attrs      []models.Preference
	upvotes    int
	totalVotes int
}

type seedVendor struct {
	vendor models.Vendor
	items  []seedItem
}

func floatPtr(v float64) *float64 { return &v }

// seedVendors is the demo dataset: Bozeman-area vendors with menus
// spanning the attribute set.
var seedVendors = []seedVendor{
	{
		vendor: models.Vendor{
			Name: "Sweet Pea Kitchen", Address: "19 W Main St, Bozeman, MT", Zipcode: 59715,
			Phone: "406-555-0141", Website: "https://sweetpea.example.com",
			Hours: seedHours, SEOTags: "farm-to-table,brunch,local",
			Latitude: floatPtr(45.6796), Longitude: floatPtr(-111.0386), Region: 1,
			Takeout: true, CuisineUSA: true,
		},
		items: []seedItem{
			{"Garden Scramble", 12.50, []models.Preference{models.PrefVegetarian, models.PrefGlutenFree, models.PrefOrganic, models.PrefEntree}, 41, 50},
			{"Huckleberry Pancakes", 11.00, []models.Preference{models.PrefVegetarian, models.PrefSweet}, 38, 45},
			{"Bison Hash", 15.00, []models.Preference{models.PrefBeef, models.PrefLocallySourced, models.PrefHighProtein, models.PrefEntree}, 22, 30},
		},
	},
	{
		vendor: models.Vendor{
			Name: "Lotus Leaf", Address: "521 E Peach St, Bozeman, MT", Zipcode: 59715,
			Phone: "406-555-0187", Website: "https://lotusleaf.example.com",
			Hours: seedHours, SEOTags: "plant-based,vegan,thai",
			Latitude: floatPtr(45.6847), Longitude: floatPtr(-111.0310), Region: 1,
			Delivery: true, Takeout: true, CuisineEastAsia: true,
		},
		items: []seedItem{
			{"Green Curry Tofu", 13.00, []models.Preference{models.PrefVegan, models.PrefVegetarian, models.PrefGlutenFree, models.PrefNoMilk, models.PrefNoEggs, models.PrefEntree}, 55, 60},
			{"Peanut Noodles", 11.50, []models.Preference{models.PrefVegan, models.PrefVegetarian, models.PrefNoMilk, models.PrefEntree}, 30, 42},
			{"Mango Sticky Rice", 7.00, []models.Preference{models.PrefVegan, models.PrefVegetarian, models.PrefGlutenFree, models.PrefSweet}, 25, 28},
		},
	},
	{
		vendor: models.Vendor{
			Name: "Casa Dos Hermanos", Address: "1205 W College St, Bozeman, MT", Zipcode: 59715,
			Phone: "406-555-0123",
			Hours: seedHours, SEOTags: "tacos,family,margaritas",
			Latitude: floatPtr(45.6684), Longitude: floatPtr(-111.0603), Region: 1,
			Delivery: true, Doordash: true, CuisineMexicoSouthAmerica: true,
		},
		items: []seedItem{
			{"Carnitas Tacos", 10.50, []models.Preference{models.PrefPork, models.PrefGlutenFree, models.PrefEntree}, 48, 55},
			{"Pollo Asado Bowl", 12.00, []models.Preference{models.PrefChicken, models.PrefGlutenFree, models.PrefHighProtein, models.PrefNoPorkProducts, models.PrefEntree}, 35, 40},
			{"Veggie Fajitas", 11.00, []models.Preference{models.PrefVegetarian, models.PrefNoPorkProducts, models.PrefNoRedMeat, models.PrefEntree}, 18, 25},
			{"Churros", 6.00, []models.Preference{models.PrefVegetarian, models.PrefSweet}, 29, 31},
		},
	},
	{
		vendor: models.Vendor{
			Name: "Marrakesh Grill", Address: "740 N 7th Ave, Bozeman, MT", Zipcode: 59715,
			Phone: "406-555-0164", Website: "https://marrakeshgrill.example.com",
			Hours: seedHours, SEOTags: "halal,moroccan,tagine",
			Latitude: floatPtr(45.6901), Longitude: floatPtr(-111.0455), Region: 1,
			Takeout: true, Grubhub: true, CuisineNorthAfricaMiddleEast: true,
		},
		items: []seedItem{
			{"Lamb Tagine", 17.00, []models.Preference{models.PrefHalal, models.PrefGlutenFree, models.PrefNoPorkProducts, models.PrefEntree}, 40, 44},
			{"Chicken Shawarma", 12.00, []models.Preference{models.PrefHalal, models.PrefChicken, models.PrefNoPorkProducts, models.PrefHighProtein, models.PrefEntree}, 52, 58},
			{"Falafel Plate", 10.00, []models.Preference{models.PrefVegan, models.PrefVegetarian, models.PrefHalal, models.PrefNoMilk, models.PrefEntree}, 33, 39},
		},
	},
	{
		vendor: models.Vendor{
			Name: "The Copper Whale", Address: "101 E Oak St, Bozeman, MT", Zipcode: 59718,
			Phone: "406-555-0199",
			Hours: seedHours, SEOTags: "seafood,oysters,raw bar",
			Latitude: floatPtr(45.6953), Longitude: floatPtr(-111.0389), Region: 1,
			Ubereats: true, CuisineUSA: true, Fusion: true,
		},
		items: []seedItem{
			{"Cedar Plank Salmon", 21.00, []models.Preference{models.PrefPescetarian, models.PrefSeafood, models.PrefGlutenFree, models.PrefKeto, models.PrefHighProtein, models.PrefLowCarb, models.PrefEntree}, 36, 41},
			{"Oysters on the Half Shell", 18.00, []models.Preference{models.PrefPescetarian, models.PrefSeafood, models.PrefRaw, models.PrefKeto, models.PrefGlutenFree}, 27, 33},
			{"Clam Chowder", 9.00, []models.Preference{models.PrefSeafood, models.PrefEntree}, 20, 26},
		},
	},
	{
		vendor: models.Vendor{
			// No coordinates: exercises the unlocated-vendor paths.
			Name: "Prairie Provisions", Address: "Food truck, rotating locations", Zipcode: 59715,
			Hours: `{"friday": "11:00-15:00", "saturday": "11:00-15:00"}`,
			SEOTags: "food truck,kosher,deli",
			Region:  1, CustomByNature: true, CuisineEurope: true,
		},
		items: []seedItem{
			{"Pastrami on Rye", 13.00, []models.Preference{models.PrefKosher, models.PrefBeef, models.PrefNoPorkProducts, models.PrefEntree}, 15, 19},
			{"Potato Knish", 6.50, []models.Preference{models.PrefKosher, models.PrefVegetarian, models.PrefEntree}, 11, 14},
		},
	},
}

// Seed inserts the demo dataset. It is a no-op when vendors already
// exist so startup seeding cannot duplicate data.
func (db *DB) Seed(ctx context.Context) error {
	count, err := db.CountVendors(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logging.Debug().Int("vendors", count).Msg("Seed skipped, data already present")
		return nil
	}

	for i := range seedVendors {
		sv := &seedVendors[i]
		vendor := sv.vendor // copy so reseeding starts from a clean struct
		vendorID, err := db.InsertVendor(ctx, &vendor)
		if err != nil {
			return err
		}
		for _, si := range sv.items {
			item := models.Item{
				VendorID:   vendorID,
				Name:       si.name,
				Price:      floatPtr(si.price),
				Upvotes:    si.upvotes,
				TotalVotes: si.totalVotes,
			}
			for _, p := range si.attrs {
				item.Attributes[p] = true
			}
			if _, err := db.InsertItem(ctx, &item); err != nil {
				return err
			}
		}
	}

	logging.Info().Int("vendors", len(seedVendors)).Msg("Seeded demo dataset")
	return nil
}

// Reseed drops all data and reloads the demo dataset.
func (db *DB) Reseed(ctx context.Context) error {
	// Cached statements reference the dropped tables.
	db.stmtCacheMu.Lock()
	for _, stmt := range db.stmtCache {
		closeWithLog(stmt, "prepared statement")
	}
	db.stmtCache = make(map[string]*sql.Stmt)
	db.stmtCacheMu.Unlock()

	if err := db.dropTables(); err != nil {
		return fmt.Errorf("reseed drop failed: %w", err)
	}
	if err := db.initialize(); err != nil {
		return fmt.Errorf("reseed schema rebuild failed: %w", err)
	}
	if err := db.Seed(ctx); err != nil {
		return fmt.Errorf("reseed load failed: %w", err)
	}
	return nil
}
