// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package search

import (
	"context"
	"testing"
	"time"

	"github.com/dietprefs/dietprefs/internal/database"
	"github.com/dietprefs/dietprefs/internal/models"
)

// fakeSource returns a fixed vendor set regardless of the query; the
// engine must enforce every rule itself.
type fakeSource struct {
	vendors   []models.Vendor
	lastQuery database.VendorQuery
}

func (f *fakeSource) VendorsForSearch(_ context.Context, q database.VendorQuery) ([]models.Vendor, error) {
	f.lastQuery = q
	out := make([]models.Vendor, len(f.vendors))
	copy(out, f.vendors)
	return out, nil
}

func engineFixture() *fakeSource {
	openHours := `{"monday": "09:00-17:00"}`
	return &fakeSource{vendors: []models.Vendor{
		{
			ID: 1, Name: "Vegan Corner", Address: "1 Elm St", Hours: openHours,
			Latitude: floatPtr(45.6780), Longitude: floatPtr(-111.0420),
			Items: []models.Item{
				withAttrs(models.Item{ID: 11, Upvotes: 9, TotalVotes: 10, Price: floatPtr(9)}, models.PrefVegan, models.PrefVegetarian),
				withAttrs(models.Item{ID: 12, Upvotes: 2, TotalVotes: 10, Price: floatPtr(14)}, models.PrefVegan),
			},
		},
		{
			ID: 2, Name: "Steak Pit", Address: "2 Oak St", Hours: `{"monday": "closed"}`,
			Latitude: floatPtr(45.6800), Longitude: floatPtr(-111.0400),
			Items: []models.Item{
				withAttrs(models.Item{ID: 21, Upvotes: 5, TotalVotes: 5, Price: floatPtr(25)}, models.PrefBeef, models.PrefHighProtein),
			},
		},
		{
			ID: 3, Name: "Far Away Diner", Address: "99 Remote Rd",
			Latitude: floatPtr(46.5958), Longitude: floatPtr(-112.0270),
			Items: []models.Item{
				withAttrs(models.Item{ID: 31, Upvotes: 1, TotalVotes: 2}, models.PrefVegan),
			},
		},
	}}
}

func withAttrs(item models.Item, attrs ...models.Preference) models.Item {
	for _, p := range attrs {
		item.Attributes[p] = true
	}
	return item
}

// fixedEngine pins the clock to a Monday noon UTC for open-now tests.
func fixedEngine(source VendorSource) *Engine {
	e := NewEngine(source, time.UTC)
	e.now = func() time.Time { return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC) }
	return e
}

func TestEngineSearchUnfiltered(t *testing.T) {
	source := engineFixture()
	engine := fixedEngine(source)

	resp, err := engine.Search(context.Background(), &Request{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if resp.Total != 3 {
		t.Errorf("Expected all 3 vendors, got %d", resp.Total)
	}
	if resp.User1Display != "" || resp.User2Display != "" {
		t.Errorf("Expected empty display strings, got %q and %q", resp.User1Display, resp.User2Display)
	}
}

func TestEngineSearchPreferenceAndDisplay(t *testing.T) {
	source := engineFixture()
	engine := fixedEngine(source)

	resp, err := engine.Search(context.Background(), &Request{
		User1:    UserProfile{Preferences: []string{"vegan"}, MaxPrice: floatPtr(15)},
		Page:     1,
		PageSize: 10,
	})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if resp.Total != 2 {
		t.Fatalf("Expected 2 vegan vendors, got %d", resp.Total)
	}
	if resp.User1Display != "vegan, under $15" {
		t.Errorf("Expected display 'vegan, under $15', got %q", resp.User1Display)
	}

	// The profile must also reach the SQL pre-filter.
	if !source.lastQuery.User1.Active {
		t.Error("Expected user1 profile to be pushed into the store query")
	}
	if len(source.lastQuery.User1.Preferences) != 1 || source.lastQuery.User1.Preferences[0] != models.PrefVegan {
		t.Errorf("Expected resolved vegan preference in query, got %v", source.lastQuery.User1.Preferences)
	}
}

func TestEngineSearchLocation(t *testing.T) {
	source := engineFixture()
	engine := fixedEngine(source)

	resp, err := engine.Search(context.Background(), &Request{
		Latitude:  floatPtr(45.6770),
		Longitude: floatPtr(-111.0429),
		Page:      1,
		PageSize:  10,
	})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	// Far Away Diner is ~80 miles out and must be dropped even though
	// the fake source returned it.
	if resp.Total != 2 {
		t.Fatalf("Expected 2 vendors within radius, got %d", resp.Total)
	}
	for _, result := range resp.Results {
		if result.DistanceMiles == nil {
			t.Errorf("Expected distance on vendor %d", result.Vendor.ID)
		}
	}
	if source.lastQuery.Box == nil {
		t.Error("Expected bounding box in the store query")
	}
}

func TestEngineSearchOpenNow(t *testing.T) {
	source := engineFixture()
	engine := fixedEngine(source)

	resp, err := engine.Search(context.Background(), &Request{
		Tags:     []string{"open"},
		Page:     1,
		PageSize: 10,
	})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	// Monday noon: Vegan Corner is open, Steak Pit is closed, Far Away
	// Diner has no hours at all.
	if resp.Total != 1 {
		t.Fatalf("Expected 1 open vendor, got %d", resp.Total)
	}
	if resp.Results[0].Vendor.ID != 1 {
		t.Errorf("Expected Vegan Corner, got vendor %d", resp.Results[0].Vendor.ID)
	}
	// The open tag must not leak into SQL.
	if len(source.lastQuery.Tags) != 0 {
		t.Errorf("Expected no SQL tags for open-only filter, got %v", source.lastQuery.Tags)
	}
}

func TestEngineSearchTextQuery(t *testing.T) {
	engine := fixedEngine(engineFixture())

	resp, err := engine.Search(context.Background(), &Request{
		Query:    "steak",
		Page:     1,
		PageSize: 10,
	})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if resp.Total != 1 || resp.Results[0].Vendor.ID != 2 {
		t.Fatalf("Expected only Steak Pit to match, got %d results", resp.Total)
	}
}

func TestEngineSearchUnknownTagsIgnored(t *testing.T) {
	engine := fixedEngine(engineFixture())

	resp, err := engine.Search(context.Background(), &Request{
		Tags:     []string{"spaceship", "underwater"},
		Page:     1,
		PageSize: 10,
	})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if resp.Total != 3 {
		t.Errorf("Unknown tags must not filter anything, got %d results", resp.Total)
	}
}

func TestEngineSearchPagination(t *testing.T) {
	engine := fixedEngine(engineFixture())

	resp, err := engine.Search(context.Background(), &Request{
		SortBy:   SortByRating,
		Page:     2,
		PageSize: 2,
	})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if resp.Total != 3 {
		t.Errorf("Expected total 3 before pagination, got %d", resp.Total)
	}
	if len(resp.Results) != 1 {
		t.Errorf("Expected 1 result on page 2, got %d", len(resp.Results))
	}
}
