// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/dietprefs/dietprefs/internal/config"
	"github.com/dietprefs/dietprefs/internal/database"
	"github.com/dietprefs/dietprefs/internal/search"
)

// setupTestServer builds a full router over a seeded in-memory store.
func setupTestServer(t *testing.T) http.Handler {
	t.Helper()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	cfg.Database.Path = ":memory:"
	cfg.Database.MaxMemory = "256MB"

	db, err := database.New(&cfg.Database)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.Seed(context.Background()); err != nil {
		t.Fatalf("Failed to seed database: %v", err)
	}

	engine := search.NewEngine(db, cfg.Location())
	return NewHandler(db, cfg, engine).SetupChi()
}

// doJSON performs a request and decodes the envelope.
func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var envelope map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
	}
	return rec, envelope
}

func TestSearchVendorsEndpoint(t *testing.T) {
	handler := setupTestServer(t)

	rec, envelope := doJSON(t, handler, http.MethodPost, "/api/v1/vendors/search", map[string]interface{}{
		"user1": map[string]interface{}{"preferences": []string{"vegan"}, "max_price": 15},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if envelope["success"] != true {
		t.Fatalf("Expected success envelope, got %v", envelope)
	}

	data := envelope["data"].(map[string]interface{})
	if data["user1_display"] != "vegan, under $15" {
		t.Errorf("Expected display string, got %v", data["user1_display"])
	}
	results := data["results"].([]interface{})
	if len(results) == 0 {
		t.Fatal("Expected vegan vendors in seed data")
	}
	first := results[0].(map[string]interface{})
	rating, ok := first["rating"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected rating object on result, got %v", first["rating"])
	}
	for _, key := range []string{"upvotes", "total_votes", "percentage"} {
		if _, ok := rating[key]; !ok {
			t.Errorf("Expected %s in rating, got %v", key, rating)
		}
	}
	if rating["total_votes"].(float64) <= 0 {
		t.Errorf("Expected vote sums from seed data, got %v", rating)
	}

	meta := envelope["meta"].(map[string]interface{})
	pagination := meta["pagination"].(map[string]interface{})
	if pagination["page"].(float64) != 1 {
		t.Errorf("Expected page 1, got %v", pagination["page"])
	}
}

func TestSearchVendorsValidation(t *testing.T) {
	handler := setupTestServer(t)

	// Latitude without longitude.
	rec, envelope := doJSON(t, handler, http.MethodPost, "/api/v1/vendors/search", map[string]interface{}{
		"latitude": 45.0,
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 for lone latitude, got %d", rec.Code)
	}
	errObj := envelope["error"].(map[string]interface{})
	if errObj["code"] != CodeValidationError {
		t.Errorf("Expected validation error code, got %v", errObj["code"])
	}

	// Unknown sort key.
	rec, _ = doJSON(t, handler, http.MethodPost, "/api/v1/vendors/search", map[string]interface{}{
		"sort_by": "popularity",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 for bad sort key, got %d", rec.Code)
	}

	// Page size beyond the configured maximum is rejected, not clamped.
	rec, envelope = doJSON(t, handler, http.MethodPost, "/api/v1/vendors/search", map[string]interface{}{
		"page_size": 500,
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 for oversized page_size, got %d", rec.Code)
	}
	errObj = envelope["error"].(map[string]interface{})
	if errObj["code"] != CodeValidationError {
		t.Errorf("Expected validation error code, got %v", errObj["code"])
	}

	// Malformed JSON body.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vendors/search", bytes.NewReader([]byte("{")))
	rec2 := httptest.NewRecorder()
	handler.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed body, got %d", rec2.Code)
	}
}

func TestGetVendorEndpoint(t *testing.T) {
	handler := setupTestServer(t)

	rec, envelope := doJSON(t, handler, http.MethodGet, "/api/v1/vendors/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	data := envelope["data"].(map[string]interface{})
	if data["name"] == "" {
		t.Error("Expected vendor name in response")
	}
	items := data["items"].([]interface{})
	if len(items) == 0 {
		t.Error("Expected vendor items in detail response")
	}

	rec, envelope = doJSON(t, handler, http.MethodGet, "/api/v1/vendors/999999", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown vendor, got %d", rec.Code)
	}
	errObj := envelope["error"].(map[string]interface{})
	if errObj["code"] != CodeNotFound {
		t.Errorf("Expected NOT_FOUND code, got %v", errObj["code"])
	}
}

func TestGetVendorItemsAnnotations(t *testing.T) {
	handler := setupTestServer(t)

	rec, envelope := doJSON(t, handler, http.MethodGet,
		"/api/v1/vendors/2/items?user1_prefs=vegan&user2_prefs=beef,unknown_pref", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	items := envelope["data"].([]interface{})
	if len(items) == 0 {
		t.Fatal("Expected items in response")
	}
	for _, raw := range items {
		item := raw.(map[string]interface{})
		if _, ok := item["matches_user1"]; !ok {
			t.Errorf("Expected matches_user1 annotation on item %v", item["name"])
		}
		if _, ok := item["matches_user2"]; !ok {
			t.Errorf("Expected matches_user2 annotation on item %v", item["name"])
		}
		if _, ok := item["attributes"]; !ok {
			t.Errorf("Expected attributes list on item %v", item["name"])
		}
	}

	// Without user params the annotations disappear.
	rec, envelope = doJSON(t, handler, http.MethodGet, "/api/v1/vendors/2/items", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	items = envelope["data"].([]interface{})
	for _, raw := range items {
		item := raw.(map[string]interface{})
		if _, ok := item["matches_user1"]; ok {
			t.Error("Expected no annotations without user constraints")
		}
	}
}

func TestGetVendorItemsFiltersNonMatches(t *testing.T) {
	handler := setupTestServer(t)

	// Vendor 1 has two vegetarian items and one beef item; the beef
	// item matches neither user and must be dropped.
	rec, envelope := doJSON(t, handler, http.MethodGet,
		"/api/v1/vendors/1/items?user1_prefs=vegetarian", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	items := envelope["data"].([]interface{})
	if len(items) != 2 {
		t.Fatalf("Expected 2 vegetarian items, got %d", len(items))
	}
	for _, raw := range items {
		item := raw.(map[string]interface{})
		if item["name"] == "Bison Hash" {
			t.Error("Non-matching item must not appear in a filtered menu")
		}
		if item["matches_user1"] != true {
			t.Errorf("Surviving item %v must match user1", item["name"])
		}
	}

	// Without constraints the full menu comes back.
	rec, envelope = doJSON(t, handler, http.MethodGet, "/api/v1/vendors/1/items", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if items = envelope["data"].([]interface{}); len(items) != 3 {
		t.Errorf("Expected full menu of 3 items, got %d", len(items))
	}
}

func TestVoteEndpoint(t *testing.T) {
	handler := setupTestServer(t)

	rec, envelope := doJSON(t, handler, http.MethodPost, "/api/v1/items/1/vote",
		map[string]string{"vote_type": "up"})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data := envelope["data"].(map[string]interface{})
	if data["item_id"].(float64) != 1 {
		t.Errorf("Expected item_id 1, got %v", data["item_id"])
	}
	if data["total_votes"].(float64) <= 0 {
		t.Errorf("Expected positive total votes, got %v", data["total_votes"])
	}

	rec, _ = doJSON(t, handler, http.MethodPost, "/api/v1/items/1/vote",
		map[string]string{"vote_type": "sideways"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 for invalid vote type, got %d", rec.Code)
	}

	rec, _ = doJSON(t, handler, http.MethodPost, "/api/v1/items/999999/vote",
		map[string]string{"vote_type": "up"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown item, got %d", rec.Code)
	}
}

func TestAppConfigEndpoint(t *testing.T) {
	handler := setupTestServer(t)

	rec, envelope := doJSON(t, handler, http.MethodGet, "/api/v1/config", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	data := envelope["data"].(map[string]interface{})
	pricing := data["pricing"].(map[string]interface{})
	options := pricing["options"].([]interface{})
	if len(options) != 6 || options[0].(float64) != 5 || options[5].(float64) != 30 {
		t.Errorf("Expected pricing options 5..30, got %v", options)
	}

	location := data["location"].(map[string]interface{})
	if location["latitude"].(float64) != 45.6770 {
		t.Errorf("Expected Bozeman default latitude, got %v", location["latitude"])
	}

	prefs := data["preferences"].([]interface{})
	if len(prefs) != 32 {
		t.Errorf("Expected 32 preference names, got %d", len(prefs))
	}
}

func TestReseedEndpoint(t *testing.T) {
	handler := setupTestServer(t)

	rec, envelope := doJSON(t, handler, http.MethodPost, "/api/v1/admin/reseed", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	data := envelope["data"].(map[string]interface{})
	if data["status"] != "reseeded" {
		t.Errorf("Expected reseeded status, got %v", data["status"])
	}
}

func TestHealthEndpoints(t *testing.T) {
	handler := setupTestServer(t)

	for _, path := range []string{"/health", "/health/live", "/health/ready"} {
		rec, envelope := doJSON(t, handler, http.MethodGet, path, nil)
		if rec.Code != http.StatusOK {
			t.Errorf("Expected 200 from %s, got %d", path, rec.Code)
		}
		if envelope["success"] != true {
			t.Errorf("Expected success from %s", path)
		}
	}
}

func TestRequestIDHeader(t *testing.T) {
	handler := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("Expected generated X-Request-ID header")
	}

	req = httptest.NewRequest(http.MethodGet, "/health/live", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Header().Get("X-Request-ID") != "test-id-123" {
		t.Errorf("Expected inbound request id to be echoed, got %q", rec.Header().Get("X-Request-ID"))
	}
}
