// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/dietprefs/dietprefs/internal/config"
	"github.com/dietprefs/dietprefs/internal/search"
	"github.com/dietprefs/dietprefs/internal/validation"
)

// SearchRequest is the wire shape of POST /vendors/search.
type SearchRequest struct {
	User1 search.UserProfile `json:"user1"`
	User2 search.UserProfile `json:"user2"`

	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	RadiusMiles float64  `json:"radius_miles,omitempty" validate:"omitempty,gte=0,lte=500"`

	Tags  []string `json:"tags,omitempty" validate:"max=20"`
	Query string   `json:"query,omitempty" validate:"max=200"`

	SortBy    string `json:"sort_by,omitempty" validate:"omitempty,oneof=rating distance item_count"`
	SortOrder string `json:"sort_order,omitempty" validate:"omitempty,oneof=asc desc"`
	Page      int    `json:"page,omitempty" validate:"omitempty,gte=1"`
	PageSize  int    `json:"page_size,omitempty" validate:"omitempty,gte=1"`
}

// toSearchRequest validates the DTO and fills defaults from config.
func (sr *SearchRequest) toSearchRequest(cfg *config.Config) (*search.Request, error) {
	if err := validation.ValidateStruct(sr); err != nil {
		return nil, err
	}
	if (sr.Latitude == nil) != (sr.Longitude == nil) {
		return nil, &validation.RequestValidationError{Errors: []validation.FieldError{
			{Field: "latitude", Message: "latitude and longitude must be supplied together"},
		}}
	}
	// The page size ceiling is config-driven, so it cannot live in a
	// static validate tag.
	if sr.PageSize > cfg.Search.MaxPageSize {
		return nil, &validation.RequestValidationError{Errors: []validation.FieldError{
			{Field: "page_size", Message: fmt.Sprintf("page_size must be at most %d", cfg.Search.MaxPageSize)},
		}}
	}

	req := &search.Request{
		User1:       sr.User1,
		User2:       sr.User2,
		Latitude:    sr.Latitude,
		Longitude:   sr.Longitude,
		RadiusMiles: sr.RadiusMiles,
		Tags:        sr.Tags,
		Query:       sr.Query,
		SortBy:      sr.SortBy,
		SortOrder:   sr.SortOrder,
		Page:        sr.Page,
		PageSize:    sr.PageSize,
	}

	if req.RadiusMiles <= 0 {
		req.RadiusMiles = cfg.Search.DefaultRadiusMiles
	}
	if req.SortBy == "" {
		req.SortBy = cfg.Search.DefaultSortBy
	}
	if req.SortOrder == "" {
		req.SortOrder = cfg.Search.DefaultSortOrder
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = cfg.Search.DefaultPageSize
	}
	return req, nil
}

// VoteRequest is the wire shape of POST /items/{id}/vote.
type VoteRequest struct {
	VoteType string `json:"vote_type" validate:"required,oneof=up down"`
}

// decodeBody decodes a JSON request body into dst, rejecting unknown
// fields.
func decodeBody(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// idParam parses the {id} URL parameter.
func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// commaList splits a comma-separated query parameter, dropping empty
// entries.
func commaList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}

// priceParam parses an optional float query parameter.
func priceParam(raw string) (*float64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("invalid price %q", raw)
	}
	return &v, nil
}
