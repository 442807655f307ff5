// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package api

import (
	"errors"
	"net/http"

	"github.com/dietprefs/dietprefs/internal/database"
	"github.com/dietprefs/dietprefs/internal/models"
	"github.com/dietprefs/dietprefs/internal/search"
	"github.com/dietprefs/dietprefs/internal/validation"
)

// SearchVendors runs the search pipeline.
//
// @Summary Search vendors by preferences, location, tags and text
// @Tags vendors
// @Accept json
// @Produce json
// @Router /api/v1/vendors/search [post]
func (h *Handler) SearchVendors(w http.ResponseWriter, r *http.Request) {
	var dto SearchRequest
	if err := decodeBody(r, &dto); err != nil {
		WriteError(w, r, http.StatusBadRequest, CodeBadRequest, err.Error(), nil)
		return
	}

	req, err := dto.toSearchRequest(h.cfg)
	if err != nil {
		var verr *validation.RequestValidationError
		if errors.As(err, &verr) {
			WriteValidationError(w, r, "invalid search request", verr.Errors)
			return
		}
		WriteError(w, r, http.StatusBadRequest, CodeBadRequest, err.Error(), nil)
		return
	}

	resp, err := h.engine.Search(r.Context(), req)
	if err != nil {
		WriteInternalError(w, r, err)
		return
	}

	WriteSuccessWithPagination(w, r, resp, PaginationMeta{
		Page:       req.Page,
		PageSize:   req.PageSize,
		Total:      resp.Total,
		TotalPages: search.TotalPages(resp.Total, req.PageSize),
	})
}

// GetVendor returns one vendor with its menu.
//
// @Summary Get vendor detail
// @Tags vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Router /api/v1/vendors/{id} [get]
func (h *Handler) GetVendor(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, CodeBadRequest, err.Error(), nil)
		return
	}

	vendor, err := h.db.GetVendor(r.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		WriteNotFound(w, r, "vendor not found")
		return
	}
	if err != nil {
		WriteInternalError(w, r, err)
		return
	}
	WriteSuccess(w, r, vendor)
}

// AnnotatedItem is an item plus its attribute names and per-user match
// flags. Match flags are only present when the corresponding user sent
// any constraints.
type AnnotatedItem struct {
	models.Item
	Attributes   []string `json:"attributes"`
	MatchesUser1 *bool    `json:"matches_user1,omitempty"`
	MatchesUser2 *bool    `json:"matches_user2,omitempty"`
}

// GetVendorItems returns a vendor's menu. When either user sends
// constraints, only items matching at least one user are returned,
// annotated with per-user match flags. Without constraints the whole
// menu is returned unannotated.
//
// @Summary List vendor items with match annotations
// @Tags vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Param user1_prefs query string false "Comma-separated preference names"
// @Param user1_max_price query number false "User 1 price ceiling"
// @Param user2_prefs query string false "Comma-separated preference names"
// @Param user2_max_price query number false "User 2 price ceiling"
// @Router /api/v1/vendors/{id}/items [get]
func (h *Handler) GetVendorItems(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, CodeBadRequest, err.Error(), nil)
		return
	}

	query := r.URL.Query()
	user1Prefs := commaList(query.Get("user1_prefs"))
	user2Prefs := commaList(query.Get("user2_prefs"))
	user1Max, err := priceParam(query.Get("user1_max_price"))
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, CodeBadRequest, err.Error(), nil)
		return
	}
	user2Max, err := priceParam(query.Get("user2_max_price"))
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, CodeBadRequest, err.Error(), nil)
		return
	}

	items, err := h.db.GetVendorItems(r.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		WriteNotFound(w, r, "vendor not found")
		return
	}
	if err != nil {
		WriteInternalError(w, r, err)
		return
	}

	user1 := search.UserProfile{Preferences: user1Prefs, MaxPrice: user1Max}
	user2 := search.UserProfile{Preferences: user2Prefs, MaxPrice: user2Max}

	filtering := user1.Active() || user2.Active()

	annotated := make([]AnnotatedItem, 0, len(items))
	for i := range items {
		item := AnnotatedItem{Item: items[i], Attributes: items[i].Attributes.Names()}
		keep := !filtering
		if user1.Active() {
			m := search.ItemMatches(&items[i], user1.Preferences, user1.MaxPrice)
			item.MatchesUser1 = &m
			keep = keep || m
		}
		if user2.Active() {
			m := search.ItemMatches(&items[i], user2.Preferences, user2.MaxPrice)
			item.MatchesUser2 = &m
			keep = keep || m
		}
		if keep {
			annotated = append(annotated, item)
		}
	}
	WriteSuccess(w, r, annotated)
}
