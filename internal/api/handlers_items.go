// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package api

import (
	"errors"
	"net/http"

	"github.com/dietprefs/dietprefs/internal/database"
	"github.com/dietprefs/dietprefs/internal/validation"
)

// VoteOnItem applies a crowd vote to one menu item.
//
// @Summary Vote on a menu item
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Router /api/v1/items/{id}/vote [post]
func (h *Handler) VoteOnItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, CodeBadRequest, err.Error(), nil)
		return
	}

	var dto VoteRequest
	if err := decodeBody(r, &dto); err != nil {
		WriteError(w, r, http.StatusBadRequest, CodeBadRequest, err.Error(), nil)
		return
	}
	if err := validation.ValidateStruct(&dto); err != nil {
		var verr *validation.RequestValidationError
		if errors.As(err, &verr) {
			WriteValidationError(w, r, "invalid vote request", verr.Errors)
			return
		}
		WriteInternalError(w, r, err)
		return
	}

	vote, err := h.db.VoteOnItem(r.Context(), id, dto.VoteType)
	if errors.Is(err, database.ErrNotFound) {
		WriteNotFound(w, r, "item not found")
		return
	}
	if err != nil {
		WriteInternalError(w, r, err)
		return
	}
	WriteSuccess(w, r, vote)
}
