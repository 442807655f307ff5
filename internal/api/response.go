// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

// Package api implements the HTTP surface: routing, request parsing,
// validation and the JSON response envelope.
package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/dietprefs/dietprefs/internal/logging"
)

// APIResponse is the uniform envelope for all JSON responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *APIMeta    `json:"meta,omitempty"`
}

// APIError carries a machine-readable code and a human message.
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// APIMeta holds response metadata such as pagination.
type APIMeta struct {
	Pagination *PaginationMeta `json:"pagination,omitempty"`
}

// PaginationMeta describes one page of a list response.
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Error codes used across the API.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeBadRequest      = "BAD_REQUEST"
	CodeInternalError   = "INTERNAL_ERROR"
)

// WriteSuccess writes a 200 envelope with data.
func WriteSuccess(w http.ResponseWriter, r *http.Request, data interface{}) {
	writeJSON(w, r, http.StatusOK, APIResponse{Success: true, Data: data})
}

// WriteSuccessWithPagination writes a 200 list envelope with
// pagination metadata.
func WriteSuccessWithPagination(w http.ResponseWriter, r *http.Request, data interface{}, pagination PaginationMeta) {
	writeJSON(w, r, http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		Meta:    &APIMeta{Pagination: &pagination},
	})
}

// WriteError writes an error envelope with the given status.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string, details interface{}) {
	writeJSON(w, r, status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: message, Details: details},
	})
}

// WriteNotFound writes a 404 envelope.
func WriteNotFound(w http.ResponseWriter, r *http.Request, message string) {
	WriteError(w, r, http.StatusNotFound, CodeNotFound, message, nil)
}

// WriteValidationError writes a 422 envelope with field details.
func WriteValidationError(w http.ResponseWriter, r *http.Request, message string, details interface{}) {
	WriteError(w, r, http.StatusUnprocessableEntity, CodeValidationError, message, details)
}

// WriteInternalError writes a 500 envelope and logs the cause. The
// cause never reaches the client.
func WriteInternalError(w http.ResponseWriter, r *http.Request, err error) {
	logging.Ctx(r.Context()).Error().Err(err).
		Str("path", r.URL.Path).
		Msg("Request failed")
	WriteError(w, r, http.StatusInternalServerError, CodeInternalError, "internal server error", nil)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode response")
	}
}
