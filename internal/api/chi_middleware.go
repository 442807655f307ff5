// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/dietprefs/dietprefs/internal/config"
)

// ChiMiddleware builds the router's middleware from config.
type ChiMiddleware struct {
	cfg *config.Config
}

// NewChiMiddleware creates the middleware factory.
func NewChiMiddleware(cfg *config.Config) *ChiMiddleware {
	return &ChiMiddleware{cfg: cfg}
}

// CORS allows the configured origins. The API is read-mostly and
// unauthenticated, so credentials stay disabled.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   m.cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}

// RateLimit throttles all requests per client IP.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	limit := m.cfg.RateLimit.RequestsPerMinute
	if limit <= 0 {
		limit = 300
	}
	return httprate.LimitByIP(limit, time.Minute)
}

// RateLimitWrite applies the tighter write-endpoint limit. Votes and
// reseeds mutate state and get a smaller budget.
func (m *ChiMiddleware) RateLimitWrite() func(http.Handler) http.Handler {
	limit := m.cfg.RateLimit.WriteRequestsPerMinute
	if limit <= 0 {
		limit = 60
	}
	return httprate.LimitByIP(limit, time.Minute)
}
