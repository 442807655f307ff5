// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dietprefs/dietprefs/internal/middleware"
)

// SetupChi assembles the router: global middleware, health and metrics
// endpoints, and the versioned API.
func (h *Handler) SetupChi() http.Handler {
	m := NewChiMiddleware(h.cfg)

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.PrometheusMetrics)
	r.Use(m.CORS())

	// Probes stay outside the rate limiter so orchestrators are never
	// throttled.
	r.Get("/health", h.Health)
	r.Get("/health/live", h.Live)
	r.Get("/health/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(m.RateLimit())

		r.Get("/config", h.GetAppConfig)

		r.Route("/vendors", func(r chi.Router) {
			r.Post("/search", h.SearchVendors)
			r.Get("/{id}", h.GetVendor)
			r.Get("/{id}/items", h.GetVendorItems)
		})

		r.Route("/items", func(r chi.Router) {
			r.With(m.RateLimitWrite()).Post("/{id}/vote", h.VoteOnItem)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(m.RateLimitWrite())
			r.Post("/reseed", h.Reseed)
		})
	})

	return r
}
