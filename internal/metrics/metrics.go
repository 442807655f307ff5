// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

// Package metrics defines the Prometheus collectors for the service.
// Collectors are registered via promauto at package load.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dietprefs_api_requests_total",
		Help: "Total API requests by method, path and status code",
	}, []string{"method", "path", "status"})

	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dietprefs_api_request_duration_seconds",
		Help:    "API request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dietprefs_api_active_requests",
		Help: "In-flight API requests",
	})

	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dietprefs_search_duration_seconds",
		Help:    "End-to-end search pipeline latency",
		Buckets: prometheus.DefBuckets,
	})

	searchResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dietprefs_search_results",
		Help:    "Result counts per search before pagination",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
	})

	votesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dietprefs_votes_total",
		Help: "Item votes by direction",
	}, []string{"direction"})

	dbQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dietprefs_db_query_duration_seconds",
		Help:    "Store query latency by operation",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, path, status string, duration time.Duration) {
	apiRequestsTotal.WithLabelValues(method, path, status).Inc()
	apiRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(start bool) {
	if start {
		activeRequests.Inc()
	} else {
		activeRequests.Dec()
	}
}

// RecordSearch records one search pipeline execution.
func RecordSearch(duration time.Duration, resultCount int) {
	searchDuration.Observe(duration.Seconds())
	searchResults.Observe(float64(resultCount))
}

// RecordVote counts one applied vote.
func RecordVote(direction string) {
	votesTotal.WithLabelValues(direction).Inc()
}

// ObserveDBQuery records a store query's latency. Call with defer:
//
//	defer metrics.ObserveDBQuery("get_vendor", time.Now())
func ObserveDBQuery(operation string, start time.Time) {
	dbQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
