// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wardrobe_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wardrobe_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Catalog Metrics
	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wardrobe_catalog_items",
			Help: "Number of items in the loaded catalog index",
		},
	)

	CatalogDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wardrobe_catalog_dropped_total",
			Help: "Catalog rows excluded at load time",
		},
		[]string{"reason"},
	)

	// Recommendation Metrics
	RecommendCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wardrobe_recommend_candidates",
			Help:    "Number of candidate outfits enumerated per request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8), // 1 .. 16384
		},
	)

	RecommendEmpty = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wardrobe_recommend_empty_total",
			Help: "Requests whose closet produced no valid combination",
		},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wardrobe_recommend_duration_seconds",
			Help:    "End-to-end recommendation latency",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Reranker Metrics
	RerankerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wardrobe_reranker_requests_total",
			Help: "Batched reranker calls by outcome",
		},
		[]string{"reranker", "status"}, // status: success, failure, rejected
	)

	RerankerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wardrobe_reranker_duration_seconds",
			Help:    "Duration of batched reranker calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"reranker"},
	)

	RerankerBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wardrobe_reranker_breaker_state",
			Help: "Reranker circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	RerankerBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wardrobe_reranker_breaker_transitions_total",
			Help: "Reranker circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	RerankerFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wardrobe_reranker_fallbacks_total",
			Help: "Requests answered by the fallback reranker",
		},
	)

	RerankerCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wardrobe_reranker_cache_hits_total",
			Help: "Candidate probabilities served from cache",
		},
	)

	RerankerCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wardrobe_reranker_cache_misses_total",
			Help: "Candidate probabilities fetched upstream",
		},
	)

	// Dataset Metrics
	DatasetSamples = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wardrobe_dataset_samples_total",
			Help: "Generated dataset records by label",
		},
		[]string{"label"},
	)

	DatasetSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wardrobe_dataset_skipped_total",
			Help: "Dataset samples skipped by reason",
		},
		[]string{"reason"},
	)

	// History Metrics
	HistoryRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wardrobe_history_records_total",
			Help: "Recommendation history writes by outcome",
		},
		[]string{"status"},
	)
)

// RecordAPIRequest records one HTTP request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordReranker records one batched reranker call.
func RecordReranker(name string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	RerankerRequests.WithLabelValues(name, status).Inc()
	RerankerDuration.WithLabelValues(name).Observe(duration.Seconds())
}

// RecordRecommendation records the candidate count and latency of one request.
func RecordRecommendation(candidates int, duration time.Duration) {
	if candidates == 0 {
		RecommendEmpty.Inc()
	}
	RecommendCandidates.Observe(float64(candidates))
	RecommendDuration.Observe(duration.Seconds())
}
