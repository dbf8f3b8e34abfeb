// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

/*
Package middleware provides the HTTP middleware shared by every API route.

Key Components:

  - RequestID: reuses or generates X-Request-ID and stores it in the context
  - AccessLog: one zerolog line per request with status and latency
  - PrometheusMetrics: request counter and latency histogram labelled by route pattern

Middleware Stack:

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(logger))
	r.Use(middleware.PrometheusMetrics)

PrometheusMetrics labels requests with the chi route pattern
(/api/v1/recommend) rather than the raw path, which keeps label cardinality
bounded.
*/
package middleware
