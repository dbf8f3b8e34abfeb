// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

/*
Package api serves the recommendation engine over HTTP.

Routes:

	GET  /api/v1/health            liveness, catalog stats, engine counters
	GET  /api/v1/health/ready      catalog loaded and reranker breaker not open
	POST /api/v1/recommend         best outfit for a closet and context
	POST /api/v1/score             deterministic score breakdown for one outfit
	GET  /api/v1/recommendations   recent served recommendations, newest first
	GET  /metrics                  Prometheus exposition

Responses use the models.APIResponse envelope, with two exceptions kept for
existing clients: a successful /recommend returns the flat recommendation
body, and a closet with no valid combination returns 200 with
{"error":"no valid combination"}.

Error mapping:

	validation failure              400 VALIDATION_ERROR
	closet over the configured cap  400 CLOSET_TOO_LARGE
	request deadline passed         504 TIMEOUT
	reranker failed, no fallback    502 RERANKER_ERROR
	history store failure           500 STORAGE_ERROR

Middleware order: request ID, real IP, panic recovery, access log, CORS,
compression, then per-group rate limiting, Prometheus metrics and the
request timeout.
*/
package api
