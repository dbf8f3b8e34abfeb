// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/wardrobe/internal/models"
)

// Health reports liveness with catalog and engine statistics.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, r, &models.HealthResponse{
		Status:      "healthy",
		Version:     h.version,
		Uptime:      time.Since(h.startTime).Seconds(),
		Catalog:     h.engine.Index().Stats(),
		Reranker:    h.engine.RerankerName(),
		EngineStats: h.engine.Stats(),
	}, start)
}

// HealthReady returns 200 when the catalog holds items and the reranker can
// take traffic, 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := true
	checks := make(map[string]string, 2)

	if h.engine.Index().Len() > 0 {
		checks["catalog"] = "ok"
	} else {
		checks["catalog"] = "empty"
		ready = false
	}

	switch {
	case h.reranker == nil:
		checks["reranker"] = "ok"
	case h.reranker.Ready():
		checks["reranker"] = "ok"
	default:
		checks["reranker"] = "circuit open"
		ready = false
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, r, status, &models.ReadyResponse{Ready: ready, Checks: checks})
}
