// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package api

import (
	"context"
	"time"

	"github.com/tomtom215/wardrobe/internal/history"
	"github.com/tomtom215/wardrobe/internal/recommend"
)

// maxBodyBytes bounds request bodies. A 1000 item closet is well below it.
const maxBodyBytes = 1 << 20

// HistoryLister reads served recommendations, newest first.
type HistoryLister interface {
	List(ctx context.Context, limit int) ([]history.Record, error)
}

// ReadinessChecker reports whether a dependency can take traffic.
type ReadinessChecker interface {
	Ready() bool
}

// Handler holds the dependencies of every endpoint.
type Handler struct {
	engine    *recommend.Engine
	history   HistoryLister
	reranker  ReadinessChecker
	version   string
	startTime time.Time
}

// HandlerOption customizes a Handler.
type HandlerOption func(*Handler)

// WithHistory enables GET /api/v1/recommendations.
func WithHistory(h HistoryLister) HandlerOption {
	return func(handler *Handler) {
		handler.history = h
	}
}

// WithRerankerReadiness makes readiness depend on the reranker, typically
// the circuit breaker of the HTTP client.
func WithRerankerReadiness(r ReadinessChecker) HandlerOption {
	return func(handler *Handler) {
		handler.reranker = r
	}
}

// WithVersion sets the version reported by the health endpoint.
func WithVersion(v string) HandlerOption {
	return func(handler *Handler) {
		handler.version = v
	}
}

// NewHandler creates the endpoint handlers for engine.
func NewHandler(engine *recommend.Engine, opts ...HandlerOption) *Handler {
	h := &Handler{
		engine:    engine,
		version:   "dev",
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
