// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

// Package recommend turns a closet of catalog items and a situational Context
// into the single most appropriate outfit.
//
// # Pipeline
//
//	closet ids -> ClosetClassifier -> Generator (exhaustive skeletons)
//	           -> Describe / Prompt -> Reranker (one batched call)
//	           -> SelectBest (earliest max) -> Response
//
// The Scorer is the deterministic heuristic used to explain winners, to label
// synthetic data and as the input of the heuristic fallback reranker. It is a
// pure function of (Context, Outfit) and the read-only catalog.
//
// # Determinism
//
// Candidate enumeration order is fixed (top x bottom x shoes, then
// top x bottom x outer x shoes, last slot varying fastest). Ties in reranker
// probability go to the earliest candidate, so identical inputs always yield
// the same winner.
//
// # Thread Safety
//
// Engine, Scorer and Generator hold no mutable state beyond atomic counters
// and may be shared across concurrent requests.
package recommend
