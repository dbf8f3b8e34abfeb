// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

// Package reranking implements the rerankers the recommendation engine calls
// once per request with every enumerated candidate.
//
// # Overview
//
// The engine hands a reranker the whole candidate batch and keeps the
// candidate with the highest probability:
//
//	Generator -> Candidates -> Reranker -> argmax (earliest wins ties)
//
// # Available Rerankers
//
// HTTPClient:
//   - POSTs {"prompts": [...]} to an external model server
//   - Expects {"probabilities": [...]}, one value in [0,1] per prompt
//   - Guarded by a circuit breaker (gobreaker) and a token-bucket limiter
//
// Heuristic:
//   - Logistic over the deterministic outfit score
//   - Needs no external service
//
// # Decorators
//
// Fallback tries a primary reranker and answers from a secondary one when the
// primary fails for any reason other than the request context ending.
//
// Cached memoizes probabilities per prompt and sends only cache misses
// upstream, still as one batch.
//
// # Usage Example
//
//	primary, err := reranking.NewHTTPClient(reranking.DefaultHTTPConfig(url), logger)
//	if err != nil {
//	    return err
//	}
//	var r recommend.Reranker = reranking.NewCached(primary, 10000, 10*time.Minute)
//	r = reranking.NewFallback(r, reranking.NewHeuristic(), logger)
//	engine, err := recommend.NewEngine(cfg, index, r, logger)
package reranking
