// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

// Package cache provides a bounded, TTL-aware LRU used to memoize reranker
// probabilities per rendered candidate prompt.
package cache
