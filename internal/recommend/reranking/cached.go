// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package reranking

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/wardrobe/internal/cache"
	"github.com/tomtom215/wardrobe/internal/metrics"
	"github.com/tomtom215/wardrobe/internal/recommend"
)

// Cached memoizes probabilities by prompt. Prompts embed the context, so a
// hit is only possible for the same outfit under the same conditions.
type Cached struct {
	next  recommend.Reranker
	cache *cache.LRU[string, float64]
}

// NewCached wraps next with an LRU of the given capacity and ttl.
func NewCached(next recommend.Reranker, capacity int, ttl time.Duration) *Cached {
	return &Cached{
		next:  next,
		cache: cache.NewLRU[string, float64](capacity, ttl),
	}
}

// Name implements recommend.Reranker.
func (c *Cached) Name() string {
	return c.next.Name()
}

// Stats returns the cache counters.
func (c *Cached) Stats() cache.Stats {
	return c.cache.Stats()
}

// Probabilities serves hits from the cache and sends misses upstream in one batch.
//
//nolint:gocritic // hugeParam: Context passed by value for immutability
func (c *Cached) Probabilities(ctx context.Context, rc recommend.Context, candidates []recommend.Candidate) ([]float64, error) {
	probs := make([]float64, len(candidates))
	var missIdx []int
	for i := range candidates {
		if p, ok := c.cache.Get(candidates[i].Prompt); ok {
			probs[i] = p
			continue
		}
		missIdx = append(missIdx, i)
	}
	metrics.RerankerCacheHits.Add(float64(len(candidates) - len(missIdx)))
	metrics.RerankerCacheMisses.Add(float64(len(missIdx)))

	if len(missIdx) == 0 {
		return probs, nil
	}

	misses := make([]recommend.Candidate, len(missIdx))
	for j, i := range missIdx {
		misses[j] = candidates[i]
	}
	fresh, err := c.next.Probabilities(ctx, rc, misses)
	if err != nil {
		return nil, err
	}
	if err := recommend.CheckProbabilities(fresh, len(misses)); err != nil {
		return nil, fmt.Errorf("%s: %w", c.next.Name(), err)
	}
	for j, i := range missIdx {
		probs[i] = fresh[j]
		c.cache.Add(candidates[i].Prompt, fresh[j])
	}
	return probs, nil
}
