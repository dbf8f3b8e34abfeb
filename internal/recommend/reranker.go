// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import (
	"context"
	"fmt"
	"math"
)

// Candidate is one enumerated outfit with its rendered forms.
type Candidate struct {
	Outfit      Outfit
	Description string
	Prompt      string

	// Score is the deterministic heuristic score of the outfit.
	Score int
}

// Reranker predicts how appropriate each candidate is for the context.
// Implementations answer the whole batch in a single call and return exactly
// one probability in [0,1] per candidate, in order.
type Reranker interface {
	Name() string
	Probabilities(ctx context.Context, c Context, candidates []Candidate) ([]float64, error)
}

// CheckProbabilities validates a reranker answer against the candidate count.
func CheckProbabilities(probs []float64, n int) error {
	if len(probs) != n {
		return fmt.Errorf("%w: got %d, want %d", ErrProbabilityCount, len(probs), n)
	}
	for i, p := range probs {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%w: candidate %d = %v", ErrInvalidProbability, i, p)
		}
	}
	return nil
}

// SelectBest returns the index of the highest probability. Ties go to the
// earliest index. It returns -1 for an empty slice.
func SelectBest(probs []float64) int {
	best := -1
	for i, p := range probs {
		if best < 0 || p > probs[best] {
			best = i
		}
	}
	return best
}
