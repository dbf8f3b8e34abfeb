// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package reranking

import (
	"context"
	"math"

	"github.com/tomtom215/wardrobe/internal/recommend"
)

// heuristicScale flattens the logistic so a 10 point score gap moves the
// probability by roughly a quarter.
const heuristicScale = 10.0

// Heuristic maps each candidate's deterministic score through a logistic.
type Heuristic struct{}

// NewHeuristic returns the score-based reranker.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Name implements recommend.Reranker.
func (h *Heuristic) Name() string {
	return "heuristic"
}

// Probabilities implements recommend.Reranker.
//
//nolint:gocritic // hugeParam: Context passed by value for immutability
func (h *Heuristic) Probabilities(ctx context.Context, _ recommend.Context, candidates []recommend.Candidate) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	probs := make([]float64, len(candidates))
	for i := range candidates {
		probs[i] = logistic(float64(candidates[i].Score))
	}
	return probs, nil
}

func logistic(score float64) float64 {
	return 1 / (1 + math.Exp(-score/heuristicScale))
}
