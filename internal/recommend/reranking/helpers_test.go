// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package reranking

import (
	"context"
	"fmt"
	"sync"

	"github.com/tomtom215/wardrobe/internal/recommend"
)

var testContext = recommend.Context{Event: "Office Meeting", Temperature: 20, Condition: "Cloudy", Gender: "Men"}

func candidates(n int) []recommend.Candidate {
	out := make([]recommend.Candidate, n)
	for i := range out {
		desc := fmt.Sprintf("Top(Shirts #%d)", i+1)
		out[i] = recommend.Candidate{
			Description: desc,
			Prompt:      recommend.Prompt(testContext, desc),
			Score:       i * 10,
		}
	}
	return out
}

// stubReranker returns fn's answer and records each batch size.
type stubReranker struct {
	mu      sync.Mutex
	batches []int
	fn      func(candidates []recommend.Candidate) ([]float64, error)
}

func (s *stubReranker) Name() string { return "stub" }

//nolint:gocritic // hugeParam: matches Reranker interface
func (s *stubReranker) Probabilities(_ context.Context, _ recommend.Context, cands []recommend.Candidate) ([]float64, error) {
	s.mu.Lock()
	s.batches = append(s.batches, len(cands))
	s.mu.Unlock()
	return s.fn(cands)
}

func (s *stubReranker) calls() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.batches...)
}

func ramp(cands []recommend.Candidate) ([]float64, error) {
	probs := make([]float64, len(cands))
	for i := range probs {
		probs[i] = float64(i+1) / float64(len(cands)+1)
	}
	return probs, nil
}
