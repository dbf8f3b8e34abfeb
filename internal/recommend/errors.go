// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import "errors"

var (
	// ErrEmptyCandidateSet means the closet allows no valid skeleton.
	// Callers surface it as a "no valid combination" result.
	ErrEmptyCandidateSet = errors.New("no valid combination")

	// ErrTooManyCandidates means full enumeration would exceed the configured limit.
	ErrTooManyCandidates = errors.New("closet too large")

	// ErrProbabilityCount means a reranker returned the wrong number of probabilities.
	ErrProbabilityCount = errors.New("reranker returned wrong number of probabilities")

	// ErrReranker wraps every failure of the reranker call, including a bad
	// answer shape.
	ErrReranker = errors.New("reranker failed")

	// ErrInvalidProbability means a reranker returned a value outside [0,1].
	ErrInvalidProbability = errors.New("reranker returned probability outside [0,1]")
)
