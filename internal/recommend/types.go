// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import (
	"context"
	"time"
)

// Request asks for the best outfit from a closet.
type Request struct {
	RequestID string
	Closet    []int
	Context   Context
}

// BestCombination is the winning outfit as rendered for the caller.
type BestCombination struct {
	Description string `json:"description"`
	IDs         []int  `json:"ids"`
}

// Response is the result of one recommendation.
type Response struct {
	RequestID       string          `json:"request_id"`
	Context         Context         `json:"-"`
	Best            BestCombination `json:"best_combination"`
	Outfit          Outfit          `json:"-"`
	BestScore       float64         `json:"best_score"`
	HeuristicScore  int             `json:"heuristic_score"`
	Explanation     string          `json:"explanation"`
	TotalEvaluated  int             `json:"total_combinations_evaluated"`
	ProcessingTime  float64         `json:"processing_time"`
	Reranker        string          `json:"reranker"`
	CreatedAt       time.Time       `json:"-"`
	UnplacedClosetN int             `json:"-"`
}

// ResultSink receives every served recommendation. Errors are logged, never
// returned to the caller.
type ResultSink interface {
	RecordServed(ctx context.Context, resp *Response) error
}

// Stats reports engine counters.
type Stats struct {
	Requests int64 `json:"requests"`
	Served   int64 `json:"served"`
	Empty    int64 `json:"empty"`
	Errors   int64 `json:"errors"`
}
