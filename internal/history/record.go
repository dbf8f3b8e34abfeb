// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package history

import (
	"time"

	"github.com/tomtom215/wardrobe/internal/recommend"
)

// Record is one served recommendation.
type Record struct {
	ID          string            `json:"id"`
	RequestID   string            `json:"request_id"`
	CreatedAt   time.Time         `json:"created_at"`
	Context     recommend.Context `json:"context"`
	IDs         []int             `json:"ids"`
	Description string            `json:"description"`
	Probability float64           `json:"probability"`
	Reason      string            `json:"reason"`
	Reranker    string            `json:"reranker,omitempty"`
}

// FromResponse builds a record from an engine response. The ID is left empty
// for Save to assign.
func FromResponse(resp *recommend.Response) Record {
	return Record{
		RequestID:   resp.RequestID,
		CreatedAt:   resp.CreatedAt,
		Context:     resp.Context,
		IDs:         append([]int(nil), resp.Best.IDs...),
		Description: resp.Best.Description,
		Probability: resp.BestScore,
		Reason:      resp.Explanation,
		Reranker:    resp.Reranker,
	}
}
