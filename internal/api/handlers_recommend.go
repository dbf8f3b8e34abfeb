// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/wardrobe/internal/catalog"
	"github.com/tomtom215/wardrobe/internal/logging"
	"github.com/tomtom215/wardrobe/internal/models"
	"github.com/tomtom215/wardrobe/internal/recommend"
	"github.com/tomtom215/wardrobe/internal/validation"
)

// ErrUnknownItem means an outfit names an id missing from the catalog.
var ErrUnknownItem = errors.New("unknown item id")

// Recommend returns the most appropriate outfit from the posted closet.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondBadRequest(w, r, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	resp, err := h.engine.Recommend(r.Context(), recommend.Request{
		RequestID: logging.RequestIDFromContext(r.Context()),
		Closet:    req.Closet,
		Context:   req.Context(),
	})
	if errors.Is(err, recommend.ErrEmptyCandidateSet) {
		writeJSON(w, r, http.StatusOK, &models.LegacyError{Error: recommend.ErrEmptyCandidateSet.Error()})
		return
	}
	if err != nil {
		status, apiErr := recommendError(err)
		respondError(w, r, status, apiErr, err)
		return
	}

	writeJSON(w, r, http.StatusOK, resp)
}

// Score returns the deterministic breakdown of one explicit outfit.
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.ScoreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondBadRequest(w, r, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	if req.Outfit.IsEmpty() {
		respondBadRequest(w, r, "outfit must name at least one item")
		return
	}

	resp, err := ScoreOutfit(h.engine.Scorer(), h.engine.Index(), req.Context(), req.Outfit)
	if err != nil {
		respondBadRequest(w, r, err.Error())
		return
	}
	respondSuccess(w, r, resp, start)
}

// ScoreOutfit builds the /score body for one outfit. An id missing from the
// catalog is ErrUnknownItem.
//
//nolint:gocritic // hugeParam: Context passed by value for immutability
func ScoreOutfit(scorer *recommend.Scorer, index *catalog.Index, c recommend.Context, o recommend.Outfit) (*models.ScoreResponse, error) {
	for _, id := range o.IDs() {
		if _, ok := index.ByID(id); !ok {
			return nil, fmt.Errorf("%w %d", ErrUnknownItem, id)
		}
	}
	breakdown := scorer.Breakdown(c, o)
	_, explanation := scorer.Explain(c, o)
	return &models.ScoreResponse{
		Score:           breakdown.Total,
		Breakdown:       breakdown,
		Explanation:     explanation,
		Description:     recommend.Describe(index, o),
		SuitableSeasons: recommend.SuitableSeasons(c.Temperature),
		ExpectedUsage:   index.Taxonomy().ExpectedUsage(c.Event),
	}, nil
}
