// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/wardrobe/internal/history"
	"github.com/tomtom215/wardrobe/internal/models"
	"github.com/tomtom215/wardrobe/internal/validation"
)

// Recommendations lists recently served recommendations, newest first.
// The limit query parameter defaults to history.DefaultListLimit.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.history == nil {
		respondError(w, r, http.StatusServiceUnavailable, &models.APIError{
			Code:    CodeHistoryDisabled,
			Message: "recommendation history is disabled",
		}, nil)
		return
	}

	query := models.HistoryQuery{Limit: history.DefaultListLimit}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			respondBadRequest(w, r, "limit must be an integer")
			return
		}
		query.Limit = limit
	}
	if verr := validation.ValidateStruct(&query); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	records, err := h.history.List(r.Context(), query.Limit)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, &models.APIError{
			Code:    CodeStorage,
			Message: "failed to read recommendation history",
		}, err)
		return
	}
	if records == nil {
		records = []history.Record{}
	}

	respondSuccess(w, r, &models.HistoryResponse{Records: records, Count: len(records)}, start)
}
