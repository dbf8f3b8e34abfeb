// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/wardrobe/internal/models"
	"github.com/tomtom215/wardrobe/internal/recommend"
)

// recommendError maps an engine error to a status and API error.
// ErrEmptyCandidateSet is not an error here; callers handle it first.
func recommendError(err error) (int, *models.APIError) {
	switch {
	case errors.Is(err, recommend.ErrTooManyCandidates):
		return http.StatusBadRequest, &models.APIError{Code: CodeClosetTooLarge, Message: err.Error()}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout, &models.APIError{Code: CodeTimeout, Message: "recommendation timed out"}
	case errors.Is(err, recommend.ErrReranker):
		return http.StatusBadGateway, &models.APIError{Code: CodeReranker, Message: "reranker unavailable"}
	default:
		return http.StatusInternalServerError, &models.APIError{Code: CodeInternal, Message: "internal error"}
	}
}
