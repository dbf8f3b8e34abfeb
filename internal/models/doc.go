// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

/*
Package models defines the HTTP request and response shapes of the Wardrobe API.

Key Components:

  - APIResponse: standard envelope with status, data, metadata and error
  - RecommendRequest / RecommendResponse: POST /api/v1/recommend
  - ScoreRequest / ScoreResponse: POST /api/v1/score
  - HealthResponse / ReadyResponse: health endpoints
  - HistoryResponse: GET /api/v1/recommendations

Request structs carry validate tags checked by internal/validation.
*/
package models
