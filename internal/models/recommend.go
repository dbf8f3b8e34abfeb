// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package models

import (
	"github.com/tomtom215/wardrobe/internal/catalog"
	"github.com/tomtom215/wardrobe/internal/history"
	"github.com/tomtom215/wardrobe/internal/recommend"
)

// ContextRequest is the occasion part of a request.
type ContextRequest struct {
	Event       string   `json:"event" validate:"required,max=100"`
	Temperature *float64 `json:"temperature" validate:"required,gte=-60,lte=60"`
	Condition   string   `json:"condition" validate:"required,weather"`
	Gender      string   `json:"gender" validate:"required,oneof=Men Women Unisex Boys Girls"`
}

// Context converts the request into an engine context. Validate first.
func (c *ContextRequest) Context() recommend.Context {
	var temp float64
	if c.Temperature != nil {
		temp = *c.Temperature
	}
	return recommend.Context{
		Event:       c.Event,
		Temperature: temp,
		Condition:   c.Condition,
		Gender:      c.Gender,
	}
}

// RecommendRequest is the body of POST /api/v1/recommend.
//
//	{"closet": [5, 6, 7, 9], "event": "Office Meeting", "temperature": 12,
//	 "condition": "Cloudy", "gender": "Men"}
type RecommendRequest struct {
	Closet []int `json:"closet" validate:"required,min=1,max=1000,dive,gt=0"`
	ContextRequest
}

// RecommendResponse keeps the legacy fields and adds the explanation,
// heuristic score and request ID.
type RecommendResponse = recommend.Response

// ScoreRequest is the body of POST /api/v1/score.
type ScoreRequest struct {
	Outfit recommend.Outfit `json:"outfit"`
	ContextRequest
}

// ScoreResponse reports the deterministic score of one outfit.
type ScoreResponse struct {
	Score           int                 `json:"score"`
	Breakdown       recommend.Breakdown `json:"breakdown"`
	Explanation     string              `json:"explanation"`
	Description     string              `json:"description,omitempty"`
	SuitableSeasons []string            `json:"suitable_seasons"`
	ExpectedUsage   string              `json:"expected_usage"`
}

// HealthResponse is the liveness body.
type HealthResponse struct {
	Status      string          `json:"status"`
	Version     string          `json:"version"`
	Uptime      float64         `json:"uptime_seconds"`
	Catalog     catalog.Stats   `json:"catalog"`
	Reranker    string          `json:"reranker"`
	EngineStats recommend.Stats `json:"engine"`
}

// ReadyResponse is the readiness body.
type ReadyResponse struct {
	Ready  bool              `json:"ready"`
	Checks map[string]string `json:"checks"`
}

// HistoryQuery holds GET /api/v1/recommendations parameters.
type HistoryQuery struct {
	Limit int `validate:"min=1,max=1000"`
}

// HistoryResponse lists recent recommendations, newest first.
type HistoryResponse struct {
	Records []history.Record `json:"records"`
	Count   int              `json:"count"`
}
