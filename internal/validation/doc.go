// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

// Package validation wraps go-playground/validator v10 with a thread-safe
// singleton, the weather custom tag and messages keyed by JSON field name.
//
// # Usage
//
//	var req models.RecommendRequest
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// # Custom Tags
//
//   - weather: one of recommend.Conditions (Sunny, Rainy, Cloudy, ...)
package validation
