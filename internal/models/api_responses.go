// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package models

import "time"

// APIResponse is the envelope used by every JSON endpoint except the legacy
// empty-closet body.
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "closet is required"
//	  },
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata describes how the response was produced.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	RequestID   string    `json:"request_id,omitempty"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError carries a machine-readable code and a human message.
//
// Codes:
//   - VALIDATION_ERROR: invalid input (400)
//   - CLOSET_TOO_LARGE: closet exceeds the configured limit (400)
//   - RERANKER_ERROR: the reranker failed and no fallback answered (502)
//   - TIMEOUT: the request deadline passed (504)
//   - STORAGE_ERROR: history store failure (500)
//   - INTERNAL_ERROR: anything else (500)
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// LegacyError is the bare body returned when no outfit can be assembled.
type LegacyError struct {
	Error string `json:"error"`
}
