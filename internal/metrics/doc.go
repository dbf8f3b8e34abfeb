// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

// Package metrics declares the Prometheus collectors exported on /metrics.
//
// Collectors are package-level promauto values registered on the default
// registry. Record* helpers keep label sets consistent across callers.
package metrics
