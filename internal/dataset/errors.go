// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package dataset

import "errors"

var (
	// ErrRatioAttemptsExhausted means no attempt produced the forced label within the cap.
	ErrRatioAttemptsExhausted = errors.New("ratio attempts exhausted")

	// ErrNoPositive means too many consecutive contexts yielded no positive outfit.
	ErrNoPositive = errors.New("no positive outfit found")

	// ErrNoNegative means no violation could be mined from a positive.
	ErrNoNegative = errors.New("no hard negative available")

	// ErrNoEvents means no event expects an allowed usage.
	ErrNoEvents = errors.New("no events for allowed usages")
)
