// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package dataset

// Label is the binary label of a balanced sample.
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNegative Label = "Negative"
)

// ratioEpsilon keeps the fraction defined before the first sample.
const ratioEpsilon = 1e-6

// RatioController tracks the labels emitted by one run and decides which
// label the next sample must carry. It belongs to a single run and is not
// safe for concurrent use.
type RatioController struct {
	target   float64
	positive int
	negative int
}

// NewRatioController returns a controller aiming for target positives.
func NewRatioController(target float64) *RatioController {
	return &RatioController{target: target}
}

// Force returns Positive while the positive fraction is below target.
func (r *RatioController) Force() Label {
	if r.Fraction() < r.target {
		return LabelPositive
	}
	return LabelNegative
}

// Record counts an emitted sample.
func (r *RatioController) Record(l Label) {
	if l == LabelPositive {
		r.positive++
		return
	}
	r.negative++
}

// Fraction returns positive / (positive + negative).
func (r *RatioController) Fraction() float64 {
	return float64(r.positive) / (float64(r.positive+r.negative) + ratioEpsilon)
}

// Counts returns the positive and negative totals.
func (r *RatioController) Counts() (positive, negative int) {
	return r.positive, r.negative
}
