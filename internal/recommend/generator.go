// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import "fmt"

// Generator enumerates every outfit skeleton a closet allows.
type Generator struct {
	classifier    *ClosetClassifier
	maxCandidates int
}

// NewGenerator returns a generator refusing closets that would enumerate more
// than maxCandidates outfits. maxCandidates <= 0 disables the limit.
func NewGenerator(classifier *ClosetClassifier, maxCandidates int) *Generator {
	return &Generator{classifier: classifier, maxCandidates: maxCandidates}
}

// Generate returns top x bottom x shoes followed by top x bottom x outer x
// shoes, the last slot varying fastest. An empty result is ErrEmptyCandidateSet.
func (g *Generator) Generate(ids []int) ([]Outfit, Closet, error) {
	closet := g.classifier.Classify(ids)

	n := closet.CandidateCount()
	if n == 0 {
		return nil, closet, ErrEmptyCandidateSet
	}
	if g.maxCandidates > 0 && n > g.maxCandidates {
		return nil, closet, fmt.Errorf("%w: %d combinations, limit %d", ErrTooManyCandidates, n, g.maxCandidates)
	}

	out := make([]Outfit, 0, n)
	for _, t := range closet.Tops {
		for _, b := range closet.Bottoms {
			for _, s := range closet.Shoes {
				out = append(out, Outfit{}.With(SlotTop, t).With(SlotBottom, b).With(SlotShoes, s))
			}
		}
	}
	for _, t := range closet.Tops {
		for _, b := range closet.Bottoms {
			for _, o := range closet.Outers {
				for _, s := range closet.Shoes {
					out = append(out, Outfit{}.With(SlotTop, t).With(SlotBottom, b).With(SlotOuter, o).With(SlotShoes, s))
				}
			}
		}
	}
	return out, closet, nil
}
