// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package dataset

import (
	"math/rand"

	"github.com/tomtom215/wardrobe/internal/catalog"
	"github.com/tomtom215/wardrobe/internal/recommend"
)

type weightedGender struct {
	gender string
	weight float64
}

var genderWeights = []weightedGender{
	{catalog.GenderMen, 0.45},
	{catalog.GenderWomen, 0.45},
	{catalog.GenderUnisex, 0.10},
}

// contextDrawer draws random situations.
type contextDrawer struct {
	rng     *rand.Rand
	events  []string
	tempMin int
	tempMax int
}

// draw returns a uniform event, integer temperature and condition, and a weighted gender.
func (d *contextDrawer) draw() recommend.Context {
	return recommend.Context{
		Event:       d.events[d.rng.Intn(len(d.events))],
		Temperature: float64(d.tempMin + d.rng.Intn(d.tempMax-d.tempMin+1)),
		Condition:   recommend.Conditions[d.rng.Intn(len(recommend.Conditions))],
		Gender:      d.gender(),
	}
}

func (d *contextDrawer) gender() string {
	r := d.rng.Float64()
	for _, wg := range genderWeights {
		if r < wg.weight {
			return wg.gender
		}
		r -= wg.weight
	}
	return genderWeights[len(genderWeights)-1].gender
}

// eventsFor returns the taxonomy events whose expected usage is allowed, in table order.
func eventsFor(t *catalog.Taxonomy, allowed []string) []string {
	allow := make(map[string]struct{}, len(allowed))
	for _, u := range allowed {
		allow[u] = struct{}{}
	}
	var out []string
	for _, e := range t.Events() {
		if _, ok := allow[t.ExpectedUsage(e)]; ok {
			out = append(out, e)
		}
	}
	return out
}
