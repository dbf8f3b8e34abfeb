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

// Hot and cold bounds at which a positive is perturbed on its outer slot.
const (
	hotAbove  = 25
	coldBelow = 10
)

// Negative is one mined hard negative.
type Negative struct {
	Outfit    recommend.Outfit
	Violation recommend.Violation
	Slot      recommend.Slot
	Rationale string
}

// Miner derives minimally perturbed negatives from a positive outfit.
// Every negative differs from the positive in exactly one slot.
type Miner struct {
	index    *catalog.Index
	taxonomy *catalog.Taxonomy
	pools    *pools
	rng      *rand.Rand
}

// NewMiner returns a miner drawing replacement items from the whole catalog.
func NewMiner(index *catalog.Index, rng *rand.Rand) *Miner {
	return newMiner(index, newPools(index, nil), rng)
}

func newMiner(index *catalog.Index, p *pools, rng *rand.Rand) *Miner {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Miner{index: index, taxonomy: index.Taxonomy(), pools: p, rng: rng}
}

// Mine returns every applicable negative in the order temp-outer,
// temp-no-outer, event-mismatch. ErrNoNegative is returned when none applies.
//
//nolint:gocritic // hugeParam: Context passed by value for immutability
func (m *Miner) Mine(c recommend.Context, positive recommend.Outfit) ([]Negative, error) {
	var out []Negative
	if n, ok := m.tempOuter(c, positive); ok {
		out = append(out, n)
	}
	if n, ok := m.tempNoOuter(c, positive); ok {
		out = append(out, n)
	}
	if n, ok := m.eventMismatch(c, positive); ok {
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, ErrNoNegative
	}
	return out, nil
}

// tempOuter injects an outer into a hot-weather positive that has none.
//
//nolint:gocritic // hugeParam: Context passed by value for immutability
func (m *Miner) tempOuter(c recommend.Context, positive recommend.Outfit) (Negative, bool) {
	if c.Temperature <= hotAbove || positive.Has(recommend.SlotOuter) {
		return Negative{}, false
	}
	id, ok := m.pick(m.pools.get(c.Gender, "", catalog.PartOuter), positive)
	if !ok {
		return Negative{}, false
	}
	item, _ := m.index.ByID(id)
	return Negative{
		Outfit:    positive.With(recommend.SlotOuter, id),
		Violation: recommend.ViolationTempOuter,
		Slot:      recommend.SlotOuter,
		Rationale: recommend.Rationale(recommend.ViolationTempOuter, c, &item),
	}, true
}

// tempNoOuter removes the outer from a cold-weather positive.
//
//nolint:gocritic // hugeParam: Context passed by value for immutability
func (m *Miner) tempNoOuter(c recommend.Context, positive recommend.Outfit) (Negative, bool) {
	if c.Temperature >= coldBelow || !positive.Has(recommend.SlotOuter) {
		return Negative{}, false
	}
	return Negative{
		Outfit:    positive.Without(recommend.SlotOuter),
		Violation: recommend.ViolationTempNoOuter,
		Slot:      recommend.SlotOuter,
		Rationale: recommend.Rationale(recommend.ViolationTempNoOuter, c, nil),
	}, true
}

// eventMismatch swaps one non-full-body slot for a same-part item whose usage
// clashes with the event. Slots are tried in random order until one has a
// replacement.
//
//nolint:gocritic // hugeParam: Context passed by value for immutability
func (m *Miner) eventMismatch(c recommend.Context, positive recommend.Outfit) (Negative, bool) {
	if !m.taxonomy.KnownEvent(c.Event) {
		return Negative{}, false
	}
	expected := m.taxonomy.ExpectedUsage(c.Event)

	var slots []recommend.Slot
	for _, s := range positive.Populated() {
		if s != recommend.SlotFullBody {
			slots = append(slots, s)
		}
	}
	m.rng.Shuffle(len(slots), func(i, j int) { slots[i], slots[j] = slots[j], slots[i] })

	for _, slot := range slots {
		current, _ := positive.Get(slot)
		item, ok := m.index.ByID(current)
		if !ok {
			continue
		}
		var candidates []int
		for _, u := range m.pools.otherUsages(expected) {
			if recommend.UsageMismatch(expected, u) {
				candidates = append(candidates, m.pools.get(c.Gender, u, item.Part)...)
			}
		}
		id, ok := m.pick(candidates, positive)
		if !ok {
			continue
		}
		swapped, _ := m.index.ByID(id)
		return Negative{
			Outfit:    positive.With(slot, id),
			Violation: recommend.ViolationEventMismatch,
			Slot:      slot,
			Rationale: recommend.Rationale(recommend.ViolationEventMismatch, c, &swapped),
		}, true
	}
	return Negative{}, false
}

// pick returns a uniform id from ids that the outfit does not already hold.
func (m *Miner) pick(ids []int, o recommend.Outfit) (int, bool) {
	held := make(map[int]struct{}, len(recommend.Slots))
	for _, id := range o.IDs() {
		held[id] = struct{}{}
	}
	free := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := held[id]; !ok {
			free = append(free, id)
		}
	}
	if len(free) == 0 {
		return 0, false
	}
	return free[m.rng.Intn(len(free))], true
}
