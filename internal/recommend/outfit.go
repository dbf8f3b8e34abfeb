// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import "github.com/tomtom215/wardrobe/internal/catalog"

// Slot names an outfit position.
type Slot string

// Outfit slots.
const (
	SlotTop      Slot = "top"
	SlotBottom   Slot = "bottom"
	SlotOuter    Slot = "outer"
	SlotShoes    Slot = "shoes"
	SlotFullBody Slot = "full_body"
)

// Slots lists every slot in record order.
var Slots = []Slot{SlotTop, SlotBottom, SlotOuter, SlotShoes, SlotFullBody}

// SlotOrder is the canonical reading order used for ids, descriptions and the
// dominant usage: the full-body piece or the top comes first.
var SlotOrder = []Slot{SlotFullBody, SlotTop, SlotBottom, SlotOuter, SlotShoes}

// SlotFor returns the outfit slot an item part fills.
func SlotFor(p catalog.Part) (Slot, bool) {
	switch p {
	case catalog.PartTop:
		return SlotTop, true
	case catalog.PartBottom:
		return SlotBottom, true
	case catalog.PartOuter:
		return SlotOuter, true
	case catalog.PartShoes:
		return SlotShoes, true
	case catalog.PartFullBody:
		return SlotFullBody, true
	}
	return "", false
}

// Outfit maps each slot to an item id; nil means the slot is empty.
// Outfits are values: With and Without return modified copies.
type Outfit struct {
	Top      *int `json:"top"`
	Bottom   *int `json:"bottom"`
	Outer    *int `json:"outer"`
	Shoes    *int `json:"shoes"`
	FullBody *int `json:"full_body"`
}

// ref returns the field backing s.
func (o *Outfit) ref(s Slot) **int {
	switch s {
	case SlotTop:
		return &o.Top
	case SlotBottom:
		return &o.Bottom
	case SlotOuter:
		return &o.Outer
	case SlotShoes:
		return &o.Shoes
	case SlotFullBody:
		return &o.FullBody
	}
	return nil
}

// Get returns the id in s.
func (o Outfit) Get(s Slot) (int, bool) {
	p := o.ref(s)
	if p == nil || *p == nil {
		return 0, false
	}
	return **p, true
}

// Has reports whether s is populated.
func (o Outfit) Has(s Slot) bool {
	_, ok := o.Get(s)
	return ok
}

// With returns a copy of o with s set to id.
func (o Outfit) With(s Slot, id int) Outfit {
	if p := o.ref(s); p != nil {
		v := id
		*p = &v
	}
	return o
}

// Without returns a copy of o with s emptied.
func (o Outfit) Without(s Slot) Outfit {
	if p := o.ref(s); p != nil {
		*p = nil
	}
	return o
}

// Populated returns the filled slots in SlotOrder.
func (o Outfit) Populated() []Slot {
	out := make([]Slot, 0, len(SlotOrder))
	for _, s := range SlotOrder {
		if o.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

// IDs returns the populated ids in SlotOrder.
func (o Outfit) IDs() []int {
	ids := make([]int, 0, len(SlotOrder))
	for _, s := range SlotOrder {
		if id, ok := o.Get(s); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// IsEmpty reports whether no slot is populated.
func (o Outfit) IsEmpty() bool {
	return len(o.Populated()) == 0
}

// IsFullBody reports whether the outfit is built around a full-body item.
func (o Outfit) IsFullBody() bool {
	return o.Has(SlotFullBody)
}

// Valid reports whether the outfit is a minimal valid skeleton plus an
// optional outer: {full_body, shoes} or {top, bottom, shoes}, never mixing
// full_body with top or bottom.
func (o Outfit) Valid() bool {
	if !o.Has(SlotShoes) {
		return false
	}
	if o.IsFullBody() {
		return !o.Has(SlotTop) && !o.Has(SlotBottom)
	}
	return o.Has(SlotTop) && o.Has(SlotBottom)
}

// Equal reports whether both outfits hold the same id in every slot.
func (o Outfit) Equal(other Outfit) bool {
	for _, s := range Slots {
		a, aok := o.Get(s)
		b, bok := other.Get(s)
		if aok != bok || a != b {
			return false
		}
	}
	return true
}

// DiffSlots returns the slots whose contents differ between o and other, in record order.
func (o Outfit) DiffSlots(other Outfit) []Slot {
	var diff []Slot
	for _, s := range Slots {
		a, aok := o.Get(s)
		b, bok := other.Get(s)
		if aok != bok || a != b {
			diff = append(diff, s)
		}
	}
	return diff
}
