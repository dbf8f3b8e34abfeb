// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import "github.com/tomtom215/wardrobe/internal/catalog"

// outerwearLike lists topwear articleTypes worn as a layer over a top.
var outerwearLike = map[string]struct{}{
	"Jackets":   {},
	"Sweaters":  {},
	"Blazers":   {},
	"Waistcoat": {},
	"Coat":      {},
	"Vest":      {},
	"Vests":     {},
}

// Stage maps an item to a slot given the slot chosen by earlier stages.
// An empty slot means "not usable in a closet outfit".
type Stage func(item *catalog.Item, current Slot) Slot

// BaselineStage places an item by its catalog part. Full-body items are not
// used by closet enumeration.
func BaselineStage(item *catalog.Item, _ Slot) Slot {
	slot, ok := SlotFor(item.Part)
	if !ok || slot == SlotFullBody {
		return ""
	}
	return slot
}

// OuterwearOverrideStage moves topwear whose articleType is worn as a layer into the outer slot.
func OuterwearOverrideStage(item *catalog.Item, current Slot) Slot {
	if item.SubCategory != "Topwear" {
		return current
	}
	if _, ok := outerwearLike[item.ArticleType]; ok {
		return SlotOuter
	}
	return current
}

// Closet is a request's closet partitioned into slot buckets, in input order.
type Closet struct {
	Tops    []int
	Bottoms []int
	Outers  []int
	Shoes   []int

	// Unplaced holds ids that are unknown or cannot fill a closet slot.
	Unplaced []int
}

// CandidateCount is |Top|*|Bottom|*|Shoes| + |Top|*|Bottom|*|Outer|*|Shoes|.
func (c *Closet) CandidateCount() int {
	base := len(c.Tops) * len(c.Bottoms) * len(c.Shoes)
	return base + base*len(c.Outers)
}

// ClosetClassifier partitions a closet by running each stage in order over
// the catalog's baseline part. The catalog item is never modified.
type ClosetClassifier struct {
	items  ItemLookup
	stages []Stage
}

// NewClosetClassifier returns the baseline stage followed by the outerwear override.
func NewClosetClassifier(items ItemLookup) *ClosetClassifier {
	return &ClosetClassifier{
		items:  items,
		stages: []Stage{BaselineStage, OuterwearOverrideStage},
	}
}

// SlotOf returns the closet slot of one item.
func (cc *ClosetClassifier) SlotOf(item *catalog.Item) Slot {
	var slot Slot
	for _, stage := range cc.stages {
		slot = stage(item, slot)
	}
	return slot
}

// Classify partitions ids. Repeated ids are kept once, at their first position.
func (cc *ClosetClassifier) Classify(ids []int) Closet {
	var c Closet
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		item, ok := cc.items.ByID(id)
		if !ok {
			c.Unplaced = append(c.Unplaced, id)
			continue
		}
		switch cc.SlotOf(&item) {
		case SlotTop:
			c.Tops = append(c.Tops, id)
		case SlotBottom:
			c.Bottoms = append(c.Bottoms, id)
		case SlotOuter:
			c.Outers = append(c.Outers, id)
		case SlotShoes:
			c.Shoes = append(c.Shoes, id)
		default:
			c.Unplaced = append(c.Unplaced, id)
		}
	}
	return c
}
