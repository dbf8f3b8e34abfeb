// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package catalog

import "fmt"

// Part is the functional outfit role of an item.
type Part string

// Outfit parts.
const (
	PartTop      Part = "Top"
	PartBottom   Part = "Bottom"
	PartOuter    Part = "Outer"
	PartShoes    Part = "Shoes"
	PartFullBody Part = "Full Body"
)

// Parts lists every part in canonical order.
var Parts = []Part{PartTop, PartBottom, PartOuter, PartShoes, PartFullBody}

// Valid reports whether p is a known part.
func (p Part) Valid() bool {
	switch p {
	case PartTop, PartBottom, PartOuter, PartShoes, PartFullBody:
		return true
	}
	return false
}

// Well-known usage values.
const (
	UsageCasual      = "Casual"
	UsageFormal      = "Formal"
	UsageSports      = "Sports"
	UsageEthnic      = "Ethnic"
	UsageSmartCasual = "Smart Casual"
	UsageUnknown     = "Unknown"
)

// Well-known season values.
const (
	SeasonSpring = "Spring"
	SeasonSummer = "Summer"
	SeasonFall   = "Fall"
	SeasonWinter = "Winter"
)

// Gender values. Unisex items belong to every gender pool.
const (
	GenderMen    = "Men"
	GenderWomen  = "Women"
	GenderUnisex = "Unisex"
)

// Item is one catalog entry. Items are immutable once indexed.
type Item struct {
	ID             int    `json:"id"`
	Part           Part   `json:"part"`
	Gender         string `json:"gender"`
	MasterCategory string `json:"master_category"`
	SubCategory    string `json:"sub_category"`
	ArticleType    string `json:"article_type"`
	BaseColour     string `json:"base_colour"`
	Season         string `json:"season"`
	Usage          string `json:"usage"`
	Name           string `json:"name,omitempty"`
}

// Label renders the item as "<colour> <articleType> (<season>)".
func (it *Item) Label() string {
	return fmt.Sprintf("%s %s (%s)", it.BaseColour, it.ArticleType, it.Season)
}
