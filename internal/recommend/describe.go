// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedDescription is returned when a description cannot be parsed back.
var ErrMalformedDescription = errors.New("malformed outfit description")

var slotLabels = map[Slot]string{
	SlotFullBody: "Full Body",
	SlotTop:      "Top",
	SlotBottom:   "Bottom",
	SlotOuter:    "Outer",
	SlotShoes:    "Shoes",
}

var labelSlots = map[string]Slot{
	"Full Body": SlotFullBody,
	"Top":       SlotTop,
	"Bottom":    SlotBottom,
	"Outer":     SlotOuter,
	"Shoes":     SlotShoes,
}

// descriptionPart matches "Label(colour type #id)".
var descriptionPart = regexp.MustCompile(`^(Full Body|Top|Bottom|Outer|Shoes)\((.*) #(\d+)\)$`)

// Describe renders o as "Top(Navy Blue Shirts #15970), Bottom(...), ..." in
// SlotOrder. Ids are embedded so the outfit can be recovered with ParseDescription.
// Unknown ids render without colour and type.
func Describe(items ItemLookup, o Outfit) string {
	parts := make([]string, 0, len(SlotOrder))
	for _, s := range SlotOrder {
		id, ok := o.Get(s)
		if !ok {
			continue
		}
		text := "?"
		if item, found := items.ByID(id); found {
			text = item.BaseColour + " " + item.ArticleType
		}
		parts = append(parts, fmt.Sprintf("%s(%s #%d)", slotLabels[s], text, id))
	}
	return strings.Join(parts, ", ")
}

// ParseDescription recovers the outfit rendered by Describe.
func ParseDescription(desc string) (Outfit, error) {
	var o Outfit
	if strings.TrimSpace(desc) == "" {
		return o, ErrMalformedDescription
	}
	for _, chunk := range splitDescription(desc) {
		m := descriptionPart.FindStringSubmatch(chunk)
		if m == nil {
			return Outfit{}, fmt.Errorf("%w: %q", ErrMalformedDescription, chunk)
		}
		slot := labelSlots[m[1]]
		if o.Has(slot) {
			return Outfit{}, fmt.Errorf("%w: slot %s repeated", ErrMalformedDescription, slot)
		}
		id, err := strconv.Atoi(m[3])
		if err != nil {
			return Outfit{}, fmt.Errorf("%w: %v", ErrMalformedDescription, err)
		}
		o = o.With(slot, id)
	}
	return o, nil
}

// splitDescription splits on the ", " separators between closing and opening parts.
func splitDescription(desc string) []string {
	var chunks []string
	depth, start := 0, 0
	for i, r := range desc {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				chunks = append(chunks, strings.TrimSpace(desc[start:i]))
				start = i + 1
			}
		}
	}
	return append(chunks, strings.TrimSpace(desc[start:]))
}

// Prompt renders the reranker input for one candidate.
//
//nolint:gocritic // hugeParam: Context passed by value for immutability
func Prompt(c Context, description string) string {
	return fmt.Sprintf("Context: %s\nOutfit: %s\nIs this outfit appropriate?\nResult:", c.String(), description)
}
