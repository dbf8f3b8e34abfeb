// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import (
	"fmt"

	"github.com/tomtom215/wardrobe/internal/catalog"
)

// Violation tags why an outfit is inappropriate.
type Violation string

// Violation kinds.
const (
	ViolationNone          Violation = "none"
	ViolationTempOuter     Violation = "temp_outer"
	ViolationTempNoOuter   Violation = "temp_no_outer"
	ViolationEventMismatch Violation = "event_mismatch"
)

// Rationale renders the explanation template for v. item is the offending
// item for temp_outer and event_mismatch and may be nil otherwise.
//
//nolint:gocritic // hugeParam: Context passed by value for immutability
func Rationale(v Violation, c Context, item *catalog.Item) string {
	temp := FormatTemperature(c.Temperature)
	switch v {
	case ViolationNone:
		return fmt.Sprintf("Positive: a good combination for %s in %s°C %s weather.", c.Event, temp, c.Condition)
	case ViolationTempOuter:
		if item != nil {
			return fmt.Sprintf("Negative: wearing the %s outer in hot %s°C weather is inappropriate.", item.Label(), temp)
		}
	case ViolationTempNoOuter:
		return fmt.Sprintf("Negative: going without an outer in cold %s°C weather is inappropriate.", temp)
	case ViolationEventMismatch:
		if item != nil {
			return fmt.Sprintf("Negative: the %s item with '%s' usage does not fit an event like '%s'.", item.Label(), item.Usage, c.Event)
		}
	}
	return "Negative: this combination is not appropriate for the given situation."
}

// Explain names the first violation o commits under c, in the order outer
// excess, missing outer, event mismatch, and renders its rationale.
//
//nolint:gocritic // hugeParam: Context passed by value for immutability
func (s *Scorer) Explain(c Context, o Outfit) (Violation, string) {
	in, ok := s.resolve(c, o)
	if !ok {
		return Violation(""), Rationale(Violation(""), c, nil)
	}

	if id, has := o.Get(SlotOuter); has && ForbidsOuter(c.Temperature, c.Condition) {
		item, _ := s.items.ByID(id)
		return ViolationTempOuter, Rationale(ViolationTempOuter, c, &item)
	}
	if !o.IsFullBody() && !o.Has(SlotOuter) && NeedsOuter(c.Temperature, c.Condition) {
		return ViolationTempNoOuter, Rationale(ViolationTempNoOuter, c, nil)
	}
	if in.KnownEvent {
		for i := range in.Items {
			if !UsageMismatch(in.ExpectedUsage, in.Items[i].Usage) {
				continue
			}
			return ViolationEventMismatch, Rationale(ViolationEventMismatch, c, &in.Items[i])
		}
	}
	return ViolationNone, Rationale(ViolationNone, c, nil)
}

// neutralUsages never count as an event mismatch.
var neutralUsages = map[string]struct{}{
	catalog.UsageSmartCasual: {},
	"Home":                   {},
	"NA":                     {},
	"Apparel":                {},
}

// IsNeutralUsage reports whether usage is exempt from event mismatches.
func IsNeutralUsage(usage string) bool {
	_, ok := neutralUsages[usage]
	return ok
}

// UsageMismatch reports whether an item of usage clashes with an event expecting expected.
func UsageMismatch(expected, usage string) bool {
	return usage != expected && !IsNeutralUsage(usage)
}
