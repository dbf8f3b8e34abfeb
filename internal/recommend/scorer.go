// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import (
	"sort"

	"github.com/tomtom215/wardrobe/internal/catalog"
)

// InvalidScore marks an outfit with a duplicate or unknown item reference.
const InvalidScore = -1000

// Point values used by the scoring rules.
const (
	seasonMismatch     = -10
	seasonShoulder     = -5
	seasonMatch        = 5
	eventMismatch      = -20
	eventMatch         = 5
	mixedUsagePenalty  = -10
	outerPenalty       = -20
	colourPairFallback = -2
)

// ItemLookup resolves catalog ids. *catalog.Index satisfies it.
type ItemLookup interface {
	ByID(id int) (catalog.Item, bool)
}

// ScoreInput is what every rule sees: the context, the outfit and its
// resolved items in SlotOrder.
type ScoreInput struct {
	Context       Context
	Outfit        Outfit
	Items         []catalog.Item
	ExpectedUsage string
	KnownEvent    bool
}

// Rule is one additive scoring rule.
type Rule struct {
	Name  string
	Apply func(in *ScoreInput) int
}

// Contribution is the points one rule added.
type Contribution struct {
	Rule   string `json:"rule"`
	Points int    `json:"points"`
}

// Breakdown is a scored outfit with per-rule contributions in evaluation order.
type Breakdown struct {
	Total         int            `json:"total"`
	Valid         bool           `json:"valid"`
	Contributions []Contribution `json:"contributions,omitempty"`
}

// Scorer is the deterministic compatibility heuristic.
type Scorer struct {
	items    ItemLookup
	taxonomy *catalog.Taxonomy
	rules    []Rule
}

// NewScorer returns a scorer with the default rule order. A nil taxonomy uses the defaults.
func NewScorer(items ItemLookup, taxonomy *catalog.Taxonomy) *Scorer {
	if taxonomy == nil {
		taxonomy = catalog.DefaultTaxonomy()
	}
	return &Scorer{items: items, taxonomy: taxonomy, rules: DefaultRules()}
}

// DefaultRules returns the scoring rules in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "season", Apply: seasonRule},
		{Name: "event", Apply: eventRule},
		{Name: "mixed_usage", Apply: mixedUsageRule},
		{Name: "outer", Apply: outerRule},
		{Name: "colour", Apply: colourRule},
	}
}

// Score returns the total compatibility score of o under c.
//
//nolint:gocritic // hugeParam: Context passed by value for immutability
func (s *Scorer) Score(c Context, o Outfit) int {
	return s.Breakdown(c, o).Total
}

// Breakdown scores o and reports every rule's contribution.
//
//nolint:gocritic // hugeParam: Context passed by value for immutability
func (s *Scorer) Breakdown(c Context, o Outfit) Breakdown {
	in, ok := s.resolve(c, o)
	if !ok {
		return Breakdown{Total: InvalidScore}
	}

	b := Breakdown{Valid: true, Contributions: make([]Contribution, 0, len(s.rules))}
	for _, r := range s.rules {
		pts := r.Apply(in)
		b.Total += pts
		b.Contributions = append(b.Contributions, Contribution{Rule: r.Name, Points: pts})
	}
	return b
}

// resolve applies the duplicate-item guard and looks up every populated item.
//
//nolint:gocritic // hugeParam: Context passed by value for immutability
func (s *Scorer) resolve(c Context, o Outfit) (*ScoreInput, bool) {
	ids := o.IDs()
	if len(ids) == 0 {
		return nil, false
	}

	seen := make(map[int]struct{}, len(ids))
	items := make([]catalog.Item, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, false
		}
		seen[id] = struct{}{}

		item, ok := s.items.ByID(id)
		if !ok {
			return nil, false
		}
		items = append(items, item)
	}

	return &ScoreInput{
		Context:       c,
		Outfit:        o,
		Items:         items,
		ExpectedUsage: s.taxonomy.ExpectedUsage(c.Event),
		KnownEvent:    s.taxonomy.KnownEvent(c.Event),
	}, true
}

// SeasonPoints scores one item's season against the temperature.
func SeasonPoints(temp float64, season string) int {
	switch {
	case temp > 25 && season != catalog.SeasonSummer && season != catalog.SeasonSpring:
		return seasonMismatch
	case temp < 10 && season != catalog.SeasonWinter && season != catalog.SeasonFall:
		return seasonMismatch
	case temp >= 10 && temp <= 25 && (season == catalog.SeasonSummer || season == catalog.SeasonWinter):
		return seasonShoulder
	default:
		return seasonMatch
	}
}

// EventPoints scores the dominant usage against the event's expected usage.
// Smart Casual satisfies a Formal event.
func EventPoints(expected, usage string) int {
	if usage == expected {
		return eventMatch
	}
	if expected == catalog.UsageFormal && usage == catalog.UsageSmartCasual {
		return eventMatch
	}
	return eventMismatch
}

// MixedUsagePoints penalizes outfits mixing usages, except exactly {Casual, Smart Casual}.
func MixedUsagePoints(usages []string) int {
	distinct := make(map[string]struct{}, len(usages))
	for _, u := range usages {
		distinct[u] = struct{}{}
	}
	if len(distinct) <= 1 {
		return 0
	}
	if len(distinct) == 2 {
		_, casual := distinct[catalog.UsageCasual]
		_, smart := distinct[catalog.UsageSmartCasual]
		if casual && smart {
			return 0
		}
	}
	return mixedUsagePenalty
}

// OuterPoints applies the outer necessity rule.
//
//nolint:gocritic // hugeParam: Context passed by value for immutability
func OuterPoints(c Context, o Outfit) int {
	hasOuter := o.Has(SlotOuter)
	pts := 0
	if !o.IsFullBody() && !hasOuter && NeedsOuter(c.Temperature, c.Condition) {
		pts += outerPenalty
	}
	if hasOuter && ForbidsOuter(c.Temperature, c.Condition) {
		pts += outerPenalty
	}
	return pts
}

type colourPair struct{ a, b string }

var colourTable = map[colourPair]int{
	{"Blue", "Red"}:    5,
	{"Red", "White"}:   5,
	{"Black", "Red"}:   5,
	{"Blue", "White"}:  8,
	{"Blue", "Grey"}:   6,
	{"Beige", "Blue"}:  6,
	{"Beige", "Green"}: 7,
	{"Brown", "Green"}: 7,
	{"Black", "White"}: 10,
	{"Black", "Grey"}:  8,
	{"Beige", "White"}: 8,
	{"Grey", "White"}:  8,
}

// ColourPairPoints returns the symmetric compatibility of two distinct colours.
func ColourPairPoints(a, b string) int {
	if b < a {
		a, b = b, a
	}
	if pts, ok := colourTable[colourPair{a, b}]; ok {
		return pts
	}
	return colourPairFallback
}

// ColourPoints sums ColourPairPoints over every unordered pair of distinct colours.
func ColourPoints(colours []string) int {
	distinct := make(map[string]struct{}, len(colours))
	for _, c := range colours {
		distinct[c] = struct{}{}
	}
	unique := make([]string, 0, len(distinct))
	for c := range distinct {
		unique = append(unique, c)
	}
	sort.Strings(unique)

	pts := 0
	for i := 0; i < len(unique); i++ {
		for j := i + 1; j < len(unique); j++ {
			pts += ColourPairPoints(unique[i], unique[j])
		}
	}
	return pts
}

func seasonRule(in *ScoreInput) int {
	pts := 0
	for i := range in.Items {
		pts += SeasonPoints(in.Context.Temperature, in.Items[i].Season)
	}
	return pts
}

// eventRule compares the first item's usage in SlotOrder with the event's
// expected usage. Events without an entry carry no expectation.
func eventRule(in *ScoreInput) int {
	if !in.KnownEvent {
		return eventMatch
	}
	return EventPoints(in.ExpectedUsage, in.Items[0].Usage)
}

func mixedUsageRule(in *ScoreInput) int {
	usages := make([]string, len(in.Items))
	for i := range in.Items {
		usages[i] = in.Items[i].Usage
	}
	return MixedUsagePoints(usages)
}

func outerRule(in *ScoreInput) int {
	return OuterPoints(in.Context, in.Outfit)
}

func colourRule(in *ScoreInput) int {
	colours := make([]string, len(in.Items))
	for i := range in.Items {
		colours[i] = in.Items[i].BaseColour
	}
	return ColourPoints(colours)
}
