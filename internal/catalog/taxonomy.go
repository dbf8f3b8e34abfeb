// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EventUsage pairs an event label with the usage it expects.
type EventUsage struct {
	Event string `yaml:"name"`
	Usage string `yaml:"usage"`
}

var defaultPartTypes = map[Part][]string{
	PartTop: {
		"Tshirts", "Shirts", "Tops", "Sweaters", "Sweatshirts", "Kurtas", "Kurtis",
		"Tunics", "Innerwear Vests", "Bra", "Camisoles", "Topwear", "Vests", "Hoodie",
	},
	PartBottom: {
		"Jeans", "Trousers", "Shorts", "Skirts", "Track Pants", "Capris", "Leggings",
		"Jeggings", "Patiala", "Churidar", "Salwar", "Dhotis", "Tracksuits", "Bottomwear",
		"Trunk", "Briefs", "Boxers",
	},
	PartOuter: {
		"Jackets", "Blazers", "Waistcoat", "Coat", "Shrug", "Cardigan", "Nehru Jackets", "Rain Jacket",
	},
	PartShoes: {
		"Casual Shoes", "Sports Shoes", "Formal Shoes", "Sandals", "Flip Flops", "Boots",
		"Heels", "Flats", "Sneakers", "Footwear",
	},
	PartFullBody: {
		"Dresses", "Jumpsuit", "Nightdress", "Sarees", "Kurta Sets", "Night suits", "Rompers", "Bath Robe",
	},
}

var defaultEvents = []EventUsage{
	{"Office Meeting", UsageFormal},
	{"Casual Day Out", UsageCasual},
	{"Beach Trip", UsageCasual},
	{"Gym Workout", "Active"},
	{"Hiking", UsageSports},
	{"Date Night", UsageFormal},
	{"Weekend Brunch", UsageCasual},
	{"Business Presentation", UsageFormal},
	{"Outdoor Concert", UsageCasual},
	{"Ski Trip", UsageSports},
	{"Winter Walk", UsageCasual},
	{"Summer BBQ", UsageCasual},
	{"Formal Gala", UsageFormal},
	{"Yoga Class", UsageSports},
	{"Evening Party", UsageCasual},
	{"University Lecture", UsageCasual},
	{"Job Interview", UsageFormal},
	{"Wedding Ceremony", UsageFormal},
	{"Music Festival", UsageCasual},
	{"Camping Trip", UsageSports},
	{"Art Gallery Visit", UsageCasual},
	{"Shopping Spree", UsageCasual},
	{"Library Study", UsageCasual},
	{"Fine Dining", UsageFormal},
	{"Movie Night In", UsageCasual},
	{"Dog Walking", UsageCasual},
	{"Gardening", UsageCasual},
	{"Cycling Tour", UsageSports},
	{"Museum Visit", UsageCasual},
	{"Volunteering Event", UsageCasual},
	{"Cruise Vacation", UsageCasual},
	{"Conference Attendance", UsageFormal},
	{"Relaxing at Home", UsageCasual},
	{"Attending a Play", UsageFormal},
	{"Running Errands", UsageCasual},
	{"Neighborhood Walk", UsageCasual},
	{"Picnic in Park", UsageCasual},
	{"Street Photography", UsageCasual},
	{"Charity Marathon", UsageSports},
	{"Cocktail Party", UsageFormal},
	{"Home Office Work", UsageCasual},
	{"Online Class", UsageCasual},
	{"Board Game Night", UsageCasual},
	{"Car Repair", UsageCasual},
	{"Fishing Trip", UsageSports},
	{"Night Out with Friends", UsageCasual},
	{"Baby Shower", UsageFormal},
	{"Book Club Meeting", UsageCasual},
	{"Baking Session", UsageCasual},
	{"Travel Day", UsageCasual},
	{"Public Speaking Event", UsageFormal},
	{"Quick Grocery Run", UsageCasual},
	{"Meditation Retreat", "Active"},
	{"Pottery Class", UsageCasual},
	{"Game Day at Stadium", UsageCasual},
	{"Beach Volleyball", UsageSports},
	{"Opera Night", UsageFormal},
	{"Morning Coffee Run", UsageCasual},
	{"Road Trip", UsageCasual},
	{"Cultural Festival", UsageEthnic},
	{"Traditional Ceremony", UsageEthnic},
	{"Religious Gathering", UsageEthnic},
	{"Ethnic Dance Class", UsageEthnic},
}

// Taxonomy holds the static articleType -> part and event -> usage tables.
// A Taxonomy is read-only once constructed.
type Taxonomy struct {
	partOf     map[string]Part
	partTypes  map[Part][]string
	eventUsage map[string]string
	events     []string
	fallback   string
}

// DefaultTaxonomy returns the built-in tables.
func DefaultTaxonomy() *Taxonomy {
	t := &Taxonomy{
		partOf:     make(map[string]Part),
		partTypes:  make(map[Part][]string, len(defaultPartTypes)),
		eventUsage: make(map[string]string, len(defaultEvents)),
		fallback:   UsageCasual,
	}
	for _, p := range Parts {
		t.setPart(p, defaultPartTypes[p])
	}
	for _, e := range defaultEvents {
		t.setEvent(e.Event, e.Usage)
	}
	return t
}

func (t *Taxonomy) setPart(p Part, types []string) {
	for _, at := range t.partTypes[p] {
		delete(t.partOf, at)
	}
	t.partTypes[p] = append([]string(nil), types...)
	for _, at := range types {
		if prev, ok := t.partOf[at]; ok && prev != p {
			t.partTypes[prev] = removeString(t.partTypes[prev], at)
		}
		t.partOf[at] = p
	}
}

func (t *Taxonomy) setEvent(event, usage string) {
	if _, exists := t.eventUsage[event]; !exists {
		t.events = append(t.events, event)
	}
	t.eventUsage[event] = usage
}

func removeString(list []string, s string) []string {
	out := list[:0:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}

// PartOf returns the part for an articleType.
func (t *Taxonomy) PartOf(articleType string) (Part, bool) {
	p, ok := t.partOf[articleType]
	return p, ok
}

// ArticleTypes returns the articleTypes that map to p.
func (t *Taxonomy) ArticleTypes(p Part) []string {
	return t.partTypes[p]
}

// ExpectedUsage returns the usage expected for event. Unknown events expect Casual.
func (t *Taxonomy) ExpectedUsage(event string) string {
	if u, ok := t.eventUsage[event]; ok {
		return u
	}
	return t.fallback
}

// KnownEvent reports whether event is in the event table.
func (t *Taxonomy) KnownEvent(event string) bool {
	_, ok := t.eventUsage[event]
	return ok
}

// Events returns every known event in table order.
func (t *Taxonomy) Events() []string {
	return t.events
}

// taxonomyFile is the YAML override document.
//
//	parts:
//	  Outer: [Jackets, Blazers, Parka]
//	events:
//	  - name: Hackathon
//	    usage: Casual
type taxonomyFile struct {
	Parts         map[string][]string `yaml:"parts"`
	Events        []EventUsage        `yaml:"events"`
	FallbackUsage string              `yaml:"fallback_usage"`
}

// LoadTaxonomy reads a YAML override file and merges it over the defaults.
// A part listed in the file replaces that part's articleType list; events are
// added or updated in place.
func LoadTaxonomy(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("read taxonomy: %w", err)
	}
	return ParseTaxonomy(data)
}

// ParseTaxonomy merges a YAML override document over the defaults.
func ParseTaxonomy(data []byte) (*Taxonomy, error) {
	var doc taxonomyFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}

	t := DefaultTaxonomy()
	for _, p := range Parts {
		if types, ok := doc.Parts[string(p)]; ok {
			t.setPart(p, types)
		}
	}
	for name := range doc.Parts {
		if !Part(name).Valid() {
			return nil, fmt.Errorf("parse taxonomy: unknown part %q", name)
		}
	}
	for _, e := range doc.Events {
		if e.Event == "" || e.Usage == "" {
			return nil, fmt.Errorf("parse taxonomy: event entries need name and usage")
		}
		t.setEvent(e.Event, e.Usage)
	}
	if doc.FallbackUsage != "" {
		t.fallback = doc.FallbackUsage
	}
	return t, nil
}
