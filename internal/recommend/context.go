// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package recommend

import (
	"fmt"
	"strconv"

	"github.com/tomtom215/wardrobe/internal/catalog"
)

// Weather conditions.
const (
	ConditionSunny        = "Sunny"
	ConditionRainy        = "Rainy"
	ConditionCloudy       = "Cloudy"
	ConditionClear        = "Clear"
	ConditionSnowy        = "Snowy"
	ConditionPartlyCloudy = "Partly Cloudy"
	ConditionMild         = "Mild"
)

// Conditions lists every weather condition.
var Conditions = []string{
	ConditionSunny, ConditionRainy, ConditionCloudy, ConditionClear,
	ConditionSnowy, ConditionPartlyCloudy, ConditionMild,
}

// Context is the situation an outfit is chosen for.
type Context struct {
	Event       string  `json:"event"`
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Gender      string  `json:"gender"`
}

// String renders the context as "<gender>, <temp>°C, <condition>, <event>".
func (c Context) String() string {
	return fmt.Sprintf("%s, %s°C, %s, %s", c.Gender, FormatTemperature(c.Temperature), c.Condition, c.Event)
}

// FormatTemperature renders t without trailing zeros (30, -2, 22.5).
func FormatTemperature(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64)
}

// NeedsOuter reports whether the weather calls for an outer layer.
func NeedsOuter(temp float64, condition string) bool {
	return temp <= 15 || condition == ConditionRainy || condition == ConditionSnowy
}

// ForbidsOuter reports whether an outer layer is inappropriate. It never holds
// when NeedsOuter does: rain on a hot day still calls for an outer.
func ForbidsOuter(temp float64, condition string) bool {
	if NeedsOuter(temp, condition) {
		return false
	}
	return temp >= 25 || condition == ConditionSunny
}

// IsMild reports whether the weather neither needs nor forbids an outer.
func IsMild(temp float64, condition string) bool {
	return !NeedsOuter(temp, condition) && !ForbidsOuter(temp, condition)
}

// SuitableSeasons returns the item seasons that suit temp, most suitable first.
func SuitableSeasons(temp float64) []string {
	switch {
	case temp <= 5:
		return []string{catalog.SeasonWinter, catalog.SeasonFall}
	case temp <= 15:
		return []string{catalog.SeasonFall, catalog.SeasonWinter, catalog.SeasonSpring}
	case temp <= 22:
		return []string{catalog.SeasonSpring, catalog.SeasonFall}
	case temp <= 28:
		return []string{catalog.SeasonSummer, catalog.SeasonSpring}
	default:
		return []string{catalog.SeasonSummer}
	}
}
