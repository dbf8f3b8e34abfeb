// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/wardrobe/internal/models"
)

// contextFlags binds the occasion flags shared by recommend and score.
type contextFlags struct {
	event       string
	temperature float64
	condition   string
	gender      string
}

func (c *contextFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&c.event, "event", "", "event, e.g. \"Office Meeting\" (required)")
	fs.Float64Var(&c.temperature, "temp", 20, "temperature in °C")
	fs.StringVar(&c.condition, "condition", "Sunny", "weather condition")
	fs.StringVar(&c.gender, "gender", "Men", "Men, Women, Unisex, Boys or Girls")
}

func (c *contextFlags) request() models.ContextRequest {
	temp := c.temperature
	return models.ContextRequest{
		Event:       c.event,
		Temperature: &temp,
		Condition:   c.condition,
		Gender:      c.gender,
	}
}
