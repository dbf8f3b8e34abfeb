// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

// Package logging provides the zerolog-based logger shared by every wardrobe component.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("items", n).Msg("catalog loaded")
//
//	// Request scoped
//	ctx = logging.ContextWithRequestID(ctx, logging.GenerateRequestID())
//	logging.Ctx(ctx).Debug().Msg("enumerating candidates")
//
// Components derive a child logger once and keep it:
//
//	logger := logging.WithComponent("dataset")
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event is never written.
package logging
