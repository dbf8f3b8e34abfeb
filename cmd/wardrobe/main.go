// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

// Package main is the wardrobe command.
//
// Wardrobe recommends outfits from a fashion catalog and generates labeled
// datasets for training the reranker that scores them.
//
// # Commands
//
//	wardrobe serve       HTTP API (recommend, score, history, health, metrics)
//	wardrobe generate    balanced or hard-negative labeled samples as a JSON array
//	wardrobe pairs       chosen/rejected preference pairs as JSON lines
//	wardrobe recommend   one recommendation from the command line
//	wardrobe score       the deterministic score breakdown of one outfit
//
// # Configuration
//
// Every command loads configuration through koanf (defaults, then a YAML file
// found via --config, CONFIG_PATH, ./config.yaml or /etc/wardrobe/config.yaml,
// then environment variables). See internal/config for the variables.
//
// # Signal Handling
//
// serve stops on SIGINT or SIGTERM: the HTTP server drains in-flight requests
// for server.shutdown_timeout, then the history store is closed.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1) //nolint:gocritic // exitAfterDefer: stop is called explicitly above
	}
}
