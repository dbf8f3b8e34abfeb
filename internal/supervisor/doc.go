// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

/*
Package supervisor runs the long-lived parts of the server under a suture v4
supervisor tree.

# Overview

	RootSupervisor ("wardrobe")
	├── DataSupervisor ("data-layer")
	│   └── history consumer (recommendation.served -> badger)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashed history consumer is restarted without touching the HTTP server, and
a failing listener never stops history from draining.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(consumer)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

Supervisor events (start, failure, backoff, stop timeout) are logged through
sutureslog, which writes to zerolog via logging.NewSlogHandler.
*/
package supervisor
