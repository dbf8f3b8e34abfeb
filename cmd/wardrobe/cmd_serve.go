// Wardrobe - Context-Aware Outfit Recommendation and Dataset Generation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wardrobe

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/wardrobe/internal/api"
	"github.com/tomtom215/wardrobe/internal/config"
	"github.com/tomtom215/wardrobe/internal/events"
	"github.com/tomtom215/wardrobe/internal/history"
	"github.com/tomtom215/wardrobe/internal/logging"
	"github.com/tomtom215/wardrobe/internal/recommend"
	"github.com/tomtom215/wardrobe/internal/supervisor"
	"github.com/tomtom215/wardrobe/internal/supervisor/services"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the recommendation API",
		Long: `Loads the catalog, then runs the HTTP API and the history consumer under
a supervisor tree until SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts.cfg)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logger := logging.Logger()
	logger.Info().Str("version", version).Str("addr", cfg.Server.Addr()).Msg("starting wardrobe")

	index, err := loadCatalog(ctx, &cfg.Catalog, logger)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	reranker, readiness, err := buildReranker(&cfg.Reranker, logger)
	if err != nil {
		return err
	}
	engine, err := recommend.NewEngine(engineConfig(&cfg.Recommend), index, reranker, logger)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	handlerOpts := []api.HandlerOption{api.WithVersion(version)}
	if readiness != nil {
		handlerOpts = append(handlerOpts, api.WithRerankerReadiness(readiness))
	}

	if cfg.History.Enabled {
		store, err := history.Open(history.Config{
			Path:      cfg.History.Path,
			InMemory:  cfg.History.InMemory,
			Retention: cfg.History.Retention,
		}, logger)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Error().Err(err).Msg("failed to close history store")
			}
		}()

		bus := events.NewBus(events.DefaultBufferSize, events.NewLoggerAdapter(logger))
		defer func() {
			if err := bus.Close(); err != nil {
				logger.Warn().Err(err).Msg("failed to close event bus")
			}
		}()

		publisher := events.NewPublisher(bus)
		defer func() { _ = publisher.Close() }()

		engine.SetResultSink(publisher)
		tree.AddDataService(events.NewConsumer(bus, store, events.DefaultConsumerConfig(), logger))
		handlerOpts = append(handlerOpts, api.WithHistory(store))
	}

	router := api.NewRouter(
		api.NewHandler(engine, handlerOpts...),
		api.MiddlewareConfigFromServer(&cfg.Server),
		logger,
	)
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.RequestTimeout,
		WriteTimeout:      cfg.Server.RequestTimeout + 5*time.Second,
		IdleTimeout:       2 * time.Minute,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))

	err = tree.Serve(ctx)
	if report, rerr := tree.UnstoppedServiceReport(); rerr == nil && len(report) > 0 {
		logger.Warn().Int("services", len(report)).Msg("services did not stop within the shutdown timeout")
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor: %w", err)
	}
	logger.Info().Msg("wardrobe stopped")
	return nil
}
