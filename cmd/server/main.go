// Indiescout - Indie Game Discovery Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indiescout

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/indiescout/internal/api"
	"github.com/tomtom215/indiescout/internal/config"
	"github.com/tomtom215/indiescout/internal/discovery"
	"github.com/tomtom215/indiescout/internal/logging"
	"github.com/tomtom215/indiescout/internal/rawg"
	"github.com/tomtom215/indiescout/internal/supervisor"
	"github.com/tomtom215/indiescout/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: os.Stderr,
	})
	logging.Info().Str("version", version).Str("environment", cfg.Server.Environment).Msg("Starting Indiescout")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, breaker := newCatalog(&cfg.RAWG)

	denylist := discovery.NewDenylist(cfg.Discovery.MajorPublishers)
	games := discovery.NewService(catalog, &cfg.Discovery, cfg.RAWG.PlatformID, denylist)

	handler := api.NewHandler(games, breaker, version)
	mw := api.NewChiMiddleware(api.NewChiMiddlewareConfig(&cfg.Security))
	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: shutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Discovery.PublishersFile != "" {
		tree.AddConfigService(services.NewPublishersWatchService(cfg.Discovery.PublishersFile, denylist))
		logging.Info().Str("path", cfg.Discovery.PublishersFile).Msg("Publishers file watcher added to supervisor tree")
	} else {
		logging.Info().Int("publishers", denylist.Len()).Msg("Using configured publisher denylist")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	errCh := tree.ServeBackground(ctx)

	// errCh receives exactly once, when the root supervisor returns.
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	logging.Info().Msg("Indiescout stopped")
}

// newCatalog returns the RAWG client, wrapped in a circuit breaker when
// enabled. breaker is nil without one.
func newCatalog(cfg *config.RAWGConfig) (discovery.Catalog, api.BreakerStater) {
	if !cfg.CircuitBreaker {
		logging.Info().Msg("RAWG circuit breaker disabled")
		return rawg.NewClient(cfg), nil
	}
	cb := rawg.NewCircuitBreakerClient(cfg)
	return cb, cb
}
