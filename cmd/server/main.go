// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package main

import (
	"context"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/tourcatalog/internal/api"
	"github.com/tomtom215/tourcatalog/internal/catalog"
	"github.com/tomtom215/tourcatalog/internal/config"
	"github.com/tomtom215/tourcatalog/internal/database"
	"github.com/tomtom215/tourcatalog/internal/logging"
	"github.com/tomtom215/tourcatalog/internal/metrics"
	"github.com/tomtom215/tourcatalog/internal/supervisor"
	"github.com/tomtom215/tourcatalog/internal/supervisor/services"
	"github.com/tomtom215/tourcatalog/internal/sync"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const storeCheckInterval = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("catalog_url", logging.RedactURL(cfg.Catalog.BaseURL)).
		Str("db_driver", cfg.Database.Driver).
		Strs("domains", cfg.Sync.Domains).
		Msg("Starting tourcatalog with supervisor tree")
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	var client catalog.Client = catalog.NewHTTPClient(&cfg.Catalog)
	if cfg.Catalog.CircuitBreaker {
		client = catalog.NewCircuitBreakerClient(client)
		logging.Info().Msg("Catalog circuit breaker enabled")
	}

	opts := sync.OptionsFromConfig(&cfg.Sync)
	manager := sync.NewManager(&cfg.Sync, db.SyncRuns(),
		sync.NewAreaCodeJob(client, db.AreaCodes(), opts),
		sync.NewLdongCodeJob(client, db.LdongCodes(), opts),
		sync.NewFestivalJob(client, db.Festivals(), opts),
		sync.NewRestaurantJob(client, db.Restaurants(), opts),
		sync.NewTravelCourseJob(client, db.TravelCourses(), opts),
	)

	handler := api.NewHandler(manager, db.SyncRuns(), db)
	router := api.NewRouter(handler, &cfg.Server)

	// No WriteTimeout: sync triggers respond when the run finishes. Other
	// routes are bounded by the router's timeout middleware.
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(services.NewStoreMonitorService(db, storeCheckInterval))
	tree.AddSyncService(services.NewSyncService(manager))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	err = supervisor.AwaitStop(ctx, errCh, func() {
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
	})
	if err != nil {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
