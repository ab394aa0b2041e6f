// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

/*
Package supervisor runs the service's long-lived components under a
suture/v4 supervisor tree.

Tree layout:

	tourcatalog (root)
	├── data-layer
	│   └── store-monitor
	├── sync-layer
	│   └── sync-manager
	└── api-layer
	    └── http-server

Each layer is its own supervisor, so a crashing sync manager is restarted
with backoff while the admin API keeps serving. Supervisor events (service
failures, backoff, restarts) are logged through sutureslog into the zerolog
logger via logging.NewSlogLogger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewStoreMonitorService(db, 30*time.Second))
	tree.AddSyncService(services.NewSyncService(manager))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx)

The service wrappers live in the services subpackage.
*/
package supervisor
