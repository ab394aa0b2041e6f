// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

// Package services adapts long-lived components to suture.Service so they
// can run under the supervisor tree.
//
//   - SyncService wraps the sync manager's Start/Stop lifecycle
//   - HTTPServerService wraps an *http.Server with graceful shutdown
//   - StoreMonitorService pings the catalog store and publishes its health
package services
