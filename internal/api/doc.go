// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

/*
Package api provides the admin HTTP surface of the sync service.

The surface is small: it triggers sync runs, reports their state and serves
health probes and Prometheus metrics. There is no query-side API for the
synced catalog.

Routes:

  - POST /api/v1/sync/{domain}: run a domain now and return its RunSummary.
    409 when the domain is already running, 404 for an unknown domain.
  - GET /api/v1/sync/status: lifecycle state and last run per domain.
  - GET /api/v1/sync/runs?domain=&limit=: recent entries of the run log.
  - GET /api/v1/health/live and /api/v1/health/ready (store ping).
  - GET /metrics: Prometheus exposition.

Every JSON body uses the APIResponse envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "CONFLICT", "message": "..."}, "meta": {...}}

Middleware Stack:

Global: RequestID, RealIP, AccessLog, Recoverer, PrometheusMetrics. Trigger
routes are rate limited per client IP with httprate. Read routes get the
configured request timeout; triggers run synchronously and are not subject to
it, since a festival sync can take minutes.

A triggered run keeps going when the client disconnects. It carries the
request's correlation ID, which the response echoes in X-Correlation-ID.
*/
package api
