// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
are exposed by the admin router at /metrics. Every metric name carries the
tourcatalog_ prefix.

# Available Metrics

Store:
  - tourcatalog_db_query_duration_seconds (histogram; operation, table)
  - tourcatalog_db_query_errors_total (counter; operation, table)

Admin API:
  - tourcatalog_api_requests_total (counter; method, endpoint, status)
  - tourcatalog_api_request_duration_seconds (histogram; method, endpoint)
  - tourcatalog_api_active_requests (gauge)
  - tourcatalog_api_rate_limit_hits_total (counter; endpoint)

Catalog client:
  - tourcatalog_catalog_requests_total (counter; operation, result)
  - tourcatalog_catalog_request_duration_seconds (histogram; operation)
  - tourcatalog_catalog_retries_total (counter; domain)
  - tourcatalog_circuit_breaker_* (state, requests, consecutive failures, transitions)

Sync:
  - tourcatalog_sync_duration_seconds (histogram; domain)
  - tourcatalog_sync_runs_total (counter; domain, status)
  - tourcatalog_sync_items_total (counter; domain, outcome)
  - tourcatalog_sync_pages_total (counter; domain)
  - tourcatalog_sync_mapping_warnings_total (counter; domain)
  - tourcatalog_sync_last_success_timestamp (gauge; domain)
  - tourcatalog_sync_in_progress (gauge; domain)
  - tourcatalog_sync_rejected_total (counter; domain)

# Usage Example

	start := time.Now()
	rows, err := db.QueryContext(ctx, query)
	metrics.RecordDBQuery("select", "festivals", time.Since(start), err)

# Thread Safety

All collectors are safe for concurrent use.
*/
package metrics
