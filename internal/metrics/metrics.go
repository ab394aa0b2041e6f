// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tourcatalog_db_query_duration_seconds",
			Help:    "Duration of catalog store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourcatalog_db_query_errors_total",
			Help: "Total number of catalog store query errors",
		},
		[]string{"operation", "table"},
	)

	// Admin API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourcatalog_api_requests_total",
			Help: "Total number of admin API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tourcatalog_api_request_duration_seconds",
			Help:    "Duration of admin API requests in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tourcatalog_api_active_requests",
			Help: "Number of admin API requests currently being served",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourcatalog_api_rate_limit_hits_total",
			Help: "Total number of admin API requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)

	// Catalog Client Metrics
	CatalogRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourcatalog_catalog_requests_total",
			Help: "Total number of TourAPI requests by operation and outcome",
		},
		[]string{"operation", "result"}, // result: success, transient, format, canceled, error
	)

	CatalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tourcatalog_catalog_request_duration_seconds",
			Help:    "Duration of TourAPI requests in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation"},
	)

	CatalogRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourcatalog_catalog_retries_total",
			Help: "Total number of retried TourAPI calls",
		},
		[]string{"domain"},
	)

	// Sync Metrics
	SyncDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tourcatalog_sync_duration_seconds",
			Help:    "Duration of sync runs in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600, 1800},
		},
		[]string{"domain"},
	)

	SyncRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourcatalog_sync_runs_total",
			Help: "Total number of finished sync runs by status",
		},
		[]string{"domain", "status"},
	)

	SyncItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourcatalog_sync_items_total",
			Help: "Total number of synced items by outcome",
		},
		[]string{"domain", "outcome"}, // inserted, updated, failed, skipped_detail, skipped
	)

	SyncPages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourcatalog_sync_pages_total",
			Help: "Total number of listing pages fetched",
		},
		[]string{"domain"},
	)

	SyncWarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourcatalog_sync_mapping_warnings_total",
			Help: "Total number of mapper warnings (malformed coordinates, dates)",
		},
		[]string{"domain"},
	)

	SyncLastSuccess = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tourcatalog_sync_last_success_timestamp",
			Help: "Unix timestamp of the last completed sync run",
		},
		[]string{"domain"},
	)

	SyncInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tourcatalog_sync_in_progress",
			Help: "1 while a sync run is active for the domain",
		},
		[]string{"domain"},
	)

	SyncRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourcatalog_sync_rejected_total",
			Help: "Total number of sync requests rejected because a run was already active",
		},
		[]string{"domain"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tourcatalog_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourcatalog_circuit_breaker_requests_total",
			Help: "Total requests through the circuit breaker by result",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tourcatalog_circuit_breaker_consecutive_failures",
			Help: "Current consecutive failures seen by the circuit breaker",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourcatalog_circuit_breaker_transitions_total",
			Help: "Total circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tourcatalog_app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tourcatalog_app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)

	StoreUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tourcatalog_store_up",
			Help: "Whether the last store ping succeeded (1) or failed (0)",
		},
	)
)

// RecordDBQuery records a store query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordAPIRequest records an admin API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active admin API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCatalogRequest records one TourAPI call. The outcome label is
// chosen by the caller so this package stays free of client error types.
func RecordCatalogRequest(operation, outcome string, duration time.Duration) {
	CatalogRequests.WithLabelValues(operation, outcome).Inc()
	CatalogRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SyncRunResult is the subset of a run summary needed for metrics.
type SyncRunResult struct {
	Domain        string
	Completed     bool
	Duration      time.Duration
	Inserted      int
	Updated       int
	Failed        int
	SkippedDetail int
	Skipped       int
	Pages         int
	Warnings      int
}

// RecordSyncRun records a finished sync run
func RecordSyncRun(r SyncRunResult) {
	status := "aborted"
	if r.Completed {
		status = "completed"
		SyncLastSuccess.WithLabelValues(r.Domain).Set(float64(time.Now().Unix()))
	}
	SyncDuration.WithLabelValues(r.Domain).Observe(r.Duration.Seconds())
	SyncRuns.WithLabelValues(r.Domain, status).Inc()
	SyncItems.WithLabelValues(r.Domain, "inserted").Add(float64(r.Inserted))
	SyncItems.WithLabelValues(r.Domain, "updated").Add(float64(r.Updated))
	SyncItems.WithLabelValues(r.Domain, "failed").Add(float64(r.Failed))
	SyncItems.WithLabelValues(r.Domain, "skipped_detail").Add(float64(r.SkippedDetail))
	SyncItems.WithLabelValues(r.Domain, "skipped").Add(float64(r.Skipped))
	SyncPages.WithLabelValues(r.Domain).Add(float64(r.Pages))
	SyncWarnings.WithLabelValues(r.Domain).Add(float64(r.Warnings))
}

// TrackSyncInProgress flips the in-progress gauge for a domain
func TrackSyncInProgress(domain string, active bool) {
	if active {
		SyncInProgress.WithLabelValues(domain).Set(1)
	} else {
		SyncInProgress.WithLabelValues(domain).Set(0)
	}
}

// OutcomeForError maps an error to an upstream outcome label using the
// supplied sentinel errors.
func OutcomeForError(err error, transient, format error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, transient):
		return "transient"
	case errors.Is(err, format):
		return "format"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
