// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/tourcatalog/internal/config"
	"github.com/tomtom215/tourcatalog/internal/metrics"
	"github.com/tomtom215/tourcatalog/internal/middleware"
)

// Router wires the admin handlers to chi.
type Router struct {
	handler *Handler
	cfg     *config.ServerConfig
}

// NewRouter creates a router for h configured by cfg.
func NewRouter(h *Handler, cfg *config.ServerConfig) *Router {
	return &Router{handler: h, cfg: cfg}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Applied to ALL routes in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).Error(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	// Read-only routes are bounded by the request timeout.
	r.Group(func(r chi.Router) {
		r.Use(chimiddleware.Timeout(router.timeout()))

		r.Get("/api/v1/health/live", router.handler.HealthLive)
		r.Get("/api/v1/health/ready", router.handler.HealthReady)
		r.Get("/api/v1/sync/status", router.handler.SyncStatus)
		r.Get("/api/v1/sync/runs", router.handler.SyncRuns)
		r.Handle("/metrics", promhttp.Handler())
	})

	r.Group(func(r chi.Router) {
		r.Use(router.rateLimit())
		r.Post("/api/v1/sync/{domain}", router.handler.TriggerSync)
	})

	return r
}

func (router *Router) timeout() time.Duration {
	if router.cfg.Timeout > 0 {
		return router.cfg.Timeout
	}
	return 30 * time.Second
}

// rateLimit limits sync triggers per client IP. RealIP runs first, so the
// key is the forwarded address behind a proxy.
func (router *Router) rateLimit() func(http.Handler) http.Handler {
	if router.cfg.RateLimitRequests <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	window := router.cfg.RateLimitWindow
	if window <= 0 {
		window = time.Minute
	}

	return httprate.Limit(
		router.cfg.RateLimitRequests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.APIRateLimitHits.WithLabelValues(chi.RouteContext(r.Context()).RoutePattern()).Inc()
			NewResponseWriter(w, r).TooManyRequests("too many sync triggers, retry later")
		}),
	)
}
