// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package services

import (
	"context"
	"time"

	"github.com/tomtom215/tourcatalog/internal/logging"
	"github.com/tomtom215/tourcatalog/internal/metrics"
)

// Pinger is satisfied by *database.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreMonitorService pings the catalog store on an interval and publishes
// the result as tourcatalog_store_up. It also refreshes the uptime gauge.
type StoreMonitorService struct {
	store    Pinger
	interval time.Duration
	started  time.Time
	name     string
}

// NewStoreMonitorService creates a store monitor. A non-positive interval
// defaults to 30s.
func NewStoreMonitorService(store Pinger, interval time.Duration) *StoreMonitorService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &StoreMonitorService{
		store:    store,
		interval: interval,
		started:  time.Now(),
		name:     "store-monitor",
	}
}

// Serve implements suture.Service. Ping failures are reported through the
// gauge and the log; they never stop the service.
func (s *StoreMonitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	healthy := s.check(ctx, true)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			healthy = s.check(ctx, healthy)
		}
	}
}

// check pings once and logs only on health transitions.
func (s *StoreMonitorService) check(ctx context.Context, wasHealthy bool) bool {
	metrics.AppUptime.Set(time.Since(s.started).Seconds())

	pingCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	if err := s.store.Ping(pingCtx); err != nil {
		metrics.StoreUp.Set(0)
		if wasHealthy && ctx.Err() == nil {
			logging.Warn().Err(err).Msg("Catalog store ping failed")
		}
		return false
	}
	metrics.StoreUp.Set(1)
	if !wasHealthy {
		logging.Info().Msg("Catalog store is reachable again")
	}
	return true
}

// String implements fmt.Stringer for suture's log messages.
func (s *StoreMonitorService) String() string {
	return s.name
}
