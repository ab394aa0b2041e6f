// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/tourcatalog/internal/logging"
	"github.com/tomtom215/tourcatalog/internal/models"
)

// Start launches the scheduler. With RunOnStartup every scheduled domain
// runs once in the background, reference domains first. Each scheduled
// domain then runs on its own ticker.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return fmt.Errorf("sync manager is already running")
	}
	m.running = true
	m.stopChan = make(chan struct{})
	if m.lifetime.Err() != nil {
		m.lifetime, m.endLifetime = context.WithCancel(context.Background())
	}
	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.mu.Unlock()

	logging.Info().Msg("Starting sync manager...")

	domains := m.scheduledDomains()

	// Add all goroutines to the WaitGroup before starting them so Stop
	// cannot observe a partial count.
	m.wg.Add(len(domains))
	if m.cfg.RunOnStartup {
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			m.runStartup(runCtx, domains)
		}()
	}
	for _, d := range domains {
		go m.syncLoop(runCtx, d, m.intervalFor(d))
	}

	logging.Info().Int("domains", len(domains)).Msg("Sync scheduler started")
	return nil
}

// Stop cancels active runs, scheduled or triggered, and waits for the
// scheduler to exit.
func (m *Manager) Stop() error {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return fmt.Errorf("sync manager is not running")
	}
	m.running = false
	close(m.stopChan)
	m.cancel()
	m.endLifetime()
	m.mu.Unlock()

	logging.Info().Msg("Stopping sync manager...")
	m.wg.Wait()
	logging.Info().Msg("Sync manager stopped")
	return nil
}

// scheduledDomains returns scheduled domains with reference domains first.
func (m *Manager) scheduledDomains() []models.Domain {
	var reference, relational []models.Domain
	for _, d := range m.order {
		if !m.slots[d].scheduled {
			continue
		}
		if d.IsReference() {
			reference = append(reference, d)
		} else {
			relational = append(relational, d)
		}
	}
	return append(reference, relational...)
}

func (m *Manager) intervalFor(d models.Domain) time.Duration {
	interval := m.cfg.Interval
	if d.IsReference() && m.cfg.ReferenceInterval > 0 {
		interval = m.cfg.ReferenceInterval
	}
	if interval <= 0 {
		interval = time.Hour
	}
	return interval
}

// runStartup runs every domain once, sequentially, so content rows are
// written after the code tables they refer to.
func (m *Manager) runStartup(ctx context.Context, domains []models.Domain) {
	for _, d := range domains {
		if ctx.Err() != nil {
			return
		}
		m.scheduledRun(ctx, d)
	}
}

func (m *Manager) syncLoop(ctx context.Context, domain models.Domain, interval time.Duration) {
	defer m.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stopChan:
			return
		case <-ticker.C:
			m.scheduledRun(ctx, domain)
		}
	}
}

func (m *Manager) scheduledRun(ctx context.Context, domain models.Domain) {
	summary, err := m.RunSync(ctx, domain)
	switch {
	case errors.Is(err, ErrSyncInProgress):
		logging.Debug().Str("domain", string(domain)).Msg("Skipping scheduled sync, previous run still active")
	case err != nil:
		logging.Error().Err(err).Str("domain", string(domain)).Msg("Scheduled sync failed to start")
	case summary.Status == models.RunAborted:
		logging.Warn().Str("domain", string(domain)).Str("error", summary.Error).Msg("Scheduled sync aborted")
	}
}
