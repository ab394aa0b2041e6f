// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

/*
manager.go - Sync Manager Lifecycle and Orchestration

The manager owns one Job per domain and is the only way to run them.

Single-flight:
Each domain has its own run lock. RunSync takes it with TryLock, so a trigger
that arrives while the domain is running is rejected with ErrSyncInProgress
instead of being queued or interleaved. Different domains run concurrently.

Lifecycle Methods:
  - NewManager(): register jobs
  - Start(): optional startup runs plus one ticker per scheduled domain
  - Stop(): cancel active runs and wait for the scheduler goroutines
  - RunSync(): manual trigger (admin API, scheduler)

Every finished run is appended to the run log and recorded in metrics.
*/

//nolint:staticcheck // File documentation, not package doc
package sync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/tourcatalog/internal/config"
	"github.com/tomtom215/tourcatalog/internal/logging"
	"github.com/tomtom215/tourcatalog/internal/metrics"
	"github.com/tomtom215/tourcatalog/internal/models"
)

// RunRecorder persists finished runs.
type RunRecorder interface {
	Append(ctx context.Context, run *models.RunSummary) error
}

// domainSlot is the per-domain state guarded by the manager.
type domainSlot struct {
	job       Job
	runMu     sync.Mutex // held for the duration of a run
	state     models.RunState
	lastRun   *models.RunSummary
	scheduled bool
}

// Manager runs sync jobs on demand and on a schedule.
type Manager struct {
	cfg      *config.SyncConfig
	recorder RunRecorder
	slots    map[models.Domain]*domainSlot
	order    []models.Domain

	mu       sync.RWMutex // protects slot state, lastRun and running
	running  bool
	stopChan chan struct{}
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	// lifetime bounds every run, including runs started with a detached
	// context. Stop ends it.
	lifetime    context.Context
	endLifetime context.CancelFunc
}

// NewManager registers jobs in the order given. recorder may be nil.
func NewManager(cfg *config.SyncConfig, recorder RunRecorder, jobs ...Job) *Manager {
	m := &Manager{
		cfg:      cfg,
		recorder: recorder,
		slots:    make(map[models.Domain]*domainSlot, len(jobs)),
	}

	scheduled := make(map[models.Domain]bool, len(cfg.Domains))
	for _, d := range cfg.EnabledDomains() {
		scheduled[d] = true
	}
	m.lifetime, m.endLifetime = context.WithCancel(context.Background())

	for _, job := range jobs {
		d := job.Domain()
		m.slots[d] = &domainSlot{
			job:       job,
			state:     models.RunStateIdle,
			scheduled: scheduled[d],
		}
		m.order = append(m.order, d)
	}

	logging.Info().
		Dur("interval", cfg.Interval).
		Dur("reference_interval", cfg.ReferenceInterval).
		Bool("run_on_startup", cfg.RunOnStartup).
		Int("page_size", cfg.PageSize).
		Int("workers", cfg.Workers).
		Msg("Sync manager config loaded")

	return m
}

// Domains returns the registered domains in registration order.
func (m *Manager) Domains() []models.Domain {
	return append([]models.Domain(nil), m.order...)
}

// RunSync runs the job of domain and returns its summary. A run that fails
// still returns a summary with an aborted status and a nil error; errors are
// reserved for runs that never started.
func (m *Manager) RunSync(ctx context.Context, domain models.Domain) (*models.RunSummary, error) {
	slot, ok := m.slots[domain]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDomain, domain)
	}

	if !slot.runMu.TryLock() {
		metrics.SyncRejected.WithLabelValues(string(domain)).Inc()
		return nil, fmt.Errorf("%w: %s", ErrSyncInProgress, domain)
	}
	defer slot.runMu.Unlock()

	ctx, release := m.bindLifetime(ctx)
	defer release()

	if logging.CorrelationIDFromContext(ctx) == "" {
		ctx = logging.ContextWithNewCorrelationID(ctx)
	}

	metrics.TrackSyncInProgress(string(domain), true)
	defer metrics.TrackSyncInProgress(string(domain), false)

	summary := slot.job.Run(ctx, func(state models.RunState) {
		m.mu.Lock()
		slot.state = state
		m.mu.Unlock()
	})

	m.record(ctx, summary)

	m.mu.Lock()
	slot.lastRun = summary
	m.mu.Unlock()

	return summary, nil
}

// bindLifetime derives a context that is canceled with ctx or by Stop.
func (m *Manager) bindLifetime(ctx context.Context) (context.Context, func()) {
	m.mu.RLock()
	lifetime := m.lifetime
	m.mu.RUnlock()

	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(lifetime, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// record appends the run to the log and updates metrics. The run log write
// uses its own context so a canceled run is still recorded.
func (m *Manager) record(ctx context.Context, summary *models.RunSummary) {
	metrics.RecordSyncRun(metrics.SyncRunResult{
		Domain:        string(summary.Domain),
		Completed:     summary.Status == models.RunCompleted,
		Duration:      summary.Duration(),
		Inserted:      summary.Inserted,
		Updated:       summary.Updated,
		Failed:        len(summary.FailedItems),
		SkippedDetail: summary.SkippedDetail,
		Skipped:       summary.Skipped,
		Pages:         summary.Pages,
		Warnings:      summary.Warnings,
	})

	if m.recorder == nil {
		return
	}
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := m.recorder.Append(recordCtx, summary); err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("run_id", summary.RunID).Msg("Failed to record sync run")
	}
}

// Status returns the lifecycle state of domain, or idle when unknown.
func (m *Manager) Status(domain models.Domain) models.RunState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if slot, ok := m.slots[domain]; ok {
		return slot.state
	}
	return models.RunStateIdle
}

// LastRun returns the latest finished run of domain since startup, or nil.
func (m *Manager) LastRun(domain models.Domain) *models.RunSummary {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if slot, ok := m.slots[domain]; ok {
		return slot.lastRun
	}
	return nil
}

// Statuses returns the state of every registered domain.
func (m *Manager) Statuses() []models.DomainStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.DomainStatus, 0, len(m.order))
	for _, d := range m.order {
		slot := m.slots[d]
		out = append(out, models.DomainStatus{
			Domain:    d,
			State:     slot.state,
			Scheduled: slot.scheduled,
			LastRun:   slot.lastRun,
		})
	}
	return out
}

// IsRunning reports whether the scheduler is started.
func (m *Manager) IsRunning() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.running
}
