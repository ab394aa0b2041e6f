// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package api

import (
	"context"
	"time"

	"github.com/tomtom215/tourcatalog/internal/models"
)

// SyncManager triggers runs and reports their state.
// Implemented by sync.Manager.
type SyncManager interface {
	RunSync(ctx context.Context, domain models.Domain) (*models.RunSummary, error)
	Statuses() []models.DomainStatus
}

// RunLog reads the persisted run log.
// Implemented by database.SyncRunRepo.
type RunLog interface {
	Recent(ctx context.Context, domain models.Domain, limit int) ([]models.RunSummary, error)
}

// Pinger reports whether the store is reachable.
// Implemented by database.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the admin API.
type Handler struct {
	sync      SyncManager
	runs      RunLog
	db        Pinger
	startTime time.Time
}

// NewHandler creates the admin API handlers.
func NewHandler(manager SyncManager, runs RunLog, db Pinger) *Handler {
	return &Handler{
		sync:      manager,
		runs:      runs,
		db:        db,
		startTime: time.Now(),
	}
}
