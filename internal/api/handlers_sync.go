// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/tourcatalog/internal/logging"
	"github.com/tomtom215/tourcatalog/internal/models"
	"github.com/tomtom215/tourcatalog/internal/sync"
)

// TriggerSync handles POST /api/v1/sync/{domain}.
// The run is synchronous; the response carries its summary, including
// aborted runs. The run is detached from the request's cancellation;
// Manager.Stop still ends it.
func (h *Handler) TriggerSync(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	domain, err := models.ParseDomain(chi.URLParam(r, "domain"))
	if err != nil {
		rw.NotFound(err.Error())
		return
	}

	summary, err := h.sync.RunSync(context.WithoutCancel(r.Context()), domain)
	switch {
	case errors.Is(err, sync.ErrSyncInProgress):
		rw.Conflict("sync already in progress for " + string(domain))
		return
	case errors.Is(err, sync.ErrUnknownDomain):
		rw.NotFound("no sync job registered for " + string(domain))
		return
	case err != nil:
		logging.Ctx(r.Context()).Error().Err(err).Str("domain", string(domain)).Msg("Sync trigger failed")
		rw.InternalError("sync could not be started")
		return
	}

	rw.Success(summary)
}

// SyncStatus handles GET /api/v1/sync/status.
func (h *Handler) SyncStatus(w http.ResponseWriter, r *http.Request) {
	statuses := h.sync.Statuses()
	NewResponseWriter(w, r).SuccessWithCount(statuses, len(statuses))
}

// SyncRuns handles GET /api/v1/sync/runs.
func (h *Handler) SyncRuns(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, apiErr := parseRunsRequest(r)
	if apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	runs, err := h.runs.Recent(r.Context(), models.Domain(req.Domain), req.Limit)
	if err != nil {
		rw.DatabaseError(err)
		return
	}
	if runs == nil {
		runs = []models.RunSummary{}
	}

	rw.SuccessWithCount(runs, len(runs))
}
