// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tourcatalog/internal/models"
)

const syncRunColumns = `run_id, domain, status, fetched, upserted, inserted, updated, skipped_detail,
	skipped, warnings, pages, failed_items, started_at, finished_at, error`

// SyncRunRepo is the append-only log of finished sync runs.
type SyncRunRepo struct {
	db *DB
}

// Append records a finished run. Runs are never updated.
func (r *SyncRunRepo) Append(ctx context.Context, run *models.RunSummary) (err error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() { observe("append", "sync_runs", start, err) }()

	failed := run.FailedItems
	if failed == nil {
		failed = []string{}
	}
	failedJSON, err := json.Marshal(failed)
	if err != nil {
		return persistenceError("encode", "sync_runs", err)
	}

	query := "INSERT INTO sync_runs (" + syncRunColumns + ") VALUES (" + placeholders(1, 15) + ")"
	_, err = r.db.conn.ExecContext(ctx, query,
		run.RunID, string(run.Domain), string(run.Status), run.Fetched, run.Upserted, run.Inserted,
		run.Updated, run.SkippedDetail, run.Skipped, run.Warnings, run.Pages, string(failedJSON),
		run.StartedAt.UTC(), run.FinishedAt.UTC(), nullString(run.Error),
	)
	if err != nil {
		return persistenceError("insert", "sync_runs", fmt.Errorf("run %s: %w", run.RunID, err))
	}
	return nil
}

// Recent returns up to limit runs, newest first. An empty domain matches
// every domain.
func (r *SyncRunRepo) Recent(ctx context.Context, domain models.Domain, limit int) (runs []models.RunSummary, err error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() { observe("recent", "sync_runs", start, err) }()

	if limit <= 0 {
		limit = 20
	}

	query := "SELECT " + syncRunColumns + " FROM sync_runs"
	args := []any{}
	if domain != "" {
		query += " WHERE domain = $1"
		args = append(args, string(domain))
	}
	query += fmt.Sprintf(" ORDER BY started_at DESC, run_id LIMIT %d", limit)

	rows, err := r.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sync runs: %w", err)
	}
	defer rows.Close()

	runs = make([]models.RunSummary, 0)
	for rows.Next() {
		var run models.RunSummary
		var domainName, status, failedJSON string
		var runErr sql.NullString
		if err := rows.Scan(
			&run.RunID, &domainName, &status, &run.Fetched, &run.Upserted, &run.Inserted,
			&run.Updated, &run.SkippedDetail, &run.Skipped, &run.Warnings, &run.Pages, &failedJSON,
			&run.StartedAt, &run.FinishedAt, &runErr,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sync run: %w", err)
		}
		if err := json.Unmarshal([]byte(failedJSON), &run.FailedItems); err != nil {
			return nil, fmt.Errorf("failed to decode failed items of run %s: %w", run.RunID, err)
		}
		run.Domain = models.Domain(domainName)
		run.Status = models.RunStatus(status)
		run.StartedAt = run.StartedAt.UTC()
		run.FinishedAt = run.FinishedAt.UTC()
		run.Error = runErr.String
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Count returns the number of logged runs.
func (r *SyncRunRepo) Count(ctx context.Context) (int64, error) {
	return r.db.countRows(ctx, "sync_runs")
}
