// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package models

import "time"

// RunStatus is the terminal status of a sync run.
type RunStatus string

const (
	RunCompleted RunStatus = "completed"
	RunAborted   RunStatus = "aborted"
)

// RunState is the lifecycle position of a domain's sync job.
//
//	idle -> fetching -> enriching -> upserting -> summarizing -> done
//
// Any non-terminal state may move to aborted. Reference domains skip
// enriching.
type RunState string

const (
	RunStateIdle        RunState = "idle"
	RunStateFetching    RunState = "fetching"
	RunStateEnriching   RunState = "enriching"
	RunStateUpserting   RunState = "upserting"
	RunStateSummarizing RunState = "summarizing"
	RunStateDone        RunState = "done"
	RunStateAborted     RunState = "aborted"
)

// IsActive reports whether a run is in progress in this state.
func (s RunState) IsActive() bool {
	switch s {
	case RunStateFetching, RunStateEnriching, RunStateUpserting, RunStateSummarizing:
		return true
	default:
		return false
	}
}

// RunSummary is the outcome of one sync run.
//
// Inserted + Updated == Upserted. FailedItems holds content IDs in the order
// they first failed and never repeats an ID.
type RunSummary struct {
	RunID         string    `json:"run_id"`
	Domain        Domain    `json:"domain"`
	Status        RunStatus `json:"status"`
	Fetched       int       `json:"fetched"`
	Upserted      int       `json:"upserted"`
	Inserted      int       `json:"inserted"`
	Updated       int       `json:"updated"`
	SkippedDetail int       `json:"skipped_detail"`
	Skipped       int       `json:"skipped"`
	FailedItems   []string  `json:"failed_items"`
	Warnings      int       `json:"warnings"`
	Pages         int       `json:"pages"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
	Error         string    `json:"error,omitempty"`
}

// Duration returns the wall time of the run.
func (s *RunSummary) Duration() time.Duration {
	if s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

// AddFailed records a failed content ID once, preserving first-failure order.
func (s *RunSummary) AddFailed(contentID string) {
	for _, id := range s.FailedItems {
		if id == contentID {
			return
		}
	}
	s.FailedItems = append(s.FailedItems, contentID)
}

// DomainStatus is the externally visible state of one domain.
type DomainStatus struct {
	Domain    Domain      `json:"domain"`
	State     RunState    `json:"state"`
	Scheduled bool        `json:"scheduled"`
	LastRun   *RunSummary `json:"last_run,omitempty"`
}
