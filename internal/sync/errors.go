// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package sync

import "errors"

var (
	// ErrSyncInProgress is returned when a domain already has an active run.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrUnknownDomain is returned for a domain without a registered job.
	ErrUnknownDomain = errors.New("unknown sync domain")
)
