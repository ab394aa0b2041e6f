// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

/*
Package sync pulls the TourAPI catalog into the store.

Key Components:

  - Job: one per domain, returns a models.RunSummary for every run
  - Reference engine: area and legal-dong codes, replaced wholesale
  - Relational engine: festivals, restaurants and travel courses, upserted per item
  - Manager: single-flight trigger per domain plus a ticker scheduler

Run Lifecycle:

	idle -> fetching -> enriching -> upserting -> summarizing -> done
	                 (any active state) -> aborted

Reference domains read the whole listing, drop duplicate codes (the later
row wins) and write the result with one ReplaceAll. If the listing cannot be
read completely the table is left untouched and the run is aborted.

Relational domains process the listing page by page. Rows of a page are
enriched concurrently (detailCommon2, detailIntro2, and detailInfo2 or
detailImage2) by Options.Workers goroutines, then validated and upserted in
listing order. A failed sub-fetch does not stop the item: the aggregate is
stored with whatever was fetched, counted in SkippedDetail and listed in
FailedItems. Only a failed listing page or cancellation aborts the run, and
items already written stay in place.

Pagination stops after an empty or short page, once totalCount is covered,
or at Options.MaxPages.

Retries:

Calls failing with catalog.ErrTransientNetwork are retried up to
Options.RetryAttempts times with a doubling delay. Upstream format errors
are not retried.

Usage Example:

	opts := sync.OptionsFromConfig(&cfg.Sync)
	manager := sync.NewManager(&cfg.Sync, db.SyncRuns(),
	    sync.NewAreaCodeJob(client, db.AreaCodes(), opts),
	    sync.NewFestivalJob(client, db.Festivals(), opts),
	)

	summary, err := manager.RunSync(ctx, models.DomainFestival)
	if errors.Is(err, sync.ErrSyncInProgress) {
	    // another run of this domain is active
	}
*/
package sync
