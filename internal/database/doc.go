// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

// Package database is the catalog store.
//
// It runs on DuckDB (default, embedded) or PostgreSQL through database/sql.
// One SQL dialect serves both: $n placeholders, INSERT ... ON CONFLICT DO
// UPDATE, and a small set of column types.
//
// # Repositories
//
//   - ReferenceRepo: area and legal-dong code tables. ReplaceAll deletes
//     every row and inserts the new set in one transaction.
//   - FestivalRepo, RestaurantRepo, TravelCourseRepo: content aggregates keyed
//     by content ID. Upsert writes the parent row and replaces the owned child
//     rows (images, menus, course legs) in one transaction. Find returns nil
//     when the content ID is unknown.
//   - SyncRunRepo: append-only log of finished sync runs.
//
// Every failed write wraps ErrPersistence:
//
//	if err := db.Festivals().Upsert(ctx, f); errors.Is(err, database.ErrPersistence) {
//	    // the item was not stored; the previous version is intact
//	}
//
// # Schema
//
// Tables are created by versioned migrations recorded in schema_migrations.
// Secondary indexes are created after migrations unless SkipIndexes is set.
//
// # Concurrency
//
// DuckDB reports conflicting concurrent writes as errors instead of
// blocking. Write transactions are retried a few times on conflict. Callers
// are still expected to run at most one sync per domain at a time.
package database
