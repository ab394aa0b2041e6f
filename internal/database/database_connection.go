// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

/*
database_connection.go - Connection Pool and Write Conflict Handling

Connection Pool Configuration:
  - MaxOpenConns: database.max_open_conns, or NumCPU for DuckDB
  - MaxIdleConns: 2 for efficient connection reuse
  - ConnMaxLifetime: 1 hour to prevent stale connections
  - ConnMaxIdleTime: 5 minutes for idle connection cleanup

Write Conflicts:
DuckDB uses optimistic concurrency control. Two transactions touching the
same row fail with a transaction conflict instead of blocking. Writes are
retried a few times with a short exponential backoff before giving up.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"strings"
	"time"
)

// maxWriteAttempts bounds retries of a write that hit a transaction conflict.
const maxWriteAttempts = 3

// configureConnectionPool sets connection pool parameters
func configureConnectionPool(conn *sql.DB, driver string, maxOpen int) {
	if maxOpen <= 0 {
		maxOpen = runtime.NumCPU()
		if driver == DriverPostgres {
			maxOpen = 10
		}
	}
	conn.SetMaxOpenConns(maxOpen)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(time.Hour)
	conn.SetConnMaxIdleTime(5 * time.Minute)
}

// isTransactionConflict checks if an error is a DuckDB transaction conflict
// or a PostgreSQL serialization failure.
func isTransactionConflict(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "Transaction conflict") ||
		strings.Contains(errStr, "Conflict on update") ||
		strings.Contains(errStr, "could not serialize access")
}

// retryOnConflict runs fn until it succeeds, fails with a non-conflict error,
// or exhausts maxWriteAttempts.
func retryOnConflict(ctx context.Context, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return fmt.Errorf("operation timed out or canceled: %w", ctx.Err())
		}
		if !isTransactionConflict(err) {
			return err
		}

		if attempt < maxWriteAttempts-1 {
			backoff := time.Millisecond * time.Duration(1<<uint(attempt)) // 1ms, 2ms, 4ms
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return fmt.Errorf("max retries exceeded: %w", lastErr)
}
