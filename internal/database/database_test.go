// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package database

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/tourcatalog/internal/config"
)

// testDBSemaphore serializes tests that hold a DuckDB connection. Concurrent
// CGO calls from many tests can hang under CI resource pressure.
var testDBSemaphore = make(chan struct{}, 1)

// setupTestDB creates a new in-memory store. The semaphore is held until the
// test completes.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	type result struct {
		db  *DB
		err error
	}

	resultCh := make(chan result, 1)
	go func() {
		db, err := New(&config.DatabaseConfig{
			Path:        ":memory:",
			MaxMemory:   "512MB",
			SkipIndexes: true,
		})
		resultCh <- result{db: db, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			t.Fatalf("Failed to create test database: %v", res.err)
		}
		t.Cleanup(func() {
			if err := res.db.Close(); err != nil {
				t.Errorf("Close() error = %v", err)
			}
		})
		return res.db
	case <-time.After(120 * time.Second):
		t.Fatalf("Timeout: database creation took longer than 120s")
		return nil
	}
}

func TestNew_AppliesAllMigrations(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	version, err := db.GetCurrentSchemaVersion(ctx)
	if err != nil {
		t.Fatalf("GetCurrentSchemaVersion() error = %v", err)
	}
	if want := len(getMigrations()); version != want {
		t.Errorf("schema version = %d, want %d", version, want)
	}

	for _, table := range []string{
		"area_codes", "ldong_codes", "festivals", "festival_images", "restaurants",
		"restaurant_menus", "travel_courses", "travel_course_details", "sync_runs",
	} {
		if _, err := db.countRows(ctx, table); err != nil {
			t.Errorf("table %s not usable: %v", table, err)
		}
	}
}

func TestNew_MigrationsAreIdempotent(t *testing.T) {
	db := setupTestDB(t)

	if err := db.initialize(); err != nil {
		t.Fatalf("second initialize() error = %v", err)
	}

	applied, err := db.getAppliedMigrations(context.Background())
	if err != nil {
		t.Fatalf("getAppliedMigrations() error = %v", err)
	}
	if len(applied) != len(getMigrations()) {
		t.Errorf("applied migrations = %d, want %d", len(applied), len(getMigrations()))
	}
}

func TestNew_WithIndexes(t *testing.T) {
	testDBSemaphore <- struct{}{}
	defer func() { <-testDBSemaphore }()

	db, err := New(&config.DatabaseConfig{Path: ":memory:", MaxMemory: "512MB"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer db.Close()

	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
	if db.Driver() != DriverDuckDB {
		t.Errorf("Driver() = %q, want %q", db.Driver(), DriverDuckDB)
	}
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Driver: "sqlite"})
	if err == nil || !strings.Contains(err.Error(), "unsupported database driver") {
		t.Fatalf("New() error = %v, want unsupported driver", err)
	}
}

func TestEnsureContext(t *testing.T) {
	ctx, cancel := ensureContext(context.Background())
	defer cancel()
	if _, ok := ctx.Deadline(); !ok {
		t.Error("ensureContext() without deadline should add one")
	}

	parent, parentCancel := context.WithTimeout(context.Background(), time.Second)
	defer parentCancel()
	ctx2, cancel2 := ensureContext(parent)
	defer cancel2()
	if ctx2 != parent {
		t.Error("ensureContext() should keep a context that already has a deadline")
	}
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		from, n int
		want    string
	}{
		{1, 1, "$1"},
		{1, 3, "$1, $2, $3"},
		{4, 2, "$4, $5"},
	}
	for _, tt := range tests {
		if got := placeholders(tt.from, tt.n); got != tt.want {
			t.Errorf("placeholders(%d, %d) = %q, want %q", tt.from, tt.n, got, tt.want)
		}
	}
}

func TestIsTransactionConflict(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("TransactionContext Error: Transaction conflict: cannot update a table"), true},
		{errors.New("Conflict on update!"), true},
		{errors.New("pq: could not serialize access due to concurrent update"), true},
		{errors.New("disk full"), false},
	}
	for _, tt := range tests {
		if got := isTransactionConflict(tt.err); got != tt.want {
			t.Errorf("isTransactionConflict(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestRetryOnConflict(t *testing.T) {
	ctx := context.Background()

	t.Run("retries conflicts until success", func(t *testing.T) {
		calls := 0
		err := retryOnConflict(ctx, func() error {
			calls++
			if calls < 3 {
				return errors.New("Transaction conflict")
			}
			return nil
		})
		if err != nil || calls != 3 {
			t.Errorf("err = %v, calls = %d; want nil, 3", err, calls)
		}
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		err := retryOnConflict(ctx, func() error {
			calls++
			return errors.New("Transaction conflict")
		})
		if err == nil || calls != maxWriteAttempts {
			t.Errorf("err = %v, calls = %d; want error, %d", err, calls, maxWriteAttempts)
		}
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := retryOnConflict(ctx, func() error {
			calls++
			return boom
		})
		if !errors.Is(err, boom) || calls != 1 {
			t.Errorf("err = %v, calls = %d; want boom, 1", err, calls)
		}
	})
}
