// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

//go:build integration

package database

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/tourcatalog/internal/config"
	"github.com/tomtom215/tourcatalog/internal/models"
	"github.com/tomtom215/tourcatalog/internal/testinfra"
)

// Usage:
//   go test -tags integration -run Postgres ./internal/database/...

func setupPostgresDB(t *testing.T) *DB {
	t.Helper()
	testinfra.SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testinfra.NewPostgresContainer(ctx)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() { testinfra.CleanupContainer(t, container) })
	dsn := container.DSN

	db, err := New(&config.DatabaseConfig{Driver: DriverPostgres, DSN: dsn})
	if err != nil {
		t.Fatalf("New(postgres) error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestPostgres_Store(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := setupPostgresDB(t)
	ctx := context.Background()

	t.Run("reference replace", func(t *testing.T) {
		repo := db.AreaCodes()
		if err := repo.ReplaceAll(ctx, []models.AreaCode{{Code: "1", Name: "서울"}, {Code: "99", Name: "old"}}); err != nil {
			t.Fatalf("ReplaceAll() error = %v", err)
		}
		want := []models.AreaCode{{Code: "1", Name: "서울특별시"}, {Code: "2", Name: "인천"}}
		if err := repo.ReplaceAll(ctx, want); err != nil {
			t.Fatalf("ReplaceAll() error = %v", err)
		}
		got, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("List() = %+v, want %+v", got, want)
		}
	})

	t.Run("festival upsert", func(t *testing.T) {
		repo := db.Festivals()
		if err := repo.Upsert(ctx, testFestival("100", "before", "a", "b")); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
		want := testFestival("100", "after", "c")
		if err := repo.Upsert(ctx, want); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
		got, err := repo.Find(ctx, "100")
		if err != nil {
			t.Fatalf("Find() error = %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Find() = %+v, want %+v", got, want)
		}
	})

	t.Run("run log", func(t *testing.T) {
		run := testRun("pg-run", models.DomainFestival, time.Date(2025, time.June, 1, 3, 0, 0, 0, time.UTC))
		if err := db.SyncRuns().Append(ctx, run); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
		runs, err := db.SyncRuns().Recent(ctx, models.DomainFestival, 5)
		if err != nil {
			t.Fatalf("Recent() error = %v", err)
		}
		if len(runs) != 1 || !reflect.DeepEqual(runs[0], *run) {
			t.Errorf("Recent() = %+v, want [%+v]", runs, *run)
		}
	})
}
