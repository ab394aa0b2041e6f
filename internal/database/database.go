// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/lib/pq"

	"github.com/tomtom215/tourcatalog/internal/config"
	"github.com/tomtom215/tourcatalog/internal/logging"
	"github.com/tomtom215/tourcatalog/internal/models"
)

// Supported drivers.
const (
	DriverDuckDB   = "duckdb"
	DriverPostgres = "postgres"
)

// DB wraps the catalog store connection and hands out repositories.
type DB struct {
	conn        *sql.DB
	driver      string
	path        string
	skipIndexes bool

	areaCodes     *ReferenceRepo[models.AreaCode]
	ldongCodes    *ReferenceRepo[models.LdongCode]
	festivals     *FestivalRepo
	restaurants   *RestaurantRepo
	travelCourses *TravelCourseRepo
	syncRuns      *SyncRunRepo
}

// New opens the configured store and brings its schema up to date.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	var (
		conn *sql.DB
		err  error
	)

	switch cfg.Driver {
	case DriverPostgres:
		conn, err = openPostgres(cfg)
	case DriverDuckDB, "":
		conn, err = openDuckDB(cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	driver := cfg.Driver
	if driver == "" {
		driver = DriverDuckDB
	}

	db := newDB(conn, driver, cfg.SkipIndexes)
	db.path = cfg.Path
	configureConnectionPool(conn, driver, cfg.MaxOpenConns)

	if err := db.initialize(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logging.Info().Str("driver", driver).Msg("Catalog store ready")
	return db, nil
}

// NewWithConn wraps an existing connection without running migrations.
// Tests use it with sqlmock and with externally managed databases.
func NewWithConn(conn *sql.DB, driver string) *DB {
	return newDB(conn, driver, true)
}

func newDB(conn *sql.DB, driver string, skipIndexes bool) *DB {
	db := &DB{
		conn:        conn,
		driver:      driver,
		skipIndexes: skipIndexes,
	}
	db.areaCodes = newAreaCodeRepo(db)
	db.ldongCodes = newLdongCodeRepo(db)
	db.festivals = &FestivalRepo{db: db}
	db.restaurants = &RestaurantRepo{db: db}
	db.travelCourses = &TravelCourseRepo{db: db}
	db.syncRuns = &SyncRunRepo{db: db}
	return db
}

func openDuckDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	// Ensure parent directory exists for database file
	if cfg.Path != ":memory:" {
		dbDir := filepath.Dir(cfg.Path)
		if dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
			}
		}
	}

	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s",
		cfg.Path, numThreads, cfg.MaxMemory)

	conn, err := sql.Open(DriverDuckDB, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return conn, nil
}

func openPostgres(cfg *config.DatabaseConfig) (*sql.DB, error) {
	conn, err := sql.Open(DriverPostgres, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return conn, nil
}

// initialize applies schema migrations and secondary indexes.
func (db *DB) initialize() error {
	if err := db.runVersionedMigrations(); err != nil {
		return err
	}
	if db.skipIndexes {
		return nil
	}
	return db.createIndexes()
}

// Close checkpoints DuckDB and closes the connection.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}

	if db.driver == DriverDuckDB {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := db.Checkpoint(ctx); err != nil {
			logging.Warn().Err(err).Msg("Failed to checkpoint database before close")
		}
		cancel()
	}

	return db.conn.Close()
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// Driver returns the driver name in use.
func (db *DB) Driver() string {
	return db.driver
}

// AreaCodes returns the area code repository.
func (db *DB) AreaCodes() *ReferenceRepo[models.AreaCode] {
	return db.areaCodes
}

// LdongCodes returns the legal-dong code repository.
func (db *DB) LdongCodes() *ReferenceRepo[models.LdongCode] {
	return db.ldongCodes
}

// Festivals returns the festival repository.
func (db *DB) Festivals() *FestivalRepo {
	return db.festivals
}

// Restaurants returns the restaurant repository.
func (db *DB) Restaurants() *RestaurantRepo {
	return db.restaurants
}

// TravelCourses returns the travel course repository.
func (db *DB) TravelCourses() *TravelCourseRepo {
	return db.travelCourses
}

// SyncRuns returns the run log repository.
func (db *DB) SyncRuns() *SyncRunRepo {
	return db.syncRuns
}
