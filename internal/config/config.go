// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values for every optional setting
//  2. Config File: optional YAML file (config.yaml)
//  3. Environment Variables: override any setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load config")
//	}
//	client := catalog.NewHTTPClient(&cfg.Catalog)
type Config struct {
	Catalog  CatalogConfig  `koanf:"catalog"`
	Sync     SyncConfig     `koanf:"sync"`
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// CatalogConfig configures the TourAPI client.
type CatalogConfig struct {
	BaseURL    string `koanf:"base_url"`
	ServiceKey string `koanf:"service_key"`
	MobileOS   string `koanf:"mobile_os"`  // ETC, IOS, AND, WIN
	MobileApp  string `koanf:"mobile_app"` // service name reported to the upstream

	Timeout        time.Duration `koanf:"timeout"`         // per-call timeout
	RateLimit      float64       `koanf:"rate_limit"`      // requests per second across all calls
	RateBurst      int           `koanf:"rate_burst"`      // token bucket burst
	CircuitBreaker bool          `koanf:"circuit_breaker"` // wrap the client in a gobreaker circuit breaker
}

// SyncConfig configures the sync jobs and their scheduler.
type SyncConfig struct {
	Interval          time.Duration `koanf:"interval"`           // relational domains
	ReferenceInterval time.Duration `koanf:"reference_interval"` // area and ldong codes
	RunOnStartup      bool          `koanf:"run_on_startup"`
	Domains           []string      `koanf:"domains"` // domains scheduled by the manager

	PageSize      int           `koanf:"page_size"`
	MaxPages      int           `koanf:"max_pages"` // hard stop for runaway pagination
	RetryAttempts int           `koanf:"retry_attempts"`
	RetryDelay    time.Duration `koanf:"retry_delay"` // doubles after each failed attempt
	Workers       int           `koanf:"workers"`     // concurrent detail enrichments per page

	FestivalStartDate string `koanf:"festival_start_date"` // YYYYMMDD; empty = January 1st of the current year
	AreaCode          string `koanf:"area_code"`           // optional listing filter for relational domains
	LDongRegnCd       string `koanf:"ldong_regn_cd"`       // optional listing filter for relational domains
}

// DatabaseConfig configures the catalog store.
type DatabaseConfig struct {
	Driver       string `koanf:"driver"` // duckdb or postgres
	Path         string `koanf:"path"`   // DuckDB file, ":memory:" for ephemeral
	DSN          string `koanf:"dsn"`    // PostgreSQL connection string
	MaxMemory    string `koanf:"max_memory"`
	Threads      int    `koanf:"threads"` // DuckDB threads (0 = use NumCPU)
	MaxOpenConns int    `koanf:"max_open_conns"`
	SkipIndexes  bool   `koanf:"skip_indexes"` // skip secondary index creation (fast test setup)
}

// ServerConfig configures the admin HTTP server.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port"`
	Timeout           time.Duration `koanf:"timeout"` // read/write timeout for non-trigger routes
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
	RateLimitRequests int           `koanf:"rate_limit_requests"` // sync trigger requests per window per IP
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns the listen address of the admin server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads configuration from defaults, the optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
