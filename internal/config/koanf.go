// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/tourcatalog/config.yaml",
	"/etc/tourcatalog/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
func defaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:        "https://apis.data.go.kr/B551011/KorService2",
			ServiceKey:     "",
			MobileOS:       "ETC",
			MobileApp:      "tourcatalog",
			Timeout:        15 * time.Second,
			RateLimit:      10,
			RateBurst:      5,
			CircuitBreaker: true,
		},
		Sync: SyncConfig{
			Interval:          24 * time.Hour,
			ReferenceInterval: 7 * 24 * time.Hour,
			RunOnStartup:      false,
			Domains:           []string{"area_code", "ldong_code", "festival", "restaurant", "travel_course"},
			PageSize:          100,
			MaxPages:          1000,
			RetryAttempts:     3,
			RetryDelay:        2 * time.Second,
			Workers:           4,
		},
		Database: DatabaseConfig{
			Driver:       "duckdb",
			Path:         "/data/tourcatalog.duckdb",
			MaxMemory:    "1GB",
			Threads:      0,
			MaxOpenConns: 8,
		},
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              8080,
			Timeout:           30 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			RateLimitRequests: 10,
			RateLimitWindow:   time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources.
//
// Loading order (later sources override earlier ones):
//  1. Built-in defaults
//  2. Config file (CONFIG_PATH, config.yaml, /etc/tourcatalog/config.yaml)
//  3. Environment variables
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns CONFIG_PATH when it exists, otherwise the first
// existing default path, otherwise "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths are parsed as comma-separated slices
var sliceConfigPaths = []string{
	"sync.domains",
}

// processSliceFields converts comma-separated env strings into slices.
// Values already loaded as slices (from YAML) are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
// Unmapped variables are ignored so unrelated environment cannot leak into config.
var envMappings = map[string]string{
	// TourAPI client
	"tourapi_base_url":        "catalog.base_url",
	"tourapi_service_key":     "catalog.service_key",
	"tourapi_mobile_os":       "catalog.mobile_os",
	"tourapi_mobile_app":      "catalog.mobile_app",
	"tourapi_timeout":         "catalog.timeout",
	"tourapi_rate_limit":      "catalog.rate_limit",
	"tourapi_rate_burst":      "catalog.rate_burst",
	"tourapi_circuit_breaker": "catalog.circuit_breaker",

	// Sync
	"sync_interval":            "sync.interval",
	"sync_reference_interval":  "sync.reference_interval",
	"sync_run_on_startup":      "sync.run_on_startup",
	"sync_domains":             "sync.domains",
	"sync_page_size":           "sync.page_size",
	"sync_max_pages":           "sync.max_pages",
	"sync_retry_attempts":      "sync.retry_attempts",
	"sync_retry_delay":         "sync.retry_delay",
	"sync_workers":             "sync.workers",
	"sync_festival_start_date": "sync.festival_start_date",
	"sync_area_code":           "sync.area_code",
	"sync_ldong_regn_cd":       "sync.ldong_regn_cd",

	// Database
	"db_driver":         "database.driver",
	"duckdb_path":       "database.path",
	"database_dsn":      "database.dsn",
	"duckdb_max_memory": "database.max_memory",
	"duckdb_threads":    "database.threads",
	"db_max_open_conns": "database.max_open_conns",
	"db_skip_indexes":   "database.skip_indexes",

	// Admin HTTP server
	"http_host":                "server.host",
	"http_port":                "server.port",
	"http_timeout":             "server.timeout",
	"http_shutdown_timeout":    "server.shutdown_timeout",
	"http_rate_limit_requests": "server.rate_limit_requests",
	"http_rate_limit_window":   "server.rate_limit_window",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf paths.
// Returns "" for unmapped keys, which koanf skips.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
