// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/tourcatalog/internal/models"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateSync(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	return c.validateLogging()
}

var validMobileOS = map[string]bool{
	"ETC": true,
	"IOS": true,
	"AND": true,
	"WIN": true,
}

// validateCatalog validates the TourAPI client configuration
func (c *Config) validateCatalog() error {
	if err := validateHTTPURL(c.Catalog.BaseURL, "TOURAPI_BASE_URL"); err != nil {
		return fmt.Errorf("TOURAPI_BASE_URL is invalid: %w", err)
	}
	if c.Catalog.ServiceKey == "" {
		return fmt.Errorf("TOURAPI_SERVICE_KEY is required")
	}
	if containsPlaceholder(c.Catalog.ServiceKey) {
		return fmt.Errorf("TOURAPI_SERVICE_KEY contains a placeholder value")
	}
	if !validMobileOS[c.Catalog.MobileOS] {
		return fmt.Errorf("TOURAPI_MOBILE_OS must be one of: ETC, IOS, AND, WIN")
	}
	if c.Catalog.MobileApp == "" {
		return fmt.Errorf("TOURAPI_MOBILE_APP is required")
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("TOURAPI_TIMEOUT must be positive")
	}
	if c.Catalog.RateLimit <= 0 {
		return fmt.Errorf("TOURAPI_RATE_LIMIT must be positive")
	}
	if c.Catalog.RateBurst < 1 {
		return fmt.Errorf("TOURAPI_RATE_BURST must be at least 1")
	}
	return nil
}

// validateSync validates sync job and scheduler configuration
func (c *Config) validateSync() error {
	if c.Sync.Interval < time.Minute {
		return fmt.Errorf("SYNC_INTERVAL must be at least 1m, got %v", c.Sync.Interval)
	}
	if c.Sync.ReferenceInterval < time.Minute {
		return fmt.Errorf("SYNC_REFERENCE_INTERVAL must be at least 1m, got %v", c.Sync.ReferenceInterval)
	}
	if c.Sync.PageSize < 1 || c.Sync.PageSize > 1000 {
		return fmt.Errorf("SYNC_PAGE_SIZE must be between 1 and 1000")
	}
	if c.Sync.MaxPages < 1 {
		return fmt.Errorf("SYNC_MAX_PAGES must be at least 1")
	}
	if c.Sync.RetryAttempts < 1 || c.Sync.RetryAttempts > 10 {
		return fmt.Errorf("SYNC_RETRY_ATTEMPTS must be between 1 and 10")
	}
	if c.Sync.RetryDelay < 0 {
		return fmt.Errorf("SYNC_RETRY_DELAY must not be negative")
	}
	if c.Sync.Workers < 1 || c.Sync.Workers > 64 {
		return fmt.Errorf("SYNC_WORKERS must be between 1 and 64")
	}
	for _, d := range c.Sync.Domains {
		if _, err := models.ParseDomain(d); err != nil {
			return fmt.Errorf("SYNC_DOMAINS: %w", err)
		}
	}
	if c.Sync.FestivalStartDate != "" {
		if _, err := time.Parse("20060102", c.Sync.FestivalStartDate); err != nil {
			return fmt.Errorf("SYNC_FESTIVAL_START_DATE must be YYYYMMDD, got %q", c.Sync.FestivalStartDate)
		}
	}
	return nil
}

// EnabledDomains returns the scheduled domains, reference domains first.
// An empty list enables every domain. Invalid names are dropped; Validate
// reports them.
func (c *SyncConfig) EnabledDomains() []models.Domain {
	if len(c.Domains) == 0 {
		return models.AllDomains()
	}
	enabled := make(map[models.Domain]bool, len(c.Domains))
	for _, name := range c.Domains {
		if d, err := models.ParseDomain(name); err == nil {
			enabled[d] = true
		}
	}
	domains := make([]models.Domain, 0, len(enabled))
	for _, d := range models.AllDomains() {
		if enabled[d] {
			domains = append(domains, d)
		}
	}
	return domains
}

// validateDatabase validates store configuration
func (c *Config) validateDatabase() error {
	switch c.Database.Driver {
	case "duckdb":
		if c.Database.Path == "" {
			return fmt.Errorf("DUCKDB_PATH is required when DB_DRIVER=duckdb")
		}
	case "postgres":
		if c.Database.DSN == "" {
			return fmt.Errorf("DATABASE_DSN is required when DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("DB_DRIVER must be one of: duckdb, postgres")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must not be negative")
	}
	return nil
}

// validateServer validates admin HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.RateLimitRequests < 1 {
		return fmt.Errorf("HTTP_RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Server.RateLimitWindow <= 0 {
		return fmt.Errorf("HTTP_RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// placeholderPatterns indicate the operator forgot to set a real value.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_SERVICE_KEY",
	"PLACEHOLDER",
}

// containsPlaceholder checks if a value contains common placeholder patterns.
func containsPlaceholder(value string) bool {
	upperValue := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upperValue, pattern) {
			return true
		}
	}
	return false
}
