// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

/*
Package config provides centralized configuration management.

Configuration is layered with Koanf v2: struct defaults, then an optional YAML
file, then environment variables. The result is validated by Config.Validate.

# Config File

The first existing path wins: $CONFIG_PATH, config.yaml, config.yml,
/etc/tourcatalog/config.yaml, /etc/tourcatalog/config.yml.

	catalog:
	  service_key: "..."
	  rate_limit: 5
	sync:
	  interval: 12h
	  domains: [area_code, ldong_code, festival]
	database:
	  driver: duckdb
	  path: /data/tourcatalog.duckdb

# Environment Variables

TourAPI client:
  - TOURAPI_BASE_URL (default: https://apis.data.go.kr/B551011/KorService2)
  - TOURAPI_SERVICE_KEY (required)
  - TOURAPI_MOBILE_OS (default: ETC), TOURAPI_MOBILE_APP (default: tourcatalog)
  - TOURAPI_TIMEOUT (default: 15s)
  - TOURAPI_RATE_LIMIT (default: 10/s), TOURAPI_RATE_BURST (default: 5)
  - TOURAPI_CIRCUIT_BREAKER (default: true)

Sync:
  - SYNC_INTERVAL (default: 24h), SYNC_REFERENCE_INTERVAL (default: 168h)
  - SYNC_RUN_ON_STARTUP (default: false)
  - SYNC_DOMAINS: comma-separated (default: all five domains)
  - SYNC_PAGE_SIZE (default: 100), SYNC_MAX_PAGES (default: 1000)
  - SYNC_RETRY_ATTEMPTS (default: 3), SYNC_RETRY_DELAY (default: 2s)
  - SYNC_WORKERS (default: 4)
  - SYNC_FESTIVAL_START_DATE: YYYYMMDD (default: January 1st of the current year)
  - SYNC_AREA_CODE, SYNC_LDONG_REGN_CD: optional listing filters

Database:
  - DB_DRIVER: duckdb or postgres (default: duckdb)
  - DUCKDB_PATH (default: /data/tourcatalog.duckdb), DUCKDB_MAX_MEMORY, DUCKDB_THREADS
  - DATABASE_DSN (required for postgres)
  - DB_MAX_OPEN_CONNS, DB_SKIP_INDEXES

Admin HTTP server:
  - HTTP_HOST (default: 0.0.0.0), HTTP_PORT (default: 8080), HTTP_TIMEOUT
  - HTTP_SHUTDOWN_TIMEOUT
  - HTTP_RATE_LIMIT_REQUESTS, HTTP_RATE_LIMIT_WINDOW (sync trigger limiter)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
*/
package config
