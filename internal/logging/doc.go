// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

// Package logging provides centralized zerolog-based structured logging.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("domain", "festival").Msg("Sync started")
//	logging.Error().Err(err).Msg("Upsert failed")
//
//	// With context (correlation ID, request ID, run ID)
//	logging.Ctx(ctx).Info().Int("pages", n).Msg("Listing complete")
//
// # Configuration
//
// Environment Variables (read through the config package):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// # slog Integration
//
// SlogHandler adapts zerolog to slog.Handler for the suture supervisor tree:
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger()}
//
// # Secrets
//
// TourAPI service keys travel as query parameters. Use RedactURL before
// logging any upstream request URL.
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
