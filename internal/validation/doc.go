// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide. It checks canonical
// aggregates before they are written to the store and admin API query
// parameters before they reach a handler.
//
// Field names in errors come from json tags and are reported relative to the
// validated value, so a bad gallery entry shows up as "images[1].origin_url".
//
//	if err := validation.ValidateStruct(festival); err != nil {
//	    ve, _ := validation.AsValidationError(err)
//	    log.Warn().Strs("fields", ve.Paths()).Msg("Skipping invalid festival")
//	}
package validation
