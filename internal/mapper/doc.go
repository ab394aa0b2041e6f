// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

/*
Package mapper converts raw TourAPI DTOs into canonical aggregates.

Every function is pure: no I/O, no logging, no global state. Problems with
individual fields never fail a mapping. The field is left unset and a Warning
is returned alongside the aggregate so the caller can count it.

Rules applied to every domain:
  - Text is trimmed and normalised to Unicode NFC.
  - detailCommon2 values win over listing values; the listing is the fallback
    when detail data is missing (partial aggregate).
  - mapx/mapy become *float64; malformed or out-of-range values become nil.
  - Dates (YYYYMMDD) and timestamps (YYYYMMDDHHMMSS) are read in Korea
    Standard Time.
  - Child rows keep the order they were supplied in and Position is their
    index. Rows missing a required field are dropped with a warning.
*/
package mapper
