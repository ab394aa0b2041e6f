// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

/*
Package models defines the domain types shared by the sync pipeline, the
store and the admin API.

# Domains

Domain names one sync target. Reference domains (area_code, ldong_code)
are replaced wholesale on every run; relational domains (festival,
restaurant, travel_course) are upserted as aggregates keyed by content ID.

# Content Aggregates

Festival, Restaurant and TravelCourse each hold a BasicInfo (the listing
fields shared by every content type), an optional region link and a
domain-specific detail. Child rows (festival images, restaurant menus,
course legs) are owned by their aggregate and replaced with it.

# Run Bookkeeping

RunSummary is the outcome of one sync run and the row persisted in the
sync_runs log. RunState tracks a run's lifecycle phase for the status
endpoint.

Wire-format item types decoded from TourAPI responses live in the tourapi
subpackage.
*/
package models
