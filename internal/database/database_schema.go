// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

/*
database_schema.go - Catalog Schema

Tables:
  - area_codes, ldong_codes: reference data, replaced wholesale each sync
  - festivals + festival_images: festival aggregates and their galleries
  - restaurants + restaurant_menus: restaurant aggregates and their menus
  - travel_courses + travel_course_details: course aggregates and their legs
  - sync_runs: append-only log of finished sync runs

The DDL sticks to types and syntax shared by DuckDB and PostgreSQL (TEXT,
INTEGER, FLOAT8, TIMESTAMP, CREATE ... IF NOT EXISTS). Timestamps are stored
as UTC wall-clock values.

Reference tables carry no primary key. DuckDB checks unique constraints
eagerly, so deleting and re-inserting the same code inside one transaction
can fail; uniqueness is enforced by ReplaceAll instead. Child tables carry no
key either: they are only ever cleared and re-inserted as a whole.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// contentBaseDDL are the columns shared by all content aggregate tables.
const contentBaseDDL = `
	content_id TEXT PRIMARY KEY,
	content_type_id TEXT,
	title TEXT NOT NULL,
	addr1 TEXT,
	addr2 TEXT,
	zipcode TEXT,
	tel TEXT,
	cat1 TEXT,
	cat2 TEXT,
	cat3 TEXT,
	first_image TEXT,
	first_image2 TEXT,
	map_x FLOAT8,
	map_y FLOAT8,
	mlevel TEXT,
	created_at TIMESTAMP,
	modified_at TIMESTAMP,
	area_code TEXT,
	sigungu_code TEXT,
	ldong_regn_cd TEXT,
	ldong_signgu_cd TEXT,
	homepage TEXT,
	overview TEXT,`

var referenceSchema = []string{
	`CREATE TABLE IF NOT EXISTS area_codes (
		code TEXT NOT NULL,
		name TEXT NOT NULL,
		synced_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ldong_codes (
		code TEXT NOT NULL,
		region_code TEXT NOT NULL,
		region_name TEXT,
		district_code TEXT,
		district_name TEXT,
		synced_at TIMESTAMP NOT NULL
	)`,
}

var contentSchema = []string{
	`CREATE TABLE IF NOT EXISTS festivals (` + contentBaseDDL + `
		event_start_date TIMESTAMP,
		event_end_date TIMESTAMP,
		event_place TEXT,
		event_homepage TEXT,
		play_time TEXT,
		program TEXT,
		sub_event TEXT,
		sponsor1 TEXT,
		sponsor1_tel TEXT,
		sponsor2 TEXT,
		sponsor2_tel TEXT,
		use_time TEXT,
		age_limit TEXT,
		booking_place TEXT,
		place_info TEXT,
		spend_time TEXT,
		discount_info TEXT,
		festival_grade TEXT,
		synced_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS festival_images (
		content_id TEXT NOT NULL,
		sort_order INTEGER NOT NULL,
		serial_num TEXT,
		name TEXT,
		origin_url TEXT NOT NULL,
		small_url TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS restaurants (` + contentBaseDDL + `
		first_menu TEXT,
		treat_menu TEXT,
		open_time TEXT,
		rest_date TEXT,
		info_center TEXT,
		parking TEXT,
		packing TEXT,
		reservation TEXT,
		smoking TEXT,
		seat TEXT,
		kids_facility TEXT,
		credit_card TEXT,
		discount_info TEXT,
		scale TEXT,
		open_date TEXT,
		synced_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS restaurant_menus (
		content_id TEXT NOT NULL,
		sort_order INTEGER NOT NULL,
		serial_num TEXT,
		name TEXT NOT NULL,
		price TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS travel_courses (` + contentBaseDDL + `
		distance TEXT,
		take_time TEXT,
		schedule TEXT,
		theme TEXT,
		info_center TEXT,
		synced_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS travel_course_details (
		content_id TEXT NOT NULL,
		sort_order INTEGER NOT NULL,
		sub_num INTEGER,
		sub_content_id TEXT,
		name TEXT NOT NULL,
		overview TEXT,
		image TEXT,
		image_alt TEXT
	)`,
}

var syncRunSchema = []string{
	`CREATE TABLE IF NOT EXISTS sync_runs (
		run_id TEXT PRIMARY KEY,
		domain TEXT NOT NULL,
		status TEXT NOT NULL,
		fetched INTEGER NOT NULL,
		upserted INTEGER NOT NULL,
		inserted INTEGER NOT NULL,
		updated INTEGER NOT NULL,
		skipped_detail INTEGER NOT NULL,
		skipped INTEGER NOT NULL,
		warnings INTEGER NOT NULL,
		pages INTEGER NOT NULL,
		failed_items TEXT NOT NULL,
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP NOT NULL,
		error TEXT
	)`,
}

// indexQueries are secondary indexes for child lookups and the run log.
var indexQueries = []string{
	`CREATE INDEX IF NOT EXISTS idx_area_codes_code ON area_codes(code)`,
	`CREATE INDEX IF NOT EXISTS idx_ldong_codes_code ON ldong_codes(code)`,
	`CREATE INDEX IF NOT EXISTS idx_festival_images_content ON festival_images(content_id)`,
	`CREATE INDEX IF NOT EXISTS idx_restaurant_menus_content ON restaurant_menus(content_id)`,
	`CREATE INDEX IF NOT EXISTS idx_travel_course_details_content ON travel_course_details(content_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sync_runs_domain_started ON sync_runs(domain, started_at)`,
}

// createIndexes creates secondary indexes
func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range indexQueries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create index: %s: %w", query, err)
		}
	}
	return nil
}
