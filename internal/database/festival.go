// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package database

import (
	"context"
	"database/sql"

	"github.com/tomtom215/tourcatalog/internal/models"
)

var festivalTable = aggregateTable{
	table: "festivals",
	extraColumns: []string{
		"event_start_date", "event_end_date", "event_place", "event_homepage", "play_time",
		"program", "sub_event", "sponsor1", "sponsor1_tel", "sponsor2", "sponsor2_tel",
		"use_time", "age_limit", "booking_place", "place_info", "spend_time", "discount_info",
		"festival_grade",
	},
	childTable:   "festival_images",
	childColumns: []string{"serial_num", "name", "origin_url", "small_url"},
}

// FestivalRepo stores festival aggregates with their image galleries.
type FestivalRepo struct {
	db *DB
}

// Upsert inserts or replaces a festival and its whole gallery atomically.
func (r *FestivalRepo) Upsert(ctx context.Context, f *models.Festival) error {
	base := contentRecord{
		ContentID: f.ContentID,
		Basic:     f.Basic,
		Region:    f.Region,
		Homepage:  f.Detail.Homepage,
		Overview:  f.Detail.Overview,
	}
	d := &f.Detail
	parent := append(base.args(),
		nullTime(f.EventStartDate), nullTime(f.EventEndDate), d.EventPlace, d.EventHomepage, d.PlayTime,
		d.Program, d.SubEvent, d.Sponsor1, d.Sponsor1Tel, d.Sponsor2, d.Sponsor2Tel,
		d.UseTimeFestival, d.AgeLimit, d.BookingPlace, d.PlaceInfo, d.SpendTime, d.DiscountInfo,
		d.FestivalGrade,
	)

	children := make([][]any, len(f.Images))
	for i, img := range f.Images {
		children[i] = []any{img.SerialNum, img.Name, img.OriginURL, img.SmallURL}
	}

	return festivalTable.upsert(ctx, r.db, f.ContentID, parent, children)
}

// Find returns the festival with its gallery, or nil when it does not exist.
func (r *FestivalRepo) Find(ctx context.Context, contentID string) (*models.Festival, error) {
	var start, end sql.NullTime
	text, textDest := nullStrings(16)
	extra := append([]any{&start, &end}, textDest...)

	images := make([]models.FestivalImage, 0)
	rec, found, err := festivalTable.find(ctx, r.db, contentID, extra, func(s rowScanner) error {
		var serial, name, small sql.NullString
		var img models.FestivalImage
		if err := s.Scan(&serial, &name, &img.OriginURL, &small); err != nil {
			return err
		}
		img.SerialNum = serial.String
		img.Name = name.String
		img.SmallURL = small.String
		img.Position = len(images)
		images = append(images, img)
		return nil
	})
	if err != nil || !found {
		return nil, err
	}

	return &models.Festival{
		ContentID:      rec.ContentID,
		Basic:          rec.Basic,
		Region:         rec.Region,
		EventStartDate: timePtr(start),
		EventEndDate:   timePtr(end),
		Detail: models.FestivalDetail{
			Homepage:        rec.Homepage,
			Overview:        rec.Overview,
			EventPlace:      text[0].String,
			EventHomepage:   text[1].String,
			PlayTime:        text[2].String,
			Program:         text[3].String,
			SubEvent:        text[4].String,
			Sponsor1:        text[5].String,
			Sponsor1Tel:     text[6].String,
			Sponsor2:        text[7].String,
			Sponsor2Tel:     text[8].String,
			UseTimeFestival: text[9].String,
			AgeLimit:        text[10].String,
			BookingPlace:    text[11].String,
			PlaceInfo:       text[12].String,
			SpendTime:       text[13].String,
			DiscountInfo:    text[14].String,
			FestivalGrade:   text[15].String,
		},
		Images: images,
	}, nil
}

// Count returns the number of stored festivals.
func (r *FestivalRepo) Count(ctx context.Context) (int64, error) {
	return r.db.countRows(ctx, festivalTable.table)
}

// CountImages returns the number of stored gallery rows.
func (r *FestivalRepo) CountImages(ctx context.Context) (int64, error) {
	return r.db.countRows(ctx, festivalTable.childTable)
}
