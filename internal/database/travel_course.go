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

var travelCourseTable = aggregateTable{
	table:        "travel_courses",
	extraColumns: []string{"distance", "take_time", "schedule", "theme", "info_center"},
	childTable:   "travel_course_details",
	childColumns: []string{"sub_num", "sub_content_id", "name", "overview", "image", "image_alt"},
}

// TravelCourseRepo stores travel course aggregates with their legs.
type TravelCourseRepo struct {
	db *DB
}

// Upsert inserts or replaces a course and all of its legs atomically.
func (r *TravelCourseRepo) Upsert(ctx context.Context, tc *models.TravelCourse) error {
	base := contentRecord{
		ContentID: tc.ContentID,
		Basic:     tc.Basic,
		Region:    tc.Region,
		Homepage:  tc.Detail.Homepage,
		Overview:  tc.Detail.Overview,
	}
	d := &tc.Detail
	parent := append(base.args(), d.Distance, d.TakeTime, d.Schedule, d.Theme, d.InfoCenter)

	children := make([][]any, len(tc.Legs))
	for i, leg := range tc.Legs {
		children[i] = []any{leg.SubNum, leg.SubContentID, leg.Name, leg.Overview, leg.Image, leg.ImageAlt}
	}

	return travelCourseTable.upsert(ctx, r.db, tc.ContentID, parent, children)
}

// Find returns the course with its legs, or nil when it does not exist.
func (r *TravelCourseRepo) Find(ctx context.Context, contentID string) (*models.TravelCourse, error) {
	text, extra := nullStrings(5)

	legs := make([]models.CourseLeg, 0)
	rec, found, err := travelCourseTable.find(ctx, r.db, contentID, extra, func(s rowScanner) error {
		var subNum sql.NullInt64
		var subContentID, overview, image, alt sql.NullString
		var leg models.CourseLeg
		if err := s.Scan(&subNum, &subContentID, &leg.Name, &overview, &image, &alt); err != nil {
			return err
		}
		leg.SubNum = int(subNum.Int64)
		leg.SubContentID = subContentID.String
		leg.Overview = overview.String
		leg.Image = image.String
		leg.ImageAlt = alt.String
		leg.Position = len(legs)
		legs = append(legs, leg)
		return nil
	})
	if err != nil || !found {
		return nil, err
	}

	return &models.TravelCourse{
		ContentID: rec.ContentID,
		Basic:     rec.Basic,
		Region:    rec.Region,
		Detail: models.CourseDetail{
			Homepage:   rec.Homepage,
			Overview:   rec.Overview,
			Distance:   text[0].String,
			TakeTime:   text[1].String,
			Schedule:   text[2].String,
			Theme:      text[3].String,
			InfoCenter: text[4].String,
		},
		Legs: legs,
	}, nil
}

// Count returns the number of stored travel courses.
func (r *TravelCourseRepo) Count(ctx context.Context) (int64, error) {
	return r.db.countRows(ctx, travelCourseTable.table)
}

// CountLegs returns the number of stored course legs.
func (r *TravelCourseRepo) CountLegs(ctx context.Context) (int64, error) {
	return r.db.countRows(ctx, travelCourseTable.childTable)
}
