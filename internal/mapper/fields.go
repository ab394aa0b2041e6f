// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package mapper

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/tomtom215/tourcatalog/internal/models/tourapi"
)

// kst is Korea Standard Time. Korea has no daylight saving, so a fixed zone
// avoids depending on tzdata being installed.
var kst = time.FixedZone("KST", 9*60*60)

const (
	dateLayout      = "20060102"
	timestampLayout = "20060102150405"
)

// clean trims a raw value and normalises it to NFC.
func clean(t tourapi.Text) string {
	s := t.Trimmed()
	if s == "" {
		return ""
	}
	return norm.NFC.String(s)
}

// prefer returns the first non-blank value, cleaned.
func prefer(values ...tourapi.Text) string {
	for _, v := range values {
		if s := clean(v); s != "" {
			return s
		}
	}
	return ""
}

// fieldMapper collects warnings for one aggregate.
type fieldMapper struct {
	contentID string
	warnings  Warnings
}

func newFieldMapper(contentID string) *fieldMapper {
	return &fieldMapper{contentID: contentID}
}

func (m *fieldMapper) warn(field, value, reason string) {
	m.warnings = append(m.warnings, Warning{
		ContentID: m.contentID,
		Field:     field,
		Value:     value,
		Reason:    reason,
	})
}

// coordinate parses a WGS84 coordinate bounded by limit. Blank and zero
// values mean "no coordinate" and are not reported.
func (m *fieldMapper) coordinate(field, raw string, limit float64) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		m.warn(field, raw, "not a number")
		return nil
	}
	if v == 0 {
		return nil
	}
	if v < -limit || v > limit {
		m.warn(field, raw, "out of range")
		return nil
	}
	return &v
}

func (m *fieldMapper) longitude(raw string) *float64 {
	return m.coordinate("mapx", raw, 180)
}

func (m *fieldMapper) latitude(raw string) *float64 {
	return m.coordinate("mapy", raw, 90)
}

func (m *fieldMapper) parseTime(field, raw, layout string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.ParseInLocation(layout, raw, kst)
	if err != nil {
		m.warn(field, raw, "invalid "+describeLayout(layout))
		return nil
	}
	return &t
}

// date parses YYYYMMDD.
func (m *fieldMapper) date(field, raw string) *time.Time {
	return m.parseTime(field, raw, dateLayout)
}

// timestamp parses YYYYMMDDHHMMSS.
func (m *fieldMapper) timestamp(field, raw string) *time.Time {
	return m.parseTime(field, raw, timestampLayout)
}

// integer parses a whole number, reporting malformed input.
func (m *fieldMapper) integer(field, raw string) int {
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		m.warn(field, raw, "not an integer")
		return 0
	}
	return v
}

func describeLayout(layout string) string {
	if layout == dateLayout {
		return "date (YYYYMMDD)"
	}
	return "timestamp (YYYYMMDDHHMMSS)"
}
