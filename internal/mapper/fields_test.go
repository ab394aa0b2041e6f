// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package mapper

import (
	"testing"
	"time"

	"github.com/tomtom215/tourcatalog/internal/models/tourapi"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   tourapi.Text
		want string
	}{
		{"trims", "  서울  ", "서울"},
		{"composes decomposed hangul", "\u1100\u1161", "\uac00"},
		{"blank", "   ", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clean(tt.in); got != tt.want {
				t.Errorf("clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPrefer(t *testing.T) {
	if got := prefer("", " ", "b", "c"); got != "b" {
		t.Errorf("prefer() = %q, want b", got)
	}
	if got := prefer(); got != "" {
		t.Errorf("prefer() = %q, want empty", got)
	}
}

func TestCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		lat      bool
		want     float64
		wantNil  bool
		wantWarn bool
	}{
		{"longitude", "126.9780", false, 126.978, false, false},
		{"latitude", "37.5665", true, 37.5665, false, false},
		{"blank", "", false, 0, true, false},
		{"zero means unset", "0", true, 0, true, false},
		{"malformed", "12a.3", false, 0, true, true},
		{"latitude out of range", "95.1", true, 0, true, true},
		{"longitude out of range", "-181", false, 0, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newFieldMapper("1")
			var got *float64
			if tt.lat {
				got = m.latitude(tt.raw)
			} else {
				got = m.longitude(tt.raw)
			}
			if tt.wantNil {
				if got != nil {
					t.Errorf("got %v, want nil", *got)
				}
			} else if got == nil || *got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if (len(m.warnings) > 0) != tt.wantWarn {
				t.Errorf("warnings = %v, wantWarn %v", m.warnings, tt.wantWarn)
			}
		})
	}
}

func TestDatesAreKST(t *testing.T) {
	m := newFieldMapper("1")

	d := m.date("eventstartdate", "20260401")
	if d == nil {
		t.Fatal("expected date")
	}
	want := time.Date(2026, 4, 1, 0, 0, 0, 0, kst)
	if !d.Equal(want) {
		t.Errorf("date = %v, want %v", d, want)
	}
	if d.UTC().Hour() != 15 || d.UTC().Day() != 31 {
		t.Errorf("expected midnight KST to be 15:00 UTC the previous day, got %v", d.UTC())
	}

	ts := m.timestamp("modifiedtime", "20250102030405")
	if ts == nil || !ts.Equal(time.Date(2025, 1, 2, 3, 4, 5, 0, kst)) {
		t.Errorf("timestamp = %v", ts)
	}

	if len(m.warnings) != 0 {
		t.Errorf("unexpected warnings %v", m.warnings)
	}

	if got := m.date("eventenddate", "2026-04-01"); got != nil {
		t.Errorf("expected nil for malformed date, got %v", got)
	}
	if got := m.timestamp("createdtime", "20251340000000"); got != nil {
		t.Errorf("expected nil for invalid month, got %v", got)
	}
	if len(m.warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", m.warnings)
	}
	if m.warnings[0].Field != "eventenddate" || m.warnings[0].ContentID != "1" {
		t.Errorf("unexpected warning %+v", m.warnings[0])
	}
}

func TestInteger(t *testing.T) {
	m := newFieldMapper("1")
	if got := m.integer("subnum", "3"); got != 3 {
		t.Errorf("integer() = %d, want 3", got)
	}
	if got := m.integer("subnum", ""); got != 0 {
		t.Errorf("integer(\"\") = %d, want 0", got)
	}
	if got := m.integer("subnum", "x"); got != 0 {
		t.Errorf("integer(x) = %d, want 0", got)
	}
	if len(m.warnings) != 1 {
		t.Errorf("expected 1 warning, got %v", m.warnings)
	}
}

func TestWarnings(t *testing.T) {
	ws := Warnings{
		{ContentID: "1", Field: "mapx", Value: "a", Reason: "not a number"},
		{ContentID: "1", Field: "mapy", Value: "b", Reason: "not a number"},
		{ContentID: "1", Field: "mapx", Value: "c", Reason: "not a number"},
	}
	fields := ws.Fields()
	if len(fields) != 2 || fields[0] != "mapx" || fields[1] != "mapy" {
		t.Errorf("Fields() = %v", fields)
	}
	if got := ws[0].String(); got != `1: mapx="a": not a number` {
		t.Errorf("String() = %s", got)
	}
	if got := (Warning{Field: "code", Reason: "missing code"}).String(); got != `code="": missing code` {
		t.Errorf("String() = %s", got)
	}
}
