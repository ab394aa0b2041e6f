// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package models

import (
	"testing"
	"time"
)

func TestParseDomain(t *testing.T) {
	tests := []struct {
		input   string
		want    Domain
		wantErr bool
	}{
		{"festival", DomainFestival, false},
		{"Travel-Course", DomainTravelCourse, false},
		{" area_code ", DomainAreaCode, false},
		{"ldong_code", DomainLdongCode, false},
		{"restaurant", DomainRestaurant, false},
		{"hotel", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDomain(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDomain(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDomain(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDomain_Classification(t *testing.T) {
	for _, d := range AllDomains() {
		isRef := d.IsReference()
		hasType := d.ContentTypeID() != ""
		if isRef == hasType {
			t.Errorf("domain %s: IsReference=%v but ContentTypeID=%q", d, isRef, d.ContentTypeID())
		}
	}
	if !AllDomains()[0].IsReference() || !AllDomains()[1].IsReference() {
		t.Error("AllDomains() must list reference domains first")
	}
}

func TestRunSummary_AddFailed(t *testing.T) {
	s := &RunSummary{}
	for _, id := range []string{"3", "1", "3", "2", "1"} {
		s.AddFailed(id)
	}
	want := []string{"3", "1", "2"}
	if len(s.FailedItems) != len(want) {
		t.Fatalf("FailedItems = %v, want %v", s.FailedItems, want)
	}
	for i := range want {
		if s.FailedItems[i] != want[i] {
			t.Errorf("FailedItems[%d] = %q, want %q", i, s.FailedItems[i], want[i])
		}
	}
}

func TestRunSummary_Duration(t *testing.T) {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	s := &RunSummary{StartedAt: start}
	if s.Duration() != 0 {
		t.Errorf("Duration() of unfinished run = %v, want 0", s.Duration())
	}
	s.FinishedAt = start.Add(90 * time.Second)
	if s.Duration() != 90*time.Second {
		t.Errorf("Duration() = %v, want 90s", s.Duration())
	}
}

func TestRunState_IsActive(t *testing.T) {
	active := map[RunState]bool{
		RunStateIdle:        false,
		RunStateFetching:    true,
		RunStateEnriching:   true,
		RunStateUpserting:   true,
		RunStateSummarizing: true,
		RunStateDone:        false,
		RunStateAborted:     false,
	}
	for state, want := range active {
		if got := state.IsActive(); got != want {
			t.Errorf("%s.IsActive() = %v, want %v", state, got, want)
		}
	}
}
