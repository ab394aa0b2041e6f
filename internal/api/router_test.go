// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package api

import (
	"net/http"
	"strings"
	"testing"
)

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter(&mockSyncManager{}, &mockRunLog{}, &mockPinger{})

	// one request so the API collectors have a sample
	do(t, router, http.MethodGet, "/api/v1/health/live")
	rec, _ := do(t, router, http.MethodGet, "/metrics")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "tourcatalog_api_requests_total") {
		t.Error("metrics output should include the admin API request counter")
	}
}

func TestRouter_RequestIDHeader(t *testing.T) {
	rec, resp := do(t, newTestRouter(&mockSyncManager{}, &mockRunLog{}, &mockPinger{}), http.MethodGet, "/api/v1/health/live")

	id := rec.Header().Get("X-Request-ID")
	if id == "" {
		t.Fatal("missing X-Request-ID")
	}
	if resp.Meta == nil || resp.Meta.RequestID != id {
		t.Fatalf("meta request_id = %+v, want %s", resp.Meta, id)
	}
	if corr := rec.Header().Get("X-Correlation-ID"); corr == "" || resp.Meta.CorrelationID != corr {
		t.Errorf("meta correlation_id = %q, header = %q", resp.Meta.CorrelationID, corr)
	}
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	router := newTestRouter(&mockSyncManager{}, &mockRunLog{}, &mockPinger{})

	tests := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/api/v1/festivals", http.StatusNotFound},
		{http.MethodGet, "/api/v1/sync/festival", http.StatusMethodNotAllowed},
		{http.MethodDelete, "/api/v1/sync/runs", http.StatusMethodNotAllowed},
		{http.MethodPost, "/api/v1/sync/status", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec, resp := do(t, router, tt.method, tt.path)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			if resp.Success || resp.Error == nil {
				t.Errorf("response = %+v, want an error envelope", resp)
			}
		})
	}
}

func TestRouter_RateLimitDisabled(t *testing.T) {
	cfg := testServerConfig()
	cfg.RateLimitRequests = 0
	router := NewRouter(NewHandler(&mockSyncManager{}, &mockRunLog{}, &mockPinger{}), cfg).Setup()

	for i := 0; i < 5; i++ {
		rec, _ := do(t, router, http.MethodPost, "/api/v1/sync/area_code")
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, rec.Code)
		}
	}
}
