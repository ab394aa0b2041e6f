// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tourcatalog/internal/config"
	"github.com/tomtom215/tourcatalog/internal/models"
)

type mockSyncManager struct {
	runSync  func(ctx context.Context, domain models.Domain) (*models.RunSummary, error)
	statuses func() []models.DomainStatus
}

func (m *mockSyncManager) RunSync(ctx context.Context, domain models.Domain) (*models.RunSummary, error) {
	if m.runSync != nil {
		return m.runSync(ctx, domain)
	}
	return testSummary(domain), nil
}

func (m *mockSyncManager) Statuses() []models.DomainStatus {
	if m.statuses != nil {
		return m.statuses()
	}
	return nil
}

type mockRunLog struct {
	recent func(ctx context.Context, domain models.Domain, limit int) ([]models.RunSummary, error)
}

func (m *mockRunLog) Recent(ctx context.Context, domain models.Domain, limit int) ([]models.RunSummary, error) {
	if m.recent != nil {
		return m.recent(ctx, domain, limit)
	}
	return nil, nil
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error {
	return m.err
}

func testSummary(domain models.Domain) *models.RunSummary {
	started := time.Date(2025, 5, 1, 3, 0, 0, 0, time.UTC)
	return &models.RunSummary{
		RunID:       "run-" + string(domain),
		Domain:      domain,
		Status:      models.RunCompleted,
		Fetched:     12,
		Upserted:    12,
		Inserted:    10,
		Updated:     2,
		FailedItems: []string{},
		Pages:       2,
		StartedAt:   started,
		FinishedAt:  started.Add(90 * time.Second),
	}
}

func testServerConfig() *config.ServerConfig {
	return &config.ServerConfig{
		Timeout:           5 * time.Second,
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
	}
}

// newTestRouter builds the full chi stack around mocks.
func newTestRouter(manager SyncManager, runs RunLog, db Pinger) http.Handler {
	return NewRouter(NewHandler(manager, runs, db), testServerConfig()).Setup()
}

// do sends a request and decodes the envelope.
func do(t *testing.T, h http.Handler, method, target string) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	var resp APIResponse
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v\n%s", err, rec.Body.String())
		}
	}
	return rec, resp
}

// decodeData re-decodes the data member into out.
func decodeData(t *testing.T, resp APIResponse, out interface{}) {
	t.Helper()
	raw, err := json.Marshal(resp.Data)
	if err != nil {
		t.Fatalf("marshal data: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
}
