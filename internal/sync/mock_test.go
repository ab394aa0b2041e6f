// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package sync

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tourcatalog/internal/catalog"
	"github.com/tomtom215/tourcatalog/internal/models"
)

// newTestOptions returns options for fast tests: small pages, no retry delay.
func newTestOptions() Options {
	return Options{
		PageSize:          5,
		MaxPages:          50,
		RetryAttempts:     3,
		Workers:           4,
		FestivalStartDate: "20250101",
	}
}

// envelope builds a TourAPI response. One item is encoded as a bare object,
// several as an array and none as the empty string, like the upstream does.
func envelope(t *testing.T, pageNo, totalCount int, items ...map[string]any) []byte {
	t.Helper()

	var itemsNode any = ""
	switch len(items) {
	case 0:
	case 1:
		itemsNode = map[string]any{"item": items[0]}
	default:
		itemsNode = map[string]any{"item": items}
	}

	raw, err := json.Marshal(map[string]any{
		"response": map[string]any{
			"header": map[string]any{"resultCode": "0000", "resultMsg": "OK"},
			"body": map[string]any{
				"items":      itemsNode,
				"numOfRows":  len(items),
				"pageNo":     pageNo,
				"totalCount": totalCount,
			},
		},
	})
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	return raw
}

// listRow is a searchFestival2/areaBasedList2 row.
func listRow(id, title string) map[string]any {
	return map[string]any{
		"contentid":      id,
		"contenttypeid":  "15",
		"title":          title,
		"addr1":          "서울특별시 종로구",
		"areacode":       "1",
		"sigungucode":    "23",
		"mapx":           "126.9769930325",
		"mapy":           "37.5709300624",
		"createdtime":    "20230501120000",
		"modifiedtime":   "20240302090000",
		"eventstartdate": "20250501",
		"eventenddate":   "20250505",
	}
}

// listRows returns n listing rows with numeric IDs starting at first.
func listRows(first, n int) []map[string]any {
	out := make([]map[string]any, n)
	for i := range out {
		id := fmt.Sprint(first + i)
		out[i] = listRow(id, "item "+id)
	}
	return out
}

// mockClient implements catalog.Client with function fields. Unset detail
// functions answer with a minimal record for the requested content ID.
type mockClient struct {
	t *testing.T

	mu        sync.Mutex
	listCalls []catalog.PageRequest
	filters   []catalog.ListFilter

	fetchList      func(ctx context.Context, domain models.Domain, filter catalog.ListFilter, page catalog.PageRequest) ([]byte, error)
	fetchDetail    func(ctx context.Context, domain models.Domain, contentID string) ([]byte, error)
	fetchIntro     func(ctx context.Context, domain models.Domain, contentID string) ([]byte, error)
	fetchChildList func(ctx context.Context, domain models.Domain, contentID string, page catalog.PageRequest) ([]byte, error)
	fetchImages    func(ctx context.Context, domain models.Domain, contentID string, page catalog.PageRequest) ([]byte, error)
}

// pagedListing serves pages[i] as page i+1 and an empty page afterwards.
func pagedListing(t *testing.T, totalCount int, pages ...[]map[string]any) func(context.Context, models.Domain, catalog.ListFilter, catalog.PageRequest) ([]byte, error) {
	return func(_ context.Context, _ models.Domain, _ catalog.ListFilter, page catalog.PageRequest) ([]byte, error) {
		if page.PageNo > len(pages) {
			return envelope(t, page.PageNo, totalCount), nil
		}
		return envelope(t, page.PageNo, totalCount, pages[page.PageNo-1]...), nil
	}
}

func (m *mockClient) ListCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.listCalls)
}

func (m *mockClient) FetchList(ctx context.Context, domain models.Domain, filter catalog.ListFilter, page catalog.PageRequest) ([]byte, error) {
	m.mu.Lock()
	m.listCalls = append(m.listCalls, page)
	m.filters = append(m.filters, filter)
	m.mu.Unlock()
	if m.fetchList != nil {
		return m.fetchList(ctx, domain, filter, page)
	}
	return envelope(m.t, page.PageNo, 0), nil
}

func (m *mockClient) FetchDetail(ctx context.Context, domain models.Domain, contentID string) ([]byte, error) {
	if m.fetchDetail != nil {
		return m.fetchDetail(ctx, domain, contentID)
	}
	return envelope(m.t, 1, 1, map[string]any{
		"contentid": contentID,
		"homepage":  "https://example.org/" + contentID,
		"overview":  "overview of " + contentID,
	}), nil
}

func (m *mockClient) FetchIntro(ctx context.Context, domain models.Domain, contentID string) ([]byte, error) {
	if m.fetchIntro != nil {
		return m.fetchIntro(ctx, domain, contentID)
	}
	return envelope(m.t, 1, 1, map[string]any{
		"contentid":  contentID,
		"eventplace": "광화문광장",
		"firstmenu":  "비빔밥",
		"distance":   "5km",
	}), nil
}

func (m *mockClient) FetchChildList(ctx context.Context, domain models.Domain, contentID string, page catalog.PageRequest) ([]byte, error) {
	if m.fetchChildList != nil {
		return m.fetchChildList(ctx, domain, contentID, page)
	}
	return envelope(m.t, page.PageNo, 0), nil
}

func (m *mockClient) FetchImages(ctx context.Context, domain models.Domain, contentID string, page catalog.PageRequest) ([]byte, error) {
	if m.fetchImages != nil {
		return m.fetchImages(ctx, domain, contentID, page)
	}
	return envelope(m.t, page.PageNo, 0), nil
}

// memoryStore is an AggregateStore backed by a map.
type memoryStore[T any] struct {
	mu      sync.Mutex
	id      func(*T) string
	items   map[string]*T
	upserts []string

	findErr   func(contentID string) error
	upsertErr func(contentID string) error
	onUpsert  func(contentID string)
}

func newMemoryStore[T any](id func(*T) string) *memoryStore[T] {
	return &memoryStore[T]{id: id, items: make(map[string]*T)}
}

func newFestivalStore() *memoryStore[models.Festival] {
	return newMemoryStore(func(f *models.Festival) string { return f.ContentID })
}

func (s *memoryStore[T]) Find(_ context.Context, contentID string) (*T, error) {
	if s.findErr != nil {
		if err := s.findErr(contentID); err != nil {
			return nil, err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[contentID], nil
}

func (s *memoryStore[T]) Upsert(_ context.Context, aggregate *T) error {
	id := s.id(aggregate)
	if s.upsertErr != nil {
		if err := s.upsertErr(id); err != nil {
			return err
		}
	}
	s.mu.Lock()
	s.items[id] = aggregate
	s.upserts = append(s.upserts, id)
	s.mu.Unlock()
	if s.onUpsert != nil {
		s.onUpsert(id)
	}
	return nil
}

func (s *memoryStore[T]) Get(contentID string) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[contentID]
}

func (s *memoryStore[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// referenceStore is a ReferenceStore that remembers every replacement.
type referenceStore[T any] struct {
	mu       sync.Mutex
	rows     []T
	replaces int
	err      error
}

func (s *referenceStore[T]) ReplaceAll(_ context.Context, items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.rows = append([]T(nil), items...)
	s.replaces++
	return nil
}

// recorder is a RunRecorder collecting runs in memory.
type recorder struct {
	mu   sync.Mutex
	runs []*models.RunSummary
	err  error
}

func (r *recorder) Append(_ context.Context, run *models.RunSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, run)
	return r.err
}

func (r *recorder) Runs() []*models.RunSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.RunSummary(nil), r.runs...)
}

// checkIntEqual checks that got equals want.
func checkIntEqual(t *testing.T, fieldName string, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("%s: expected %d, got %d", fieldName, want, got)
	}
}

// checkStatus checks the terminal status of a run.
func checkStatus(t *testing.T, s *models.RunSummary, want models.RunStatus) {
	t.Helper()
	if s == nil {
		t.Fatal("summary is nil")
	}
	if s.Status != want {
		t.Fatalf("Status: expected %s, got %s (error %q)", want, s.Status, s.Error)
	}
}
