// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package testinfra

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"
	"strconv"
	"sync"
	"testing"

	"github.com/goccy/go-json"
)

// FakeServiceKey is the only service key the fake accepts.
const FakeServiceKey = "fake-service-key"

// missingKeyResponse mimics the gateway's answer to an unregistered key.
const missingKeyResponse = `<OpenAPI_ServiceResponse><cmmMsgHeader>` +
	`<errMsg>SERVICE ERROR</errMsg><returnAuthMsg>SERVICE_KEY_IS_NOT_REGISTERED_ERROR</returnAuthMsg>` +
	`<returnReasonCode>30</returnReasonCode></cmmMsgHeader></OpenAPI_ServiceResponse>`

// Item is one upstream item as a flat string map.
type Item map[string]string

// TourAPIRequest is one captured request.
type TourAPIRequest struct {
	Operation string
	Query     url.Values
}

// FakeTourAPI serves canned TourAPI responses.
type FakeTourAPI struct {
	Server *httptest.Server

	mu       sync.Mutex
	lists    map[string][]Item
	details  map[string]map[string][]Item
	failures map[string]int
	requests []TourAPIRequest
}

// NewFakeTourAPI starts a fake and closes it when the test ends.
func NewFakeTourAPI(t *testing.T) *FakeTourAPI {
	t.Helper()

	f := &FakeTourAPI{
		lists:    make(map[string][]Item),
		details:  make(map[string]map[string][]Item),
		failures: make(map[string]int),
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

// URL returns the base URL to configure the client with.
func (f *FakeTourAPI) URL() string {
	return f.Server.URL
}

// Close shuts down the server.
func (f *FakeTourAPI) Close() {
	f.Server.Close()
}

// SetList sets every row of a listing operation. Pages are cut from it by
// pageNo and numOfRows.
func (f *FakeTourAPI) SetList(op string, rows []Item) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists[op] = rows
}

// SetDetail sets the items a detail operation returns for one content ID.
// Pages are cut from them like listings. Calling it with no items makes the
// content return an empty body.
func (f *FakeTourAPI) SetDetail(op, contentID string, items ...Item) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.details[op] == nil {
		f.details[op] = make(map[string][]Item)
	}
	f.details[op][contentID] = items
}

// FailWith makes every call to op answer with the given HTTP status.
// A zero status clears the failure.
func (f *FakeTourAPI) FailWith(op string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if status == 0 {
		delete(f.failures, op)
		return
	}
	f.failures[op] = status
}

// Requests returns all captured requests.
func (f *FakeTourAPI) Requests() []TourAPIRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]TourAPIRequest, len(f.requests))
	copy(result, f.requests)
	return result
}

// CountOf returns how many times op was called.
func (f *FakeTourAPI) CountOf(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.requests {
		if r.Operation == op {
			n++
		}
	}
	return n
}

func (f *FakeTourAPI) serve(w http.ResponseWriter, r *http.Request) {
	op := path.Base(r.URL.Path)
	q := r.URL.Query()

	f.mu.Lock()
	f.requests = append(f.requests, TourAPIRequest{Operation: op, Query: q})
	status := f.failures[op]
	rows := f.lists[op]
	byID, isDetail := f.details[op]
	f.mu.Unlock()

	if q.Get("serviceKey") != FakeServiceKey {
		w.Header().Set("Content-Type", "text/xml;charset=UTF-8")
		_, _ = w.Write([]byte(missingKeyResponse))
		return
	}
	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}

	pageNo := queryInt(q, "pageNo", 1)
	numOfRows := queryInt(q, "numOfRows", 10)

	if isDetail {
		rows = byID[q.Get("contentId")]
	}
	var items []Item
	if start := (pageNo - 1) * numOfRows; start < len(rows) {
		items = rows[start:min(start+numOfRows, len(rows))]
	}

	w.Header().Set("Content-Type", "application/json;charset=UTF-8")
	_, _ = w.Write(Envelope(items, pageNo, numOfRows, len(rows)))
}

func queryInt(q url.Values, key string, fallback int) int {
	n, err := strconv.Atoi(q.Get(key))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// Envelope renders items the way TourAPI does: no items is an empty string,
// one item is a bare object and several are an array.
func Envelope(items []Item, pageNo, numOfRows, totalCount int) []byte {
	var itemsNode any = ""
	switch len(items) {
	case 0:
	case 1:
		itemsNode = map[string]any{"item": items[0]}
	default:
		itemsNode = map[string]any{"item": items}
	}

	body := map[string]any{
		"response": map[string]any{
			"header": map[string]string{"resultCode": "0000", "resultMsg": "OK"},
			"body": map[string]any{
				"items":      itemsNode,
				"numOfRows":  numOfRows,
				"pageNo":     pageNo,
				"totalCount": totalCount,
			},
		},
	}
	out, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	return out
}
