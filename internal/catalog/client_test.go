// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/tourcatalog/internal/config"
	"github.com/tomtom215/tourcatalog/internal/models"
)

const okBody = `{"response":{"header":{"resultCode":"0000","resultMsg":"OK"},"body":{"items":"","totalCount":0}}}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewHTTPClient(&config.CatalogConfig{
		BaseURL:    server.URL + "/",
		ServiceKey: "test+key/==",
		MobileOS:   "ETC",
		MobileApp:  "tourcatalog",
		Timeout:    2 * time.Second,
		RateLimit:  1000,
		RateBurst:  100,
	})
}

func TestHTTPClient_FetchListParameters(t *testing.T) {
	tests := []struct {
		name     string
		domain   models.Domain
		filter   ListFilter
		wantPath string
		want     map[string]string
		absent   []string
	}{
		{
			name:     "area codes",
			domain:   models.DomainAreaCode,
			wantPath: "/areaCode2",
			want:     map[string]string{"pageNo": "1", "numOfRows": "50"},
			absent:   []string{"areaCode", "contentTypeId"},
		},
		{
			name:     "legal district codes",
			domain:   models.DomainLdongCode,
			filter:   ListFilter{LDongRegnCd: "11"},
			wantPath: "/ldongCode2",
			want:     map[string]string{"lDongListYn": "Y", "lDongRegnCd": "11"},
		},
		{
			name:     "festivals",
			domain:   models.DomainFestival,
			filter:   ListFilter{EventStartDate: "20260101", AreaCode: "1", Arrange: "C"},
			wantPath: "/searchFestival2",
			want:     map[string]string{"eventStartDate": "20260101", "areaCode": "1", "arrange": "C"},
			absent:   []string{"contentTypeId", "sigunguCode"},
		},
		{
			name:     "restaurants",
			domain:   models.DomainRestaurant,
			wantPath: "/areaBasedList2",
			want:     map[string]string{"contentTypeId": "39"},
		},
		{
			name:     "travel courses",
			domain:   models.DomainTravelCourse,
			wantPath: "/areaBasedList2",
			want:     map[string]string{"contentTypeId": "25"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != tt.wantPath {
					t.Errorf("path = %s, want %s", r.URL.Path, tt.wantPath)
				}
				q := r.URL.Query()
				common := map[string]string{
					"MobileOS":   "ETC",
					"MobileApp":  "tourcatalog",
					"_type":      "json",
					"serviceKey": "test+key/==",
				}
				for k, v := range common {
					if q.Get(k) != v {
						t.Errorf("%s = %q, want %q", k, q.Get(k), v)
					}
				}
				for k, v := range tt.want {
					if q.Get(k) != v {
						t.Errorf("%s = %q, want %q", k, q.Get(k), v)
					}
				}
				for _, k := range tt.absent {
					if q.Has(k) {
						t.Errorf("%s should not be set", k)
					}
				}
				_, _ = w.Write([]byte(okBody))
			})

			body, err := client.FetchList(context.Background(), tt.domain, tt.filter, PageRequest{PageNo: 1, NumOfRows: 50})
			if err != nil {
				t.Fatalf("FetchList() error = %v", err)
			}
			if string(body) != okBody {
				t.Errorf("body = %s", body)
			}
		})
	}
}

func TestHTTPClient_DetailOperations(t *testing.T) {
	var (
		mu    sync.Mutex
		paths []string
	)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		mu.Lock()
		paths = append(paths, r.URL.Path+"?"+q.Get("contentId")+"/"+q.Get("contentTypeId")+"/"+q.Get("pageNo"))
		mu.Unlock()
		if r.URL.Path == "/detailImage2" && q.Get("imageYN") != "Y" {
			t.Errorf("imageYN = %q, want Y", q.Get("imageYN"))
		}
		_, _ = w.Write([]byte(okBody))
	})
	ctx := context.Background()

	if _, err := client.FetchDetail(ctx, models.DomainFestival, "100"); err != nil {
		t.Fatal(err)
	}
	if _, err := client.FetchIntro(ctx, models.DomainFestival, "100"); err != nil {
		t.Fatal(err)
	}
	if _, err := client.FetchChildList(ctx, models.DomainRestaurant, "200", PageRequest{PageNo: 1, NumOfRows: 100}); err != nil {
		t.Fatal(err)
	}
	if _, err := client.FetchImages(ctx, models.DomainFestival, "100", PageRequest{PageNo: 2, NumOfRows: 100}); err != nil {
		t.Fatal(err)
	}

	mu.Lock()
	defer mu.Unlock()
	want := []string{
		"/detailCommon2?100//",
		"/detailIntro2?100/15/",
		"/detailInfo2?200/39/1",
		"/detailImage2?100//2",
	}
	if strings.Join(paths, ",") != strings.Join(want, ",") {
		t.Errorf("requests = %v, want %v", paths, want)
	}
}

func TestHTTPClient_ReferenceDomainHasNoIntro(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	if _, err := client.FetchIntro(context.Background(), models.DomainAreaCode, "1"); err == nil {
		t.Error("expected error for a domain without content type")
	}
}

func TestHTTPClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		wantTransient bool
		wantFormat    bool
	}{
		{"rate limited", http.StatusTooManyRequests, "slow down", true, false},
		{"server error", http.StatusInternalServerError, "boom", true, false},
		{"bad gateway", http.StatusBadGateway, "", true, false},
		{"bad request", http.StatusBadRequest, "bad", false, true},
		{"xml gateway error", http.StatusOK, `<OpenAPI_ServiceResponse><cmmMsgHeader><returnAuthMsg>SERVICE_KEY_IS_NOT_REGISTERED_ERROR</returnAuthMsg></cmmMsgHeader></OpenAPI_ServiceResponse>`, false, true},
		{"empty body", http.StatusOK, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.FetchDetail(context.Background(), models.DomainFestival, "1")
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrTransientNetwork); got != tt.wantTransient {
				t.Errorf("transient = %v, want %v (err=%v)", got, tt.wantTransient, err)
			}
			if got := errors.Is(err, ErrUpstreamFormat); got != tt.wantFormat {
				t.Errorf("format = %v, want %v (err=%v)", got, tt.wantFormat, err)
			}
			if strings.Contains(err.Error(), "test+key") {
				t.Errorf("error leaks the service key: %v", err)
			}
		})
	}
}

func TestHTTPClient_ConnectionFailureIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewHTTPClient(&config.CatalogConfig{
		BaseURL:   url,
		MobileOS:  "ETC",
		MobileApp: "tourcatalog",
		Timeout:   time.Second,
		RateLimit: 100,
		RateBurst: 1,
	})

	client.serviceKey = "secret-key"

	_, err := client.FetchDetail(context.Background(), models.DomainFestival, "1")
	if !errors.Is(err, ErrTransientNetwork) {
		t.Errorf("expected ErrTransientNetwork, got %v", err)
	}
	if err != nil && strings.Contains(err.Error(), "secret-key") {
		t.Errorf("error leaks the service key: %v", err)
	}
}

func TestHTTPClient_TimeoutIsTransient(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)
	client.timeout = 50 * time.Millisecond

	_, err := client.FetchDetail(context.Background(), models.DomainFestival, "1")
	if !errors.Is(err, ErrTransientNetwork) {
		t.Errorf("expected ErrTransientNetwork on per-call timeout, got %v", err)
	}
}

func TestHTTPClient_CallerCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected after cancellation")
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchDetail(ctx, models.DomainFestival, "1")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if !IsCanceled(err) {
		t.Error("IsCanceled() = false")
	}
	if IsRetryable(err) {
		t.Error("cancellation must not be retryable")
	}
}

func TestHTTPClient_BuildURLServiceKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"raw key is escaped", "ab+c/d==", "serviceKey=ab%2Bc%2Fd%3D%3D&"},
		{"encoded key kept verbatim", "ab%2Bc%2Fd%3D%3D", "serviceKey=ab%2Bc%2Fd%3D%3D&"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewHTTPClient(&config.CatalogConfig{BaseURL: "https://example.test/svc", ServiceKey: tt.key, MobileOS: "ETC", MobileApp: "app", RateLimit: 1, RateBurst: 1})
			got := c.buildURL(opDetailCommon, map[string][]string{"contentId": {"1"}})
			if !strings.HasPrefix(got, "https://example.test/svc/detailCommon2?") {
				t.Errorf("unexpected URL %s", got)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("URL %s does not contain %s", got, tt.want)
			}
		})
	}
}
