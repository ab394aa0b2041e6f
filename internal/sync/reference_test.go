// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package sync

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/tourcatalog/internal/catalog"
	"github.com/tomtom215/tourcatalog/internal/models"
)

func areaRow(code, name string) map[string]any {
	return map[string]any{"code": code, "name": name, "rnum": "1"}
}

func TestAreaCodeJob_ReplacesTable(t *testing.T) {
	client := &mockClient{t: t}
	client.fetchList = pagedListing(t, 3, []map[string]any{
		areaRow("1", "서울"),
		areaRow("2", "인천"),
		areaRow("1", "서울특별시"),
	})
	store := &referenceStore[models.AreaCode]{}

	summary := NewAreaCodeJob(client, store, newTestOptions()).Run(context.Background(), nil)

	checkStatus(t, summary, models.RunCompleted)
	want := []models.AreaCode{{Code: "1", Name: "서울특별시"}, {Code: "2", Name: "인천"}}
	if !reflect.DeepEqual(store.rows, want) {
		t.Errorf("rows = %+v, want %+v", store.rows, want)
	}
	checkIntEqual(t, "replaces", store.replaces, 1)
	checkIntEqual(t, "Fetched", summary.Fetched, 3)
	checkIntEqual(t, "Upserted", summary.Upserted, 2)
	if filter := client.filters[0]; filter != (catalog.ListFilter{}) {
		t.Errorf("filter = %+v, want an unfiltered listing", filter)
	}
}

func TestAreaCodeJob_SkipsRowsWithoutCodeOrName(t *testing.T) {
	client := &mockClient{t: t}
	client.fetchList = pagedListing(t, 3, []map[string]any{
		areaRow("1", "서울"),
		areaRow("", "이름만"),
		areaRow("3", " "),
	})
	store := &referenceStore[models.AreaCode]{}

	summary := NewAreaCodeJob(client, store, newTestOptions()).Run(context.Background(), nil)

	checkStatus(t, summary, models.RunCompleted)
	checkIntEqual(t, "Skipped", summary.Skipped, 2)
	checkIntEqual(t, "Warnings", summary.Warnings, 1)
	checkIntEqual(t, "rows", len(store.rows), 1)
}

func TestAreaCodeJob_ListingFailureLeavesTableAlone(t *testing.T) {
	client := &mockClient{t: t}
	client.fetchList = func(_ context.Context, _ models.Domain, _ catalog.ListFilter, page catalog.PageRequest) ([]byte, error) {
		if page.PageNo == 2 {
			return nil, fmt.Errorf("%w: HTTP 502", catalog.ErrTransientNetwork)
		}
		rows := make([]map[string]any, 5)
		for i := range rows {
			rows[i] = areaRow(fmt.Sprint(i+1), fmt.Sprintf("지역 %d", i+1))
		}
		return envelope(t, page.PageNo, 0, rows...), nil
	}
	store := &referenceStore[models.AreaCode]{}

	summary := NewAreaCodeJob(client, store, newTestOptions()).Run(context.Background(), nil)

	checkStatus(t, summary, models.RunAborted)
	checkIntEqual(t, "replaces", store.replaces, 0)
	checkIntEqual(t, "Upserted", summary.Upserted, 0)
}

func TestAreaCodeJob_StoreFailureAborts(t *testing.T) {
	client := &mockClient{t: t}
	client.fetchList = pagedListing(t, 1, []map[string]any{areaRow("1", "서울")})
	store := &referenceStore[models.AreaCode]{err: errors.New("persistence error: locked")}

	summary := NewAreaCodeJob(client, store, newTestOptions()).Run(context.Background(), nil)

	checkStatus(t, summary, models.RunAborted)
	if !strings.Contains(summary.Error, "replace area_code") {
		t.Errorf("Error = %q", summary.Error)
	}
	checkIntEqual(t, "Upserted", summary.Upserted, 0)
}

func TestAreaCodeJob_EmptyListingEmptiesTable(t *testing.T) {
	client := &mockClient{t: t}
	store := &referenceStore[models.AreaCode]{rows: []models.AreaCode{{Code: "1", Name: "서울"}}}

	summary := NewAreaCodeJob(client, store, newTestOptions()).Run(context.Background(), nil)

	checkStatus(t, summary, models.RunCompleted)
	checkIntEqual(t, "replaces", store.replaces, 1)
	checkIntEqual(t, "rows", len(store.rows), 0)
}

func TestLdongCodeJob_BuildsDistrictCodes(t *testing.T) {
	client := &mockClient{t: t}
	client.fetchList = pagedListing(t, 2, []map[string]any{
		{"lDongRegnCd": "11", "lDongRegnNm": "서울특별시", "lDongSignguCd": "110", "lDongSignguNm": "종로구"},
		{"lDongRegnCd": "11", "lDongRegnNm": "서울특별시", "lDongSignguCd": "140", "lDongSignguNm": "중구"},
	})
	store := &referenceStore[models.LdongCode]{}

	summary := NewLdongCodeJob(client, store, newTestOptions()).Run(context.Background(), nil)

	checkStatus(t, summary, models.RunCompleted)
	if len(store.rows) != 2 {
		t.Fatalf("rows = %+v, want 2", store.rows)
	}
	if store.rows[0].Code != "11110" || store.rows[1].Code != "11140" {
		t.Errorf("codes = %s, %s", store.rows[0].Code, store.rows[1].Code)
	}
	if store.rows[0].DistrictName != "종로구" {
		t.Errorf("DistrictName = %q", store.rows[0].DistrictName)
	}
}

func TestReferenceJob_Domain(t *testing.T) {
	client := &mockClient{t: t}
	if got := NewAreaCodeJob(client, &referenceStore[models.AreaCode]{}, Options{}).Domain(); got != models.DomainAreaCode {
		t.Errorf("area job domain = %s", got)
	}
	if got := NewLdongCodeJob(client, &referenceStore[models.LdongCode]{}, Options{}).Domain(); got != models.DomainLdongCode {
		t.Errorf("ldong job domain = %s", got)
	}
}
