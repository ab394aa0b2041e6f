// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package catalog

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tourcatalog/internal/models/tourapi"
)

// successCode is the resultCode of a successful TourAPI response.
const successCode = "0000"

// Page is one page of items unwrapped from a response envelope.
type Page[T any] struct {
	Items      []T
	PageNo     int
	NumOfRows  int
	TotalCount int
}

// envelope mirrors {response:{header:{...}, body:{items:{item:...}, ...}}}.
// Every level is optional; missing levels decode to nil pointers.
type envelope[T any] struct {
	Response *struct {
		Header *struct {
			ResultCode tourapi.Text `json:"resultCode"`
			ResultMsg  tourapi.Text `json:"resultMsg"`
		} `json:"header"`
		Body *struct {
			Items      itemList[T] `json:"items"`
			NumOfRows  tourapi.Int `json:"numOfRows"`
			PageNo     tourapi.Int `json:"pageNo"`
			TotalCount tourapi.Int `json:"totalCount"`
		} `json:"body"`
	} `json:"response"`
}

// itemList decodes the "items" node. Upstream sends a bare object for a
// single result, an array for several, and "", null or [] for none.
type itemList[T any] []T

// UnmarshalJSON implements json.Unmarshaler.
func (l *itemList[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if isEmptyNode(data) || data[0] == '"' || isEmptyArray(data) {
		*l = nil
		return nil
	}
	if data[0] != '{' {
		return fmt.Errorf("items: expected object, got %.20s", data)
	}

	var wrapper struct {
		Item json.RawMessage `json:"item"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return fmt.Errorf("items: %w", err)
	}

	item := bytes.TrimSpace(wrapper.Item)
	switch {
	case isEmptyNode(item):
		*l = nil
	case item[0] == '[':
		var many []T
		if err := json.Unmarshal(item, &many); err != nil {
			return fmt.Errorf("items.item array: %w", err)
		}
		*l = many
	case item[0] == '{':
		var one T
		if err := json.Unmarshal(item, &one); err != nil {
			return fmt.Errorf("items.item object: %w", err)
		}
		*l = []T{one}
	default:
		return fmt.Errorf("items.item: unexpected value %.20s", item)
	}
	return nil
}

func isEmptyNode(b []byte) bool {
	return len(b) == 0 || bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte(`""`))
}

func isEmptyArray(b []byte) bool {
	if len(b) < 2 || b[0] != '[' || b[len(b)-1] != ']' {
		return false
	}
	return len(bytes.TrimSpace(b[1:len(b)-1])) == 0
}

// ExtractItems unwraps response.body.items.item into a slice.
//
// A single object yields a one-element slice, an array is returned as-is and
// any missing level yields an empty page. Malformed JSON and an upstream error
// header are reported as ErrUpstreamFormat.
func ExtractItems[T any](raw []byte) (Page[T], error) {
	var env envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return Page[T]{}, fmt.Errorf("%w: %v", ErrUpstreamFormat, err)
	}

	if env.Response == nil {
		return Page[T]{}, nil
	}

	if h := env.Response.Header; h != nil {
		if code := h.ResultCode.Trimmed(); code != "" && code != successCode {
			return Page[T]{}, fmt.Errorf("%w: resultCode %s: %s", ErrUpstreamFormat, code, h.ResultMsg.Trimmed())
		}
	}

	body := env.Response.Body
	if body == nil {
		return Page[T]{}, nil
	}

	return Page[T]{
		Items:      body.Items,
		PageNo:     int(body.PageNo),
		NumOfRows:  int(body.NumOfRows),
		TotalCount: int(body.TotalCount),
	}, nil
}

// FirstItem returns the first item of a detail response, or nil when the
// response carries no item.
func FirstItem[T any](raw []byte) (*T, error) {
	page, err := ExtractItems[T](raw)
	if err != nil {
		return nil, err
	}
	if len(page.Items) == 0 {
		return nil, nil
	}
	return &page.Items[0], nil
}
