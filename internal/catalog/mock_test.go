// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package catalog

import (
	"context"

	"github.com/tomtom215/tourcatalog/internal/models"
)

// mockClient implements Client with optional function fields.
type mockClient struct {
	fetchList      func(ctx context.Context, domain models.Domain, filter ListFilter, page PageRequest) ([]byte, error)
	fetchDetail    func(ctx context.Context, domain models.Domain, contentID string) ([]byte, error)
	fetchIntro     func(ctx context.Context, domain models.Domain, contentID string) ([]byte, error)
	fetchChildList func(ctx context.Context, domain models.Domain, contentID string, page PageRequest) ([]byte, error)
	fetchImages    func(ctx context.Context, domain models.Domain, contentID string, page PageRequest) ([]byte, error)
}

func (m *mockClient) FetchList(ctx context.Context, domain models.Domain, filter ListFilter, page PageRequest) ([]byte, error) {
	if m.fetchList != nil {
		return m.fetchList(ctx, domain, filter, page)
	}
	return []byte(`{}`), nil
}

func (m *mockClient) FetchDetail(ctx context.Context, domain models.Domain, contentID string) ([]byte, error) {
	if m.fetchDetail != nil {
		return m.fetchDetail(ctx, domain, contentID)
	}
	return []byte(`{}`), nil
}

func (m *mockClient) FetchIntro(ctx context.Context, domain models.Domain, contentID string) ([]byte, error) {
	if m.fetchIntro != nil {
		return m.fetchIntro(ctx, domain, contentID)
	}
	return []byte(`{}`), nil
}

func (m *mockClient) FetchChildList(ctx context.Context, domain models.Domain, contentID string, page PageRequest) ([]byte, error) {
	if m.fetchChildList != nil {
		return m.fetchChildList(ctx, domain, contentID, page)
	}
	return []byte(`{}`), nil
}

func (m *mockClient) FetchImages(ctx context.Context, domain models.Domain, contentID string, page PageRequest) ([]byte, error) {
	if m.fetchImages != nil {
		return m.fetchImages(ctx, domain, contentID, page)
	}
	return []byte(`{}`), nil
}
