// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

// Package testinfra provides test infrastructure shared by package tests.
//
// # Fake TourAPI
//
// FakeTourAPI is an httptest server that speaks the TourAPI wire format:
// the {response:{header,body:{items:{item}}}} envelope, pageNo/numOfRows
// pagination and the XML error page the gateway returns for a missing
// service key. Tests drive the real catalog.HTTPClient against it:
//
//	fake := testinfra.NewFakeTourAPI(t)
//	fake.SetList("searchFestival2", rows)
//	fake.SetDetail("detailCommon2", "2786391", commonItem)
//
//	client := catalog.NewHTTPClient(&config.CatalogConfig{
//	    BaseURL:    fake.URL(),
//	    ServiceKey: testinfra.FakeServiceKey,
//	})
//
// Every request is captured for later assertions.
//
// # PostgreSQL Container
//
// Behind the integration build tag, NewPostgresContainer starts a disposable
// PostgreSQL instance with testcontainers-go:
//
//	go test -tags integration ./internal/database/...
//
// Tests skip gracefully when Docker is unavailable.
package testinfra
