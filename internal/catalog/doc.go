// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

/*
Package catalog is the TourAPI (KorService2) client and response normalizer.

# Client

HTTPClient issues rate-limited GET requests and returns raw response bodies.
Every request carries serviceKey, MobileOS, MobileApp and _type=json. Failures
are classified into two sentinels:

  - ErrTransientNetwork: connection errors, timeouts, HTTP 429 and 5xx
  - ErrUpstreamFormat: other HTTP statuses, non-JSON bodies, error resultCodes

Retries are the caller's job; IsRetryable reports whether a retry may help.
Caller cancellation is returned as the context error and is never retryable.

CircuitBreakerClient wraps any Client with a gobreaker circuit breaker that
counts only transient failures.

# Normalizer

TourAPI wraps every payload in response.body.items.item. The item node is an
object for one result, an array for several, and "" or null for none:

	page, err := catalog.ExtractItems[tourapi.ListItem](raw)
	detail, err := catalog.FirstItem[tourapi.CommonItem](raw)

ExtractItems always yields a slice. Missing levels yield an empty page.
*/
package catalog
