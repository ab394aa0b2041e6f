// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package catalog

import "errors"

var (
	// ErrTransientNetwork marks failures worth retrying: connection errors,
	// timeouts, HTTP 429 and 5xx responses, and an open circuit breaker.
	ErrTransientNetwork = errors.New("transient network error")

	// ErrUpstreamFormat marks responses that arrived but cannot be used:
	// non-JSON bodies, unexpected shapes, or an upstream error resultCode.
	// Retrying does not help.
	ErrUpstreamFormat = errors.New("upstream format error")
)

// IsRetryable reports whether err is worth another attempt.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransientNetwork)
}
