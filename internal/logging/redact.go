// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package logging

import (
	"net/url"
	"strings"
)

// sensitiveParams are query parameters whose values never reach the logs.
var sensitiveParams = []string{"serviceKey", "ServiceKey", "servicekey", "password"}

// RedactURL masks credential query parameters in a request URL. Inputs that
// do not parse as URLs are returned fully masked.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "[unparseable-url]"
	}
	q := u.Query()
	changed := false
	for _, p := range sensitiveParams {
		if q.Has(p) {
			q.Set(p, MaskSecret(q.Get(p)))
			changed = true
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// MaskSecret keeps the first four characters of a secret for identification.
func MaskSecret(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + "****"
}
