// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package tourapi

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Text is a string field that tolerates numeric, boolean and null JSON values.
// Numbers keep their literal representation so "0012" style codes and
// coordinates are not reformatted.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*t = ""
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	default:
		*t = Text(data)
		return nil
	}
}

// String returns the raw value.
func (t Text) String() string {
	return string(t)
}

// Trimmed returns the value with surrounding whitespace removed.
func (t Text) Trimmed() string {
	return strings.TrimSpace(string(t))
}

// IsEmpty reports whether the value is blank.
func (t Text) IsEmpty() bool {
	return t.Trimmed() == ""
}

// Int is an integer field that accepts both JSON numbers and numeric strings.
// Malformed or empty values decode to zero.
type Int int

// UnmarshalJSON implements json.Unmarshaler.
func (n *Int) UnmarshalJSON(data []byte) error {
	var t Text
	if err := t.UnmarshalJSON(data); err != nil {
		return err
	}
	v, err := strconv.Atoi(t.Trimmed())
	if err != nil {
		*n = 0
		return nil
	}
	*n = Int(v)
	return nil
}
