// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package mapper

import "fmt"

// Warning describes a field that could not be mapped and was left unset.
type Warning struct {
	ContentID string
	Field     string
	Value     string
	Reason    string
}

// String implements fmt.Stringer.
func (w Warning) String() string {
	if w.ContentID == "" {
		return fmt.Sprintf("%s=%q: %s", w.Field, w.Value, w.Reason)
	}
	return fmt.Sprintf("%s: %s=%q: %s", w.ContentID, w.Field, w.Value, w.Reason)
}

// Warnings is the list of problems found while mapping one aggregate.
type Warnings []Warning

// Fields returns the distinct field names in first-seen order.
func (ws Warnings) Fields() []string {
	seen := make(map[string]bool, len(ws))
	fields := make([]string, 0, len(ws))
	for _, w := range ws {
		if !seen[w.Field] {
			seen[w.Field] = true
			fields = append(fields, w.Field)
		}
	}
	return fields
}
