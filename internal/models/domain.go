// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package models

import (
	"fmt"
	"strings"
)

// Domain identifies one synchronizable catalog domain.
type Domain string

const (
	DomainAreaCode     Domain = "area_code"
	DomainLdongCode    Domain = "ldong_code"
	DomainFestival     Domain = "festival"
	DomainRestaurant   Domain = "restaurant"
	DomainTravelCourse Domain = "travel_course"
)

// AllDomains returns every domain, reference domains first.
func AllDomains() []Domain {
	return []Domain{
		DomainAreaCode,
		DomainLdongCode,
		DomainFestival,
		DomainRestaurant,
		DomainTravelCourse,
	}
}

// IsReference reports whether the domain is a flat code table that is
// replaced wholesale on each sync.
func (d Domain) IsReference() bool {
	return d == DomainAreaCode || d == DomainLdongCode
}

// ContentTypeID returns the TourAPI contentTypeId for relational domains,
// or an empty string for reference domains.
func (d Domain) ContentTypeID() string {
	switch d {
	case DomainFestival:
		return "15"
	case DomainTravelCourse:
		return "25"
	case DomainRestaurant:
		return "39"
	default:
		return ""
	}
}

// ParseDomain converts user input (case-insensitive, '-' or '_') into a Domain.
func ParseDomain(s string) (Domain, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, d := range AllDomains() {
		if string(d) == normalized {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown domain %q", s)
}
