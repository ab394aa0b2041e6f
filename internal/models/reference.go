// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package models

// AreaCode is a province or district from the legacy area code table.
type AreaCode struct {
	Code string `json:"code" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// LdongCode is a legal-dong district. Code is the province code followed by
// the district code (e.g. "11" + "110" = "11110").
type LdongCode struct {
	Code         string `json:"code" validate:"required"`
	RegionCode   string `json:"region_code" validate:"required"`
	RegionName   string `json:"region_name"`
	DistrictCode string `json:"district_code"`
	DistrictName string `json:"district_name"`
}
