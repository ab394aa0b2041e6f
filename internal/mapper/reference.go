// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package mapper

import (
	"github.com/tomtom215/tourcatalog/internal/models"
	"github.com/tomtom215/tourcatalog/internal/models/tourapi"
)

// AreaCodes maps areaCode2 rows. Rows without a code are dropped.
func AreaCodes(items []tourapi.AreaCodeItem) ([]models.AreaCode, Warnings) {
	m := newFieldMapper("")
	codes := make([]models.AreaCode, 0, len(items))
	for _, item := range items {
		code := clean(item.Code)
		if code == "" {
			m.warn("code", item.Name.String(), "missing code")
			continue
		}
		codes = append(codes, models.AreaCode{
			Code: code,
			Name: clean(item.Name),
		})
	}
	return codes, m.warnings
}

// LdongCodes maps ldongCode2 rows. The code of a district is the province
// code followed by the district code; a row without a district code stands
// for the province itself.
func LdongCodes(items []tourapi.LdongCodeItem) ([]models.LdongCode, Warnings) {
	m := newFieldMapper("")
	codes := make([]models.LdongCode, 0, len(items))
	for _, item := range items {
		region := clean(item.LDongRegnCd)
		if region == "" {
			m.warn("lDongRegnCd", item.LDongSignguNm.String(), "missing region code")
			continue
		}
		district := clean(item.LDongSignguCd)
		codes = append(codes, models.LdongCode{
			Code:         region + district,
			RegionCode:   region,
			RegionName:   clean(item.LDongRegnNm),
			DistrictCode: district,
			DistrictName: clean(item.LDongSignguNm),
		})
	}
	return codes, m.warnings
}
