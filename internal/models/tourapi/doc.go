// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

// Package tourapi provides data models for Korea Tourism Organization TourAPI
// (KorService2) responses.
//
// Every item field is decoded into Text because the upstream service is not
// consistent about JSON types: the same field may arrive as a string, a
// number, or null depending on the record. Interpretation of values (dates,
// coordinates, integers) is left to the mapper package.
//
// # Endpoints
//
// Reference codes:
//   - AreaCodeItem: areaCode2
//   - LdongCodeItem: ldongCode2 (lDongListYn=Y)
//
// Listings:
//   - ListItem: searchFestival2, areaBasedList2
//
// Details:
//   - CommonItem: detailCommon2
//   - FestivalIntroItem, RestaurantIntroItem, CourseIntroItem: detailIntro2
//   - MenuInfoItem, CourseInfoItem: detailInfo2
//   - ImageItem: detailImage2
//
// Envelope handling (response/header/body/items/item) lives in the catalog
// package, which unwraps pages into slices of these types.
package tourapi
