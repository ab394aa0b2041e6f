// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package models

import "time"

// BasicInfo holds the listing attributes shared by all content domains.
// MapX/MapY are nil when the upstream coordinate was missing or malformed.
type BasicInfo struct {
	ContentTypeID string     `json:"content_type_id"`
	Title         string     `json:"title" validate:"required"`
	Addr1         string     `json:"addr1,omitempty"`
	Addr2         string     `json:"addr2,omitempty"`
	Zipcode       string     `json:"zipcode,omitempty"`
	Tel           string     `json:"tel,omitempty"`
	Cat1          string     `json:"cat1,omitempty"`
	Cat2          string     `json:"cat2,omitempty"`
	Cat3          string     `json:"cat3,omitempty"`
	FirstImage    string     `json:"first_image,omitempty"`
	FirstImage2   string     `json:"first_image2,omitempty"`
	MapX          *float64   `json:"map_x,omitempty" validate:"omitempty,longitude"`
	MapY          *float64   `json:"map_y,omitempty" validate:"omitempty,latitude"`
	MLevel        string     `json:"mlevel,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	ModifiedAt    *time.Time `json:"modified_at,omitempty"`
}

// RegionLink ties a content item to both code systems.
type RegionLink struct {
	AreaCode      string `json:"area_code,omitempty"`
	SigunguCode   string `json:"sigungu_code,omitempty"`
	LDongRegnCd   string `json:"ldong_regn_cd,omitempty"`
	LDongSignguCd string `json:"ldong_signgu_cd,omitempty"`
}

// Festival is a festival aggregate with its ordered image gallery.
type Festival struct {
	ContentID      string          `json:"content_id" validate:"required,numeric"`
	Basic          BasicInfo       `json:"basic"`
	Region         RegionLink      `json:"region"`
	EventStartDate *time.Time      `json:"event_start_date,omitempty"`
	EventEndDate   *time.Time      `json:"event_end_date,omitempty"`
	Detail         FestivalDetail  `json:"detail"`
	Images         []FestivalImage `json:"images" validate:"dive"`
}

// FestivalDetail holds detailCommon2 and detailIntro2 attributes of a festival.
type FestivalDetail struct {
	Homepage        string `json:"homepage,omitempty"`
	Overview        string `json:"overview,omitempty"`
	EventPlace      string `json:"event_place,omitempty"`
	EventHomepage   string `json:"event_homepage,omitempty"`
	PlayTime        string `json:"play_time,omitempty"`
	Program         string `json:"program,omitempty"`
	SubEvent        string `json:"sub_event,omitempty"`
	Sponsor1        string `json:"sponsor1,omitempty"`
	Sponsor1Tel     string `json:"sponsor1_tel,omitempty"`
	Sponsor2        string `json:"sponsor2,omitempty"`
	Sponsor2Tel     string `json:"sponsor2_tel,omitempty"`
	UseTimeFestival string `json:"use_time,omitempty"`
	AgeLimit        string `json:"age_limit,omitempty"`
	BookingPlace    string `json:"booking_place,omitempty"`
	PlaceInfo       string `json:"place_info,omitempty"`
	SpendTime       string `json:"spend_time,omitempty"`
	DiscountInfo    string `json:"discount_info,omitempty"`
	FestivalGrade   string `json:"festival_grade,omitempty"`
}

// FestivalImage is one entry of a festival gallery.
type FestivalImage struct {
	SerialNum string `json:"serial_num"`
	Name      string `json:"name,omitempty"`
	OriginURL string `json:"origin_url" validate:"required"`
	SmallURL  string `json:"small_url,omitempty"`
	Position  int    `json:"position" validate:"min=0"`
}

// Restaurant is a restaurant aggregate with its ordered menu list.
type Restaurant struct {
	ContentID string           `json:"content_id" validate:"required,numeric"`
	Basic     BasicInfo        `json:"basic"`
	Region    RegionLink       `json:"region"`
	Detail    RestaurantDetail `json:"detail"`
	Menus     []Menu           `json:"menus" validate:"dive"`
}

// RestaurantDetail holds detailCommon2 and detailIntro2 attributes of a restaurant.
type RestaurantDetail struct {
	Homepage     string `json:"homepage,omitempty"`
	Overview     string `json:"overview,omitempty"`
	FirstMenu    string `json:"first_menu,omitempty"`
	TreatMenu    string `json:"treat_menu,omitempty"`
	OpenTime     string `json:"open_time,omitempty"`
	RestDate     string `json:"rest_date,omitempty"`
	InfoCenter   string `json:"info_center,omitempty"`
	Parking      string `json:"parking,omitempty"`
	Packing      string `json:"packing,omitempty"`
	Reservation  string `json:"reservation,omitempty"`
	Smoking      string `json:"smoking,omitempty"`
	Seat         string `json:"seat,omitempty"`
	KidsFacility string `json:"kids_facility,omitempty"`
	CreditCard   string `json:"credit_card,omitempty"`
	DiscountInfo string `json:"discount_info,omitempty"`
	Scale        string `json:"scale,omitempty"`
	OpenDate     string `json:"open_date,omitempty"`
}

// Menu is one menu entry of a restaurant.
type Menu struct {
	SerialNum string `json:"serial_num"`
	Name      string `json:"name" validate:"required"`
	Price     string `json:"price,omitempty"`
	Position  int    `json:"position" validate:"min=0"`
}

// TravelCourse is a travel course aggregate with its ordered legs.
type TravelCourse struct {
	ContentID string       `json:"content_id" validate:"required,numeric"`
	Basic     BasicInfo    `json:"basic"`
	Region    RegionLink   `json:"region"`
	Detail    CourseDetail `json:"detail"`
	Legs      []CourseLeg  `json:"legs" validate:"dive"`
}

// CourseDetail holds detailCommon2 and detailIntro2 attributes of a course.
type CourseDetail struct {
	Homepage   string `json:"homepage,omitempty"`
	Overview   string `json:"overview,omitempty"`
	Distance   string `json:"distance,omitempty"`
	TakeTime   string `json:"take_time,omitempty"`
	Schedule   string `json:"schedule,omitempty"`
	Theme      string `json:"theme,omitempty"`
	InfoCenter string `json:"info_center,omitempty"`
}

// CourseLeg is one stop of a travel course. SubContentID may reference
// another content item and is not validated against the catalog.
type CourseLeg struct {
	SubNum       int    `json:"sub_num"`
	SubContentID string `json:"sub_content_id,omitempty"`
	Name         string `json:"name" validate:"required"`
	Overview     string `json:"overview,omitempty"`
	Image        string `json:"image,omitempty"`
	ImageAlt     string `json:"image_alt,omitempty"`
	Position     int    `json:"position" validate:"min=0"`
}
