// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package mapper

import (
	"github.com/tomtom215/tourcatalog/internal/models"
	"github.com/tomtom215/tourcatalog/internal/models/tourapi"
)

// ContentID returns the cleaned natural key of a listing row.
func ContentID(list tourapi.ListItem) string {
	return clean(list.ContentID)
}

// emptyCommon stands in for a missing detailCommon2 record.
var emptyCommon tourapi.CommonItem

func commonOrEmpty(common *tourapi.CommonItem) *tourapi.CommonItem {
	if common == nil {
		return &emptyCommon
	}
	return common
}

// basicInfo merges the listing row with detailCommon2, preferring detail.
func (m *fieldMapper) basicInfo(list *tourapi.ListItem, common *tourapi.CommonItem) models.BasicInfo {
	return models.BasicInfo{
		ContentTypeID: prefer(common.ContentTypeID, list.ContentTypeID),
		Title:         prefer(common.Title, list.Title),
		Addr1:         prefer(common.Addr1, list.Addr1),
		Addr2:         prefer(common.Addr2, list.Addr2),
		Zipcode:       prefer(common.Zipcode, list.Zipcode),
		Tel:           prefer(common.Tel, list.Tel),
		Cat1:          prefer(common.Cat1, list.Cat1),
		Cat2:          prefer(common.Cat2, list.Cat2),
		Cat3:          prefer(common.Cat3, list.Cat3),
		FirstImage:    prefer(common.FirstImage, list.FirstImage),
		FirstImage2:   prefer(common.FirstImage2, list.FirstImage2),
		MapX:          m.longitude(prefer(common.MapX, list.MapX)),
		MapY:          m.latitude(prefer(common.MapY, list.MapY)),
		MLevel:        prefer(common.MLevel, list.MLevel),
		CreatedAt:     m.timestamp("createdtime", prefer(common.CreatedTime, list.CreatedTime)),
		ModifiedAt:    m.timestamp("modifiedtime", prefer(common.ModifiedTime, list.ModifiedTime)),
	}
}

func regionLink(list *tourapi.ListItem, common *tourapi.CommonItem) models.RegionLink {
	return models.RegionLink{
		AreaCode:      prefer(list.AreaCode, common.AreaCode),
		SigunguCode:   prefer(list.SigunguCode, common.SigunguCode),
		LDongRegnCd:   prefer(list.LDongRegnCd, common.LDongRegnCd),
		LDongSignguCd: prefer(list.LDongSignguCd, common.LDongSignguCd),
	}
}

// Festival assembles a festival aggregate. common and intro may be nil when
// their fetch failed; images may be empty.
func Festival(list tourapi.ListItem, common *tourapi.CommonItem, intro *tourapi.FestivalIntroItem, images []tourapi.ImageItem) (*models.Festival, Warnings) {
	contentID := ContentID(list)
	m := newFieldMapper(contentID)
	c := commonOrEmpty(common)
	if intro == nil {
		intro = &tourapi.FestivalIntroItem{}
	}

	f := &models.Festival{
		ContentID:      contentID,
		Basic:          m.basicInfo(&list, c),
		Region:         regionLink(&list, c),
		EventStartDate: m.date("eventstartdate", prefer(list.EventStartDate, intro.EventStartDate)),
		EventEndDate:   m.date("eventenddate", prefer(list.EventEndDate, intro.EventEndDate)),
		Detail: models.FestivalDetail{
			Homepage:        clean(c.Homepage),
			Overview:        clean(c.Overview),
			EventPlace:      clean(intro.EventPlace),
			EventHomepage:   clean(intro.EventHomepage),
			PlayTime:        clean(intro.PlayTime),
			Program:         clean(intro.Program),
			SubEvent:        clean(intro.SubEvent),
			Sponsor1:        clean(intro.Sponsor1),
			Sponsor1Tel:     clean(intro.Sponsor1Tel),
			Sponsor2:        clean(intro.Sponsor2),
			Sponsor2Tel:     clean(intro.Sponsor2Tel),
			UseTimeFestival: clean(intro.UseTimeFestival),
			AgeLimit:        clean(intro.AgeLimit),
			BookingPlace:    clean(intro.BookingPlace),
			PlaceInfo:       clean(intro.PlaceInfo),
			SpendTime:       clean(intro.SpendTime),
			DiscountInfo:    clean(intro.DiscountInfo),
			FestivalGrade:   clean(intro.FestivalGrade),
		},
		Images: make([]models.FestivalImage, 0, len(images)),
	}

	if f.EventStartDate != nil && f.EventEndDate != nil && f.EventEndDate.Before(*f.EventStartDate) {
		m.warn("eventenddate", f.EventEndDate.Format(dateLayout), "ends before it starts")
		f.EventEndDate = nil
	}

	for _, img := range images {
		origin := clean(img.OriginImgURL)
		if origin == "" {
			m.warn("originimgurl", img.SerialNum.String(), "missing image URL")
			continue
		}
		f.Images = append(f.Images, models.FestivalImage{
			SerialNum: clean(img.SerialNum),
			Name:      clean(img.ImgName),
			OriginURL: origin,
			SmallURL:  clean(img.SmallImageURL),
			Position:  len(f.Images),
		})
	}

	return f, m.warnings
}

// Restaurant assembles a restaurant aggregate. Menu rows come from
// detailInfo2 where infoname is the dish and infotext its price.
func Restaurant(list tourapi.ListItem, common *tourapi.CommonItem, intro *tourapi.RestaurantIntroItem, menus []tourapi.MenuInfoItem) (*models.Restaurant, Warnings) {
	contentID := ContentID(list)
	m := newFieldMapper(contentID)
	c := commonOrEmpty(common)
	if intro == nil {
		intro = &tourapi.RestaurantIntroItem{}
	}

	r := &models.Restaurant{
		ContentID: contentID,
		Basic:     m.basicInfo(&list, c),
		Region:    regionLink(&list, c),
		Detail: models.RestaurantDetail{
			Homepage:     clean(c.Homepage),
			Overview:     clean(c.Overview),
			FirstMenu:    clean(intro.FirstMenu),
			TreatMenu:    clean(intro.TreatMenu),
			OpenTime:     clean(intro.OpenTime),
			RestDate:     clean(intro.RestDate),
			InfoCenter:   clean(intro.InfoCenter),
			Parking:      clean(intro.Parking),
			Packing:      clean(intro.Packing),
			Reservation:  clean(intro.Reservation),
			Smoking:      clean(intro.Smoking),
			Seat:         clean(intro.Seat),
			KidsFacility: clean(intro.KidsFacility),
			CreditCard:   clean(intro.ChkCreditCard),
			DiscountInfo: clean(intro.DiscountInfo),
			Scale:        clean(intro.Scale),
			OpenDate:     clean(intro.OpenDate),
		},
		Menus: make([]models.Menu, 0, len(menus)),
	}

	for _, menu := range menus {
		name := clean(menu.InfoName)
		if name == "" {
			m.warn("infoname", menu.SerialNum.String(), "missing menu name")
			continue
		}
		r.Menus = append(r.Menus, models.Menu{
			SerialNum: clean(menu.SerialNum),
			Name:      name,
			Price:     clean(menu.InfoText),
			Position:  len(r.Menus),
		})
	}

	return r, m.warnings
}

// TravelCourse assembles a travel course aggregate with its legs.
func TravelCourse(list tourapi.ListItem, common *tourapi.CommonItem, intro *tourapi.CourseIntroItem, legs []tourapi.CourseInfoItem) (*models.TravelCourse, Warnings) {
	contentID := ContentID(list)
	m := newFieldMapper(contentID)
	c := commonOrEmpty(common)
	if intro == nil {
		intro = &tourapi.CourseIntroItem{}
	}

	tc := &models.TravelCourse{
		ContentID: contentID,
		Basic:     m.basicInfo(&list, c),
		Region:    regionLink(&list, c),
		Detail: models.CourseDetail{
			Homepage:   clean(c.Homepage),
			Overview:   clean(c.Overview),
			Distance:   clean(intro.Distance),
			TakeTime:   clean(intro.TakeTime),
			Schedule:   clean(intro.Schedule),
			Theme:      clean(intro.Theme),
			InfoCenter: clean(intro.InfoCenter),
		},
		Legs: make([]models.CourseLeg, 0, len(legs)),
	}

	for _, leg := range legs {
		name := clean(leg.SubName)
		if name == "" {
			m.warn("subname", leg.SubNum.String(), "missing leg name")
			continue
		}
		tc.Legs = append(tc.Legs, models.CourseLeg{
			SubNum:       m.integer("subnum", clean(leg.SubNum)),
			SubContentID: clean(leg.SubContentID),
			Name:         name,
			Overview:     clean(leg.SubDetailOverview),
			Image:        clean(leg.SubDetailImg),
			ImageAlt:     clean(leg.SubDetailAlt),
			Position:     len(tc.Legs),
		})
	}

	return tc, m.warnings
}
