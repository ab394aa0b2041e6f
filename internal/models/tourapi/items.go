// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package tourapi

// AreaCodeItem is one row of areaCode2.
type AreaCodeItem struct {
	Code Text `json:"code"`
	Name Text `json:"name"`
	RNum Text `json:"rnum"`
}

// LdongCodeItem is one row of ldongCode2 with lDongListYn=Y.
// The full code of a district is LDongRegnCd followed by LDongSignguCd.
type LdongCodeItem struct {
	LDongRegnCd   Text `json:"lDongRegnCd"`
	LDongRegnNm   Text `json:"lDongRegnNm"`
	LDongSignguCd Text `json:"lDongSignguCd"`
	LDongSignguNm Text `json:"lDongSignguNm"`
	RNum          Text `json:"rnum"`
}

// ListItem is one row of searchFestival2 or areaBasedList2.
// EventStartDate and EventEndDate are only populated by searchFestival2.
type ListItem struct {
	ContentID     Text `json:"contentid"`
	ContentTypeID Text `json:"contenttypeid"`
	Title         Text `json:"title"`
	Addr1         Text `json:"addr1"`
	Addr2         Text `json:"addr2"`
	Zipcode       Text `json:"zipcode"`
	Tel           Text `json:"tel"`
	AreaCode      Text `json:"areacode"`
	SigunguCode   Text `json:"sigungucode"`
	LDongRegnCd   Text `json:"lDongRegnCd"`
	LDongSignguCd Text `json:"lDongSignguCd"`
	Cat1          Text `json:"cat1"`
	Cat2          Text `json:"cat2"`
	Cat3          Text `json:"cat3"`
	LclsSystm1    Text `json:"lclsSystm1"`
	LclsSystm2    Text `json:"lclsSystm2"`
	LclsSystm3    Text `json:"lclsSystm3"`
	FirstImage    Text `json:"firstimage"`
	FirstImage2   Text `json:"firstimage2"`
	CpyrhtDivCd   Text `json:"cpyrhtDivCd"`
	MapX          Text `json:"mapx"`
	MapY          Text `json:"mapy"`
	MLevel        Text `json:"mlevel"`
	CreatedTime   Text `json:"createdtime"`
	ModifiedTime  Text `json:"modifiedtime"`

	EventStartDate Text `json:"eventstartdate"`
	EventEndDate   Text `json:"eventenddate"`
}

// CommonItem is the detailCommon2 record of a content item.
type CommonItem struct {
	ContentID     Text `json:"contentid"`
	ContentTypeID Text `json:"contenttypeid"`
	Title         Text `json:"title"`
	CreatedTime   Text `json:"createdtime"`
	ModifiedTime  Text `json:"modifiedtime"`
	Tel           Text `json:"tel"`
	TelName       Text `json:"telname"`
	Homepage      Text `json:"homepage"`
	FirstImage    Text `json:"firstimage"`
	FirstImage2   Text `json:"firstimage2"`
	CpyrhtDivCd   Text `json:"cpyrhtDivCd"`
	AreaCode      Text `json:"areacode"`
	SigunguCode   Text `json:"sigungucode"`
	LDongRegnCd   Text `json:"lDongRegnCd"`
	LDongSignguCd Text `json:"lDongSignguCd"`
	Cat1          Text `json:"cat1"`
	Cat2          Text `json:"cat2"`
	Cat3          Text `json:"cat3"`
	Addr1         Text `json:"addr1"`
	Addr2         Text `json:"addr2"`
	Zipcode       Text `json:"zipcode"`
	MapX          Text `json:"mapx"`
	MapY          Text `json:"mapy"`
	MLevel        Text `json:"mlevel"`
	Overview      Text `json:"overview"`
}

// FestivalIntroItem is the detailIntro2 record for contentTypeId 15.
type FestivalIntroItem struct {
	ContentID       Text `json:"contentid"`
	AgeLimit        Text `json:"agelimit"`
	BookingPlace    Text `json:"bookingplace"`
	DiscountInfo    Text `json:"discountinfofestival"`
	EventEndDate    Text `json:"eventenddate"`
	EventHomepage   Text `json:"eventhomepage"`
	EventPlace      Text `json:"eventplace"`
	EventStartDate  Text `json:"eventstartdate"`
	FestivalGrade   Text `json:"festivalgrade"`
	PlaceInfo       Text `json:"placeinfo"`
	PlayTime        Text `json:"playtime"`
	Program         Text `json:"program"`
	SpendTime       Text `json:"spendtimefestival"`
	Sponsor1        Text `json:"sponsor1"`
	Sponsor1Tel     Text `json:"sponsor1tel"`
	Sponsor2        Text `json:"sponsor2"`
	Sponsor2Tel     Text `json:"sponsor2tel"`
	SubEvent        Text `json:"subevent"`
	UseTimeFestival Text `json:"usetimefestival"`
}

// RestaurantIntroItem is the detailIntro2 record for contentTypeId 39.
type RestaurantIntroItem struct {
	ContentID     Text `json:"contentid"`
	ChkCreditCard Text `json:"chkcreditcardfood"`
	DiscountInfo  Text `json:"discountinfofood"`
	FirstMenu     Text `json:"firstmenu"`
	InfoCenter    Text `json:"infocenterfood"`
	KidsFacility  Text `json:"kidsfacility"`
	OpenDate      Text `json:"opendatefood"`
	OpenTime      Text `json:"opentimefood"`
	Packing       Text `json:"packing"`
	Parking       Text `json:"parkingfood"`
	Reservation   Text `json:"reservationfood"`
	RestDate      Text `json:"restdatefood"`
	Scale         Text `json:"scalefood"`
	Seat          Text `json:"seat"`
	Smoking       Text `json:"smoking"`
	TreatMenu     Text `json:"treatmenu"`
	LicenseNo     Text `json:"lcnsno"`
}

// CourseIntroItem is the detailIntro2 record for contentTypeId 25.
type CourseIntroItem struct {
	ContentID  Text `json:"contentid"`
	Distance   Text `json:"distance"`
	InfoCenter Text `json:"infocentertourcourse"`
	Schedule   Text `json:"schedule"`
	TakeTime   Text `json:"taketime"`
	Theme      Text `json:"theme"`
}

// MenuInfoItem is a detailInfo2 row for a restaurant.
type MenuInfoItem struct {
	ContentID Text `json:"contentid"`
	SerialNum Text `json:"serialnum"`
	InfoName  Text `json:"infoname"`
	InfoText  Text `json:"infotext"`
	FldGubun  Text `json:"fldgubun"`
}

// CourseInfoItem is a detailInfo2 row for a travel course (one leg).
type CourseInfoItem struct {
	ContentID         Text `json:"contentid"`
	SubNum            Text `json:"subnum"`
	SubContentID      Text `json:"subcontentid"`
	SubName           Text `json:"subname"`
	SubDetailOverview Text `json:"subdetailoverview"`
	SubDetailImg      Text `json:"subdetailimg"`
	SubDetailAlt      Text `json:"subdetailalt"`
}

// ImageItem is a detailImage2 row.
type ImageItem struct {
	ContentID     Text `json:"contentid"`
	SerialNum     Text `json:"serialnum"`
	ImgName       Text `json:"imgname"`
	OriginImgURL  Text `json:"originimgurl"`
	SmallImageURL Text `json:"smallimageurl"`
	CpyrhtDivCd   Text `json:"cpyrhtDivCd"`
}
