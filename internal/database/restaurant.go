// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package database

import (
	"context"
	"database/sql"

	"github.com/tomtom215/tourcatalog/internal/models"
)

var restaurantTable = aggregateTable{
	table: "restaurants",
	extraColumns: []string{
		"first_menu", "treat_menu", "open_time", "rest_date", "info_center", "parking", "packing",
		"reservation", "smoking", "seat", "kids_facility", "credit_card", "discount_info", "scale",
		"open_date",
	},
	childTable:   "restaurant_menus",
	childColumns: []string{"serial_num", "name", "price"},
}

// RestaurantRepo stores restaurant aggregates with their menus.
type RestaurantRepo struct {
	db *DB
}

// Upsert inserts or replaces a restaurant and its whole menu atomically.
func (r *RestaurantRepo) Upsert(ctx context.Context, rest *models.Restaurant) error {
	base := contentRecord{
		ContentID: rest.ContentID,
		Basic:     rest.Basic,
		Region:    rest.Region,
		Homepage:  rest.Detail.Homepage,
		Overview:  rest.Detail.Overview,
	}
	d := &rest.Detail
	parent := append(base.args(),
		d.FirstMenu, d.TreatMenu, d.OpenTime, d.RestDate, d.InfoCenter, d.Parking, d.Packing,
		d.Reservation, d.Smoking, d.Seat, d.KidsFacility, d.CreditCard, d.DiscountInfo, d.Scale,
		d.OpenDate,
	)

	children := make([][]any, len(rest.Menus))
	for i, m := range rest.Menus {
		children[i] = []any{m.SerialNum, m.Name, m.Price}
	}

	return restaurantTable.upsert(ctx, r.db, rest.ContentID, parent, children)
}

// Find returns the restaurant with its menus, or nil when it does not exist.
func (r *RestaurantRepo) Find(ctx context.Context, contentID string) (*models.Restaurant, error) {
	text, extra := nullStrings(15)

	menus := make([]models.Menu, 0)
	rec, found, err := restaurantTable.find(ctx, r.db, contentID, extra, func(s rowScanner) error {
		var serial, price sql.NullString
		var m models.Menu
		if err := s.Scan(&serial, &m.Name, &price); err != nil {
			return err
		}
		m.SerialNum = serial.String
		m.Price = price.String
		m.Position = len(menus)
		menus = append(menus, m)
		return nil
	})
	if err != nil || !found {
		return nil, err
	}

	return &models.Restaurant{
		ContentID: rec.ContentID,
		Basic:     rec.Basic,
		Region:    rec.Region,
		Detail: models.RestaurantDetail{
			Homepage:     rec.Homepage,
			Overview:     rec.Overview,
			FirstMenu:    text[0].String,
			TreatMenu:    text[1].String,
			OpenTime:     text[2].String,
			RestDate:     text[3].String,
			InfoCenter:   text[4].String,
			Parking:      text[5].String,
			Packing:      text[6].String,
			Reservation:  text[7].String,
			Smoking:      text[8].String,
			Seat:         text[9].String,
			KidsFacility: text[10].String,
			CreditCard:   text[11].String,
			DiscountInfo: text[12].String,
			Scale:        text[13].String,
			OpenDate:     text[14].String,
		},
		Menus: menus,
	}, nil
}

// Count returns the number of stored restaurants.
func (r *RestaurantRepo) Count(ctx context.Context) (int64, error) {
	return r.db.countRows(ctx, restaurantTable.table)
}

// CountMenus returns the number of stored menu rows.
func (r *RestaurantRepo) CountMenus(ctx context.Context) (int64, error) {
	return r.db.countRows(ctx, restaurantTable.childTable)
}
