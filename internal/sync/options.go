// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package sync

import (
	"time"

	"github.com/tomtom215/tourcatalog/internal/catalog"
	"github.com/tomtom215/tourcatalog/internal/config"
	"github.com/tomtom215/tourcatalog/internal/models"
)

// kst is the upstream's time zone; festival search dates are KST calendar days.
var kst = time.FixedZone("KST", 9*60*60)

// Options tune one job. Zero values fall back to the defaults below.
type Options struct {
	PageSize      int
	MaxPages      int
	RetryAttempts int
	RetryDelay    time.Duration
	Workers       int

	AreaCode          string
	LDongRegnCd       string
	FestivalStartDate string

	// Now is the clock used to derive the default festival start date.
	Now func() time.Time
}

// OptionsFromConfig builds job options from the sync configuration.
func OptionsFromConfig(cfg *config.SyncConfig) Options {
	return Options{
		PageSize:          cfg.PageSize,
		MaxPages:          cfg.MaxPages,
		RetryAttempts:     cfg.RetryAttempts,
		RetryDelay:        cfg.RetryDelay,
		Workers:           cfg.Workers,
		AreaCode:          cfg.AreaCode,
		LDongRegnCd:       cfg.LDongRegnCd,
		FestivalStartDate: cfg.FestivalStartDate,
	}
}

func (o Options) withDefaults() Options {
	if o.PageSize <= 0 {
		o.PageSize = 100
	}
	if o.MaxPages <= 0 {
		o.MaxPages = 1000
	}
	if o.RetryAttempts <= 0 {
		o.RetryAttempts = 1
	}
	if o.RetryDelay < 0 {
		o.RetryDelay = 0
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// listFilter returns the listing filter for a domain. Reference domains are
// listed unfiltered: areaCode2 without areaCode yields the provinces.
func (o Options) listFilter(domain models.Domain) catalog.ListFilter {
	if domain.IsReference() {
		return catalog.ListFilter{}
	}

	filter := catalog.ListFilter{
		AreaCode:    o.AreaCode,
		LDongRegnCd: o.LDongRegnCd,
		Arrange:     "D",
	}
	if domain == models.DomainFestival {
		filter.EventStartDate = o.FestivalStartDate
		if filter.EventStartDate == "" {
			filter.EventStartDate = o.Now().In(kst).Format("2006") + "0101"
		}
	}
	return filter
}
