// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package sync

import (
	"context"
	"fmt"

	"github.com/tomtom215/tourcatalog/internal/catalog"
	"github.com/tomtom215/tourcatalog/internal/mapper"
	"github.com/tomtom215/tourcatalog/internal/models"
	"github.com/tomtom215/tourcatalog/internal/models/tourapi"
	"github.com/tomtom215/tourcatalog/internal/validation"
)

// ReferenceStore replaces a whole code table atomically.
type ReferenceStore[T any] interface {
	ReplaceAll(ctx context.Context, items []T) error
}

// referenceJob buffers the full listing and writes it with one ReplaceAll.
// The table is only touched when the listing was read completely.
type referenceJob[R, T any] struct {
	domain  models.Domain
	client  catalog.Client
	store   ReferenceStore[T]
	opts    Options
	toModel func([]R) ([]T, mapper.Warnings)
	key     func(T) string
}

// NewAreaCodeJob syncs the province table from areaCode2.
func NewAreaCodeJob(client catalog.Client, store ReferenceStore[models.AreaCode], opts Options) Job {
	return &referenceJob[tourapi.AreaCodeItem, models.AreaCode]{
		domain:  models.DomainAreaCode,
		client:  client,
		store:   store,
		opts:    opts.withDefaults(),
		toModel: mapper.AreaCodes,
		key:     func(c models.AreaCode) string { return c.Code },
	}
}

// NewLdongCodeJob syncs the legal-dong district table from ldongCode2.
func NewLdongCodeJob(client catalog.Client, store ReferenceStore[models.LdongCode], opts Options) Job {
	return &referenceJob[tourapi.LdongCodeItem, models.LdongCode]{
		domain:  models.DomainLdongCode,
		client:  client,
		store:   store,
		opts:    opts.withDefaults(),
		toModel: mapper.LdongCodes,
		key:     func(c models.LdongCode) string { return c.Code },
	}
}

func (j *referenceJob[R, T]) Domain() models.Domain {
	return j.domain
}

func (j *referenceJob[R, T]) Run(ctx context.Context, report StateFunc) *models.RunSummary {
	ctx, r := startRun(ctx, j.domain, report)
	r.enter(models.RunStateFetching)

	var rows []T
	err := paginate(ctx, r, j.client, j.opts, j.opts.listFilter(j.domain), func(items []R) error {
		mapped, warnings := j.toModel(items)
		r.warn(warnings)
		r.summary.Skipped += len(items) - len(mapped)

		for _, row := range mapped {
			if err := validation.ValidateStruct(row); err != nil {
				r.summary.Skipped++
				r.log.Warn().Err(err).Str("code", j.key(row)).Msg("Dropping invalid reference row")
				continue
			}
			rows = append(rows, row)
		}
		return nil
	})
	if err != nil {
		return r.finish(err)
	}
	if err := ctx.Err(); err != nil {
		return r.finish(err)
	}

	rows = dedupLast(rows, j.key)

	r.enter(models.RunStateUpserting)
	if err := j.store.ReplaceAll(ctx, rows); err != nil {
		return r.finish(fmt.Errorf("replace %s: %w", j.domain, err))
	}
	r.summary.Upserted = len(rows)
	r.summary.Inserted = len(rows)

	return r.finish(nil)
}
