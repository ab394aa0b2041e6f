// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package sync

import (
	"context"
	"errors"
	"sync"

	"github.com/tomtom215/tourcatalog/internal/catalog"
	"github.com/tomtom215/tourcatalog/internal/mapper"
	"github.com/tomtom215/tourcatalog/internal/models"
	"github.com/tomtom215/tourcatalog/internal/models/tourapi"
	"github.com/tomtom215/tourcatalog/internal/validation"
)

// AggregateStore reads and atomically upserts one aggregate by content ID.
type AggregateStore[T any] interface {
	Find(ctx context.Context, contentID string) (*T, error)
	Upsert(ctx context.Context, aggregate *T) error
}

// assembler fetches the detail records of one listing row and maps them
// into an aggregate. Sub-fetch failures are returned alongside a partial
// aggregate, never instead of it.
type assembler[T any] func(ctx context.Context, list tourapi.ListItem) (*T, mapper.Warnings, []error)

// relationalJob upserts every listed item individually. Items of a page are
// enriched concurrently and written in listing order, so a content ID listed
// twice ends up with its later version.
type relationalJob[T any] struct {
	domain   models.Domain
	client   catalog.Client
	store    AggregateStore[T]
	opts     Options
	assemble assembler[T]
}

// enriched is the outcome of assembling one listing row.
type enriched[T any] struct {
	contentID  string
	aggregate  *T
	warnings   mapper.Warnings
	detailErrs []error
}

func (j *relationalJob[T]) Domain() models.Domain {
	return j.domain
}

func (j *relationalJob[T]) Run(ctx context.Context, report StateFunc) *models.RunSummary {
	ctx, r := startRun(ctx, j.domain, report)
	r.enter(models.RunStateFetching)

	err := paginate(ctx, r, j.client, j.opts, j.opts.listFilter(j.domain), func(items []tourapi.ListItem) error {
		r.enter(models.RunStateEnriching)
		results := j.enrichPage(ctx, r, items)

		r.enter(models.RunStateUpserting)
		for i := range results {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := j.apply(ctx, r, &results[i]); err != nil {
				return err
			}
		}

		r.enter(models.RunStateFetching)
		return nil
	})

	return r.finish(err)
}

// enrichPage assembles the rows of one page with a bounded worker pool.
// results[i] belongs to items[i]; rows without a content ID are left empty.
func (j *relationalJob[T]) enrichPage(ctx context.Context, r *run, items []tourapi.ListItem) []enriched[T] {
	results := make([]enriched[T], len(items))
	work := make(chan int)

	var wg sync.WaitGroup
	workers := min(j.opts.Workers, len(items))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				if ctx.Err() != nil {
					continue
				}
				aggregate, warnings, errs := j.assemble(ctx, items[i])
				results[i].aggregate = aggregate
				results[i].warnings = warnings
				results[i].detailErrs = errs
			}
		}()
	}

	for i, item := range items {
		id := mapper.ContentID(item)
		results[i].contentID = id
		if id == "" {
			r.summary.Skipped++
			r.log.Warn().Str("title", item.Title.String()).Msg("Skipping listing row without content ID")
			continue
		}
		work <- i
	}
	close(work)
	wg.Wait()

	return results
}

// apply validates and stores one enriched row. Item failures are recorded in
// the summary and never end the run; only cancellation is returned.
func (j *relationalJob[T]) apply(ctx context.Context, r *run, res *enriched[T]) error {
	if res.contentID == "" || res.aggregate == nil {
		return nil
	}
	log := r.log.With().Str("content_id", res.contentID).Logger()
	s := r.summary

	if err := errors.Join(res.detailErrs...); catalog.IsCanceled(err) {
		return err
	}

	r.warn(res.warnings)
	if len(res.detailErrs) > 0 {
		s.SkippedDetail++
		s.AddFailed(res.contentID)
		log.Warn().Err(errors.Join(res.detailErrs...)).Msg("Detail enrichment incomplete, storing partial aggregate")
	}

	if err := validation.ValidateStruct(res.aggregate); err != nil {
		s.Skipped++
		s.AddFailed(res.contentID)
		log.Warn().Err(err).Msg("Dropping invalid aggregate")
		return nil
	}

	existing, err := j.store.Find(ctx, res.contentID)
	if err != nil {
		if catalog.IsCanceled(err) {
			return err
		}
		s.AddFailed(res.contentID)
		log.Error().Err(err).Msg("Failed to look up stored aggregate")
		return nil
	}

	if err := j.store.Upsert(ctx, res.aggregate); err != nil {
		if catalog.IsCanceled(err) {
			return err
		}
		s.AddFailed(res.contentID)
		log.Error().Err(err).Msg("Failed to upsert aggregate")
		return nil
	}

	s.Upserted++
	if existing == nil {
		s.Inserted++
	} else {
		s.Updated++
	}
	return nil
}

// detailFetcher binds the client calls of one domain for the assemblers.
type detailFetcher struct {
	client catalog.Client
	domain models.Domain
	opts   Options
}

func (f detailFetcher) common(ctx context.Context, id string) (*tourapi.CommonItem, error) {
	return fetchOne[tourapi.CommonItem](ctx, f.opts, f.domain, "detailCommon2", func(ctx context.Context) ([]byte, error) {
		return f.client.FetchDetail(ctx, f.domain, id)
	})
}

func intro[I any](ctx context.Context, f detailFetcher, id string) (*I, error) {
	return fetchOne[I](ctx, f.opts, f.domain, "detailIntro2", func(ctx context.Context) ([]byte, error) {
		return f.client.FetchIntro(ctx, f.domain, id)
	})
}

func childList[C any](ctx context.Context, f detailFetcher, id string) ([]C, error) {
	return fetchAll[C](ctx, f.opts, f.domain, "detailInfo2", func(ctx context.Context, page catalog.PageRequest) ([]byte, error) {
		return f.client.FetchChildList(ctx, f.domain, id, page)
	})
}

func (f detailFetcher) images(ctx context.Context, id string) ([]tourapi.ImageItem, error) {
	return fetchAll[tourapi.ImageItem](ctx, f.opts, f.domain, "detailImage2", func(ctx context.Context, page catalog.PageRequest) ([]byte, error) {
		return f.client.FetchImages(ctx, f.domain, id, page)
	})
}

// collect appends err to errs when it is not nil.
func collect(errs []error, err error) []error {
	if err != nil {
		return append(errs, err)
	}
	return errs
}

// NewFestivalJob syncs festivals from searchFestival2 with detail, intro and
// image enrichment.
func NewFestivalJob(client catalog.Client, store AggregateStore[models.Festival], opts Options) Job {
	opts = opts.withDefaults()
	f := detailFetcher{client: client, domain: models.DomainFestival, opts: opts}

	return &relationalJob[models.Festival]{
		domain: models.DomainFestival,
		client: client,
		store:  store,
		opts:   opts,
		assemble: func(ctx context.Context, list tourapi.ListItem) (*models.Festival, mapper.Warnings, []error) {
			id := mapper.ContentID(list)
			var errs []error

			common, err := f.common(ctx, id)
			errs = collect(errs, err)
			in, err := intro[tourapi.FestivalIntroItem](ctx, f, id)
			errs = collect(errs, err)
			images, err := f.images(ctx, id)
			errs = collect(errs, err)

			festival, warnings := mapper.Festival(list, common, in, images)
			return festival, warnings, errs
		},
	}
}

// NewRestaurantJob syncs restaurants (contentTypeId 39) with their menus.
func NewRestaurantJob(client catalog.Client, store AggregateStore[models.Restaurant], opts Options) Job {
	opts = opts.withDefaults()
	f := detailFetcher{client: client, domain: models.DomainRestaurant, opts: opts}

	return &relationalJob[models.Restaurant]{
		domain: models.DomainRestaurant,
		client: client,
		store:  store,
		opts:   opts,
		assemble: func(ctx context.Context, list tourapi.ListItem) (*models.Restaurant, mapper.Warnings, []error) {
			id := mapper.ContentID(list)
			var errs []error

			common, err := f.common(ctx, id)
			errs = collect(errs, err)
			in, err := intro[tourapi.RestaurantIntroItem](ctx, f, id)
			errs = collect(errs, err)
			menus, err := childList[tourapi.MenuInfoItem](ctx, f, id)
			errs = collect(errs, err)

			restaurant, warnings := mapper.Restaurant(list, common, in, menus)
			return restaurant, warnings, errs
		},
	}
}

// NewTravelCourseJob syncs travel courses (contentTypeId 25) with their legs.
func NewTravelCourseJob(client catalog.Client, store AggregateStore[models.TravelCourse], opts Options) Job {
	opts = opts.withDefaults()
	f := detailFetcher{client: client, domain: models.DomainTravelCourse, opts: opts}

	return &relationalJob[models.TravelCourse]{
		domain: models.DomainTravelCourse,
		client: client,
		store:  store,
		opts:   opts,
		assemble: func(ctx context.Context, list tourapi.ListItem) (*models.TravelCourse, mapper.Warnings, []error) {
			id := mapper.ContentID(list)
			var errs []error

			common, err := f.common(ctx, id)
			errs = collect(errs, err)
			in, err := intro[tourapi.CourseIntroItem](ctx, f, id)
			errs = collect(errs, err)
			legs, err := childList[tourapi.CourseInfoItem](ctx, f, id)
			errs = collect(errs, err)

			course, warnings := mapper.TravelCourse(list, common, in, legs)
			return course, warnings, errs
		},
	}
}
