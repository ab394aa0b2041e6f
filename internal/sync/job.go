// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/tourcatalog/internal/catalog"
	"github.com/tomtom215/tourcatalog/internal/logging"
	"github.com/tomtom215/tourcatalog/internal/mapper"
	"github.com/tomtom215/tourcatalog/internal/models"
)

// StateFunc is told about every lifecycle state a run enters.
type StateFunc func(models.RunState)

// Job synchronizes one domain. Run never returns nil; failures end up in
// the summary as an aborted status.
type Job interface {
	Domain() models.Domain
	Run(ctx context.Context, report StateFunc) *models.RunSummary
}

// run carries the bookkeeping shared by both engines.
type run struct {
	summary *models.RunSummary
	report  StateFunc
	log     zerolog.Logger
}

func startRun(ctx context.Context, domain models.Domain, report StateFunc) (context.Context, *run) {
	if report == nil {
		report = func(models.RunState) {}
	}

	summary := &models.RunSummary{
		RunID:       uuid.NewString(),
		Domain:      domain,
		FailedItems: []string{},
		StartedAt:   time.Now().UTC(),
	}
	ctx = logging.ContextWithRunID(ctx, summary.RunID)
	ctx = logging.ContextWithLogger(ctx, logging.WithComponent("sync").With().Str("domain", string(domain)).Logger())

	r := &run{
		summary: summary,
		report:  report,
		log:     *logging.Ctx(ctx),
	}
	r.log.Info().Msg("Sync run started")
	return ctx, r
}

func (r *run) enter(state models.RunState) {
	r.report(state)
}

// warn counts mapping warnings and logs them at debug level.
func (r *run) warn(warnings mapper.Warnings) {
	r.summary.Warnings += len(warnings)
	for _, w := range warnings {
		r.log.Debug().
			Str("content_id", w.ContentID).
			Str("field", w.Field).
			Str("value", w.Value).
			Str("reason", w.Reason).
			Msg("Mapping warning")
	}
}

// finish stamps the summary. A non-nil err aborts the run.
func (r *run) finish(err error) *models.RunSummary {
	s := r.summary
	s.FinishedAt = time.Now().UTC()

	if err != nil {
		r.enter(models.RunStateAborted)
		s.Status = models.RunAborted
		s.Error = err.Error()
		r.log.Error().
			Err(err).
			Int("fetched", s.Fetched).
			Int("upserted", s.Upserted).
			Int("pages", s.Pages).
			Msg("Sync run aborted")
		return s
	}

	r.enter(models.RunStateSummarizing)
	s.Status = models.RunCompleted
	r.log.Info().
		Int("fetched", s.Fetched).
		Int("upserted", s.Upserted).
		Int("inserted", s.Inserted).
		Int("updated", s.Updated).
		Int("skipped_detail", s.SkippedDetail).
		Int("skipped", s.Skipped).
		Int("failed", len(s.FailedItems)).
		Int("warnings", s.Warnings).
		Int("pages", s.Pages).
		Dur("duration", s.Duration()).
		Msg("Sync run completed")
	r.enter(models.RunStateDone)
	return s
}

// paginate walks the listing from page 1 and hands each non-empty page to
// visit. It stops after an empty or short page, once totalCount is covered,
// or at opts.MaxPages. A failed page fetch ends the walk with an error.
func paginate[T any](ctx context.Context, r *run, client catalog.Client, opts Options, filter catalog.ListFilter, visit func(items []T) error) error {
	domain := r.summary.Domain

	for pageNo := 1; pageNo <= opts.MaxPages; pageNo++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		request := catalog.PageRequest{PageNo: pageNo, NumOfRows: opts.PageSize}
		var page catalog.Page[T]
		err := retryWithBackoff(ctx, opts, domain, "list", func() error {
			raw, err := client.FetchList(ctx, domain, filter, request)
			if err != nil {
				return err
			}
			page, err = catalog.ExtractItems[T](raw)
			return err
		})
		if err != nil {
			return fmt.Errorf("listing page %d: %w", pageNo, err)
		}

		r.summary.Pages++
		r.summary.Fetched += len(page.Items)
		r.log.Debug().
			Int("page", pageNo).
			Int("items", len(page.Items)).
			Int("total_count", page.TotalCount).
			Msg("Fetched listing page")

		if len(page.Items) == 0 {
			return nil
		}
		if err := visit(page.Items); err != nil {
			return err
		}
		if len(page.Items) < opts.PageSize {
			return nil
		}
		if page.TotalCount > 0 && pageNo*opts.PageSize >= page.TotalCount {
			return nil
		}
	}

	r.log.Warn().Int("max_pages", opts.MaxPages).Msg("Listing truncated at page limit")
	return nil
}

// dedupLast keeps one item per key. The survivor is the last occurrence and
// sits at the position of the first.
func dedupLast[T any](items []T, key func(T) string) []T {
	index := make(map[string]int, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if i, ok := index[k]; ok {
			out[i] = item
			continue
		}
		index[k] = len(out)
		out = append(out, item)
	}
	return out
}
