// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/tourcatalog/internal/catalog"
	"github.com/tomtom215/tourcatalog/internal/logging"
	"github.com/tomtom215/tourcatalog/internal/metrics"
	"github.com/tomtom215/tourcatalog/internal/models"
)

// retryWithBackoff runs fn until it succeeds, fails with a non-transient
// error, or uses up opts.RetryAttempts. The delay doubles after each failed
// attempt. The context is used for cancellation during backoff waits.
func retryWithBackoff(ctx context.Context, opts Options, domain models.Domain, op string, fn func() error) error {
	var err error
	delay := opts.RetryDelay

	for attempt := 0; attempt < opts.RetryAttempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err = fn()
		if err == nil || !catalog.IsRetryable(err) {
			return err
		}

		if attempt < opts.RetryAttempts-1 {
			metrics.CatalogRetries.WithLabelValues(string(domain)).Inc()
			logging.Ctx(ctx).Warn().
				Err(err).
				Str("operation", op).
				Int("attempt", attempt+1).
				Int("max_attempts", opts.RetryAttempts).
				Dur("delay", delay).
				Msg("Retry attempt")

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			delay *= 2
		}
	}

	if opts.RetryAttempts > 1 {
		return fmt.Errorf("max retry attempts reached: %w", err)
	}
	return err
}

// fetchOne fetches a detail response and returns its single item. A response
// without an item is an upstream format error.
func fetchOne[T any](ctx context.Context, opts Options, domain models.Domain, op string, fetch func(context.Context) ([]byte, error)) (*T, error) {
	var item *T
	err := retryWithBackoff(ctx, opts, domain, op, func() error {
		raw, err := fetch(ctx)
		if err != nil {
			return err
		}
		item, err = catalog.FirstItem[T](raw)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if item == nil {
		return nil, fmt.Errorf("%s: %w: response has no item", op, catalog.ErrUpstreamFormat)
	}
	return item, nil
}

// fetchAll pages through a child listing from page 1. An empty listing is
// not an error. It stops after a short page, once totalCount is covered, or
// at opts.MaxPages.
func fetchAll[T any](ctx context.Context, opts Options, domain models.Domain, op string, fetch func(context.Context, catalog.PageRequest) ([]byte, error)) ([]T, error) {
	var items []T
	for pageNo := 1; pageNo <= opts.MaxPages; pageNo++ {
		request := catalog.PageRequest{PageNo: pageNo, NumOfRows: opts.PageSize}
		var page catalog.Page[T]
		err := retryWithBackoff(ctx, opts, domain, op, func() error {
			raw, err := fetch(ctx, request)
			if err != nil {
				return err
			}
			page, err = catalog.ExtractItems[T](raw)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		items = append(items, page.Items...)
		if len(page.Items) < opts.PageSize {
			return items, nil
		}
		if page.TotalCount > 0 && len(items) >= page.TotalCount {
			return items, nil
		}
	}

	logging.Ctx(ctx).Warn().Str("operation", op).Int("max_pages", opts.MaxPages).Msg("Child listing truncated at page limit")
	return items, nil
}
