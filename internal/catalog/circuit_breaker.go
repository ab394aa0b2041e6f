// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/tourcatalog/internal/logging"
	"github.com/tomtom215/tourcatalog/internal/metrics"
	"github.com/tomtom215/tourcatalog/internal/models"
)

// CircuitBreakerClient wraps a Client with a circuit breaker so a failing
// TourAPI is not hammered by every worker of every running job.
//
// Only transient failures count against the breaker. Format errors mean the
// upstream answered, and cancellations are the caller's doing. Calls rejected
// by an open breaker surface as ErrTransientNetwork so callers back off and
// retry like any other outage.
type CircuitBreakerClient struct {
	client Client
	cb     *gobreaker.CircuitBreaker[[]byte]
	name   string
}

// BreakerSettings tunes the circuit breaker. Zero values take the defaults
// used by NewCircuitBreakerClient.
type BreakerSettings struct {
	MinRequests  uint32
	FailureRatio float64
	Interval     time.Duration
	OpenTimeout  time.Duration
}

// NewCircuitBreakerClient wraps client with the default breaker configuration:
//   - Max 3 concurrent requests in half-open state
//   - 1 minute measurement window
//   - 1 minute timeout before attempting recovery
//   - Opens after 60% failure rate with minimum 10 requests
func NewCircuitBreakerClient(client Client) *CircuitBreakerClient {
	return NewCircuitBreakerClientWithSettings(client, BreakerSettings{})
}

// NewCircuitBreakerClientWithSettings wraps client with custom thresholds.
func NewCircuitBreakerClientWithSettings(client Client, s BreakerSettings) *CircuitBreakerClient {
	if s.MinRequests == 0 {
		s.MinRequests = 10
	}
	if s.FailureRatio == 0 {
		s.FailureRatio = 0.6
	}
	if s.Interval == 0 {
		s.Interval = time.Minute
	}
	if s.OpenTimeout == 0 {
		s.OpenTimeout = time.Minute
	}

	cbName := "tourapi"
	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbName).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    s.Interval,
		Timeout:     s.OpenTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= s.FailureRatio
			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		IsSuccessful: func(err error) bool {
			return err == nil || !errors.Is(err, ErrTransientNetwork)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{client: client, cb: cb, name: cbName}
}

// State returns the current breaker state as a string.
func (cbc *CircuitBreakerClient) State() string {
	return stateToString(cbc.cb.State())
}

// execute runs fn through the breaker and maps rejections to ErrTransientNetwork.
func (cbc *CircuitBreakerClient) execute(fn func() ([]byte, error)) ([]byte, error) {
	result, err := cbc.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, fmt.Errorf("%w: %w", ErrTransientNetwork, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
		counts := cbc.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)
	return result, nil
}

// FetchList requests a listing page with circuit breaker protection
func (cbc *CircuitBreakerClient) FetchList(ctx context.Context, domain models.Domain, filter ListFilter, page PageRequest) ([]byte, error) {
	return cbc.execute(func() ([]byte, error) {
		return cbc.client.FetchList(ctx, domain, filter, page)
	})
}

// FetchDetail requests detailCommon2 with circuit breaker protection
func (cbc *CircuitBreakerClient) FetchDetail(ctx context.Context, domain models.Domain, contentID string) ([]byte, error) {
	return cbc.execute(func() ([]byte, error) {
		return cbc.client.FetchDetail(ctx, domain, contentID)
	})
}

// FetchIntro requests detailIntro2 with circuit breaker protection
func (cbc *CircuitBreakerClient) FetchIntro(ctx context.Context, domain models.Domain, contentID string) ([]byte, error) {
	return cbc.execute(func() ([]byte, error) {
		return cbc.client.FetchIntro(ctx, domain, contentID)
	})
}

// FetchChildList requests detailInfo2 with circuit breaker protection
func (cbc *CircuitBreakerClient) FetchChildList(ctx context.Context, domain models.Domain, contentID string, page PageRequest) ([]byte, error) {
	return cbc.execute(func() ([]byte, error) {
		return cbc.client.FetchChildList(ctx, domain, contentID, page)
	})
}

// FetchImages requests detailImage2 with circuit breaker protection
func (cbc *CircuitBreakerClient) FetchImages(ctx context.Context, domain models.Domain, contentID string, page PageRequest) ([]byte, error) {
	return cbc.execute(func() ([]byte, error) {
		return cbc.client.FetchImages(ctx, domain, contentID, page)
	})
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
