// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package api

import (
	"net/http"
	"strconv"

	"github.com/tomtom215/tourcatalog/internal/validation"
)

const defaultRunsLimit = 20

// RunsRequest holds the validated query parameters of GET /sync/runs.
type RunsRequest struct {
	Domain string `json:"domain" validate:"omitempty,oneof=area_code ldong_code festival restaurant travel_course"`
	Limit  int    `json:"limit" validate:"min=1,max=500"`
}

// parseRunsRequest reads and validates the run log query. A non-numeric
// limit is reported like any other validation failure.
func parseRunsRequest(r *http.Request) (*RunsRequest, *validation.APIError) {
	q := r.URL.Query()
	req := &RunsRequest{
		Domain: q.Get("domain"),
		Limit:  defaultRunsLimit,
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &validation.APIError{
				Code:    "VALIDATION_ERROR",
				Message: "limit must be an integer",
				Details: map[string]interface{}{"field": "limit", "value": raw},
			}
		}
		req.Limit = limit
	}

	if err := validation.ValidateStruct(req); err != nil {
		if ve, ok := validation.AsValidationError(err); ok {
			return nil, ve.ToAPIError()
		}
		return nil, &validation.APIError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}
	return req, nil
}
