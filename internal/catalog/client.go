// Tourcatalog - Tourism Catalog Synchronization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourcatalog

package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/tourcatalog/internal/config"
	"github.com/tomtom215/tourcatalog/internal/logging"
	"github.com/tomtom215/tourcatalog/internal/metrics"
	"github.com/tomtom215/tourcatalog/internal/models"
)

// TourAPI operation names (KorService2).
const (
	opAreaCode       = "areaCode2"
	opLdongCode      = "ldongCode2"
	opSearchFestival = "searchFestival2"
	opAreaBasedList  = "areaBasedList2"
	opDetailCommon   = "detailCommon2"
	opDetailIntro    = "detailIntro2"
	opDetailInfo     = "detailInfo2"
	opDetailImage    = "detailImage2"
)

// maxBodySize bounds how much of a response body is read.
const maxBodySize = 8 << 20

// maxErrorBodySize limits the response body quoted in error messages.
const maxErrorBodySize = 512

// PageRequest is the generic pagination parameter shared by all listings.
type PageRequest struct {
	PageNo    int
	NumOfRows int
}

// ListFilter narrows a listing. Fields that do not apply to a domain are ignored.
type ListFilter struct {
	AreaCode       string
	SigunguCode    string
	LDongRegnCd    string
	EventStartDate string // searchFestival2 only, YYYYMMDD
	Arrange        string // A=title, C=modified, D=created
}

// Client is the TourAPI contract consumed by the sync jobs. Every method
// returns the raw response envelope. Child listings and image galleries are
// paged like the content listings.
type Client interface {
	FetchList(ctx context.Context, domain models.Domain, filter ListFilter, page PageRequest) ([]byte, error)
	FetchDetail(ctx context.Context, domain models.Domain, contentID string) ([]byte, error)
	FetchIntro(ctx context.Context, domain models.Domain, contentID string) ([]byte, error)
	FetchChildList(ctx context.Context, domain models.Domain, contentID string, page PageRequest) ([]byte, error)
	FetchImages(ctx context.Context, domain models.Domain, contentID string, page PageRequest) ([]byte, error)
}

// HTTPClient talks to TourAPI over HTTP with a shared token bucket limiter.
// It classifies failures as ErrTransientNetwork or ErrUpstreamFormat and does
// not retry on its own; retries belong to the caller.
type HTTPClient struct {
	baseURL    string
	serviceKey string
	mobileOS   string
	mobileApp  string
	timeout    time.Duration
	client     *http.Client
	limiter    *rate.Limiter
}

// NewHTTPClient creates a TourAPI client from configuration.
func NewHTTPClient(cfg *config.CatalogConfig) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		serviceKey: cfg.ServiceKey,
		mobileOS:   cfg.MobileOS,
		mobileApp:  cfg.MobileApp,
		timeout:    cfg.Timeout,
		client:     &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}
}

// FetchList requests one listing page for a domain.
func (c *HTTPClient) FetchList(ctx context.Context, domain models.Domain, filter ListFilter, page PageRequest) ([]byte, error) {
	params := url.Values{}
	setPage(params, page)

	var op string
	switch domain {
	case models.DomainAreaCode:
		op = opAreaCode
		setIfPresent(params, "areaCode", filter.AreaCode)
	case models.DomainLdongCode:
		op = opLdongCode
		params.Set("lDongListYn", "Y")
		setIfPresent(params, "lDongRegnCd", filter.LDongRegnCd)
	case models.DomainFestival:
		op = opSearchFestival
		params.Set("eventStartDate", filter.EventStartDate)
		setAreaFilter(params, filter)
	case models.DomainRestaurant, models.DomainTravelCourse:
		op = opAreaBasedList
		params.Set("contentTypeId", domain.ContentTypeID())
		setAreaFilter(params, filter)
	default:
		return nil, fmt.Errorf("list %s: unsupported domain", domain)
	}

	return c.get(ctx, op, params)
}

// FetchDetail requests detailCommon2 for one content item.
func (c *HTTPClient) FetchDetail(ctx context.Context, _ models.Domain, contentID string) ([]byte, error) {
	params := url.Values{}
	params.Set("contentId", contentID)
	return c.get(ctx, opDetailCommon, params)
}

// FetchIntro requests detailIntro2 for one content item.
func (c *HTTPClient) FetchIntro(ctx context.Context, domain models.Domain, contentID string) ([]byte, error) {
	params, err := contentParams(domain, contentID)
	if err != nil {
		return nil, err
	}
	return c.get(ctx, opDetailIntro, params)
}

// FetchChildList requests one page of detailInfo2 (menus, course legs) for
// one content item.
func (c *HTTPClient) FetchChildList(ctx context.Context, domain models.Domain, contentID string, page PageRequest) ([]byte, error) {
	params, err := contentParams(domain, contentID)
	if err != nil {
		return nil, err
	}
	setPage(params, page)
	return c.get(ctx, opDetailInfo, params)
}

// FetchImages requests one page of the detailImage2 gallery for one content item.
func (c *HTTPClient) FetchImages(ctx context.Context, _ models.Domain, contentID string, page PageRequest) ([]byte, error) {
	params := url.Values{}
	params.Set("contentId", contentID)
	params.Set("imageYN", "Y")
	setPage(params, page)
	return c.get(ctx, opDetailImage, params)
}

func contentParams(domain models.Domain, contentID string) (url.Values, error) {
	typeID := domain.ContentTypeID()
	if typeID == "" {
		return nil, fmt.Errorf("%s has no content type", domain)
	}
	params := url.Values{}
	params.Set("contentId", contentID)
	params.Set("contentTypeId", typeID)
	return params, nil
}

func setPage(params url.Values, page PageRequest) {
	params.Set("pageNo", strconv.Itoa(page.PageNo))
	params.Set("numOfRows", strconv.Itoa(page.NumOfRows))
}

func setAreaFilter(params url.Values, filter ListFilter) {
	setIfPresent(params, "areaCode", filter.AreaCode)
	setIfPresent(params, "sigunguCode", filter.SigunguCode)
	setIfPresent(params, "lDongRegnCd", filter.LDongRegnCd)
	setIfPresent(params, "arrange", filter.Arrange)
}

func setIfPresent(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

// buildURL adds the common parameters. data.go.kr issues service keys in both
// raw and URL-encoded form; an encoded key is appended verbatim so it is not
// encoded twice.
func (c *HTTPClient) buildURL(op string, params url.Values) string {
	params.Set("MobileOS", c.mobileOS)
	params.Set("MobileApp", c.mobileApp)
	params.Set("_type", "json")

	key := c.serviceKey
	if !strings.Contains(key, "%") {
		key = url.QueryEscape(key)
	}
	return fmt.Sprintf("%s/%s?serviceKey=%s&%s", c.baseURL, op, key, params.Encode())
}

// get performs one rate-limited GET and returns the body of a JSON response.
func (c *HTTPClient) get(ctx context.Context, op string, params url.Values) (body []byte, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordCatalogRequest(op, metrics.OutcomeForError(err, ErrTransientNetwork, ErrUpstreamFormat), time.Since(start))
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s: rate limiter: %v", ErrTransientNetwork, op, err)
	}

	reqCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	reqURL := c.buildURL(op, params)
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	logging.Ctx(ctx).Debug().Str("operation", op).Str("url", logging.RedactURL(reqURL)).Msg("TourAPI request")

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// url.Error quotes the request URL, which carries the service key.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrTransientNetwork, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return nil, fmt.Errorf("%w: %s: HTTP %d: %s", ErrTransientNetwork, op, resp.StatusCode, readBodyForError(resp.Body))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: HTTP %d: %s", ErrUpstreamFormat, op, resp.StatusCode, readBodyForError(resp.Body))
	}

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s: reading body: %v", ErrTransientNetwork, op, err)
	}

	// The gateway answers key and quota problems with an XML OpenAPI_ServiceResponse
	// even when _type=json is requested.
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: %s: non-JSON response: %s", ErrUpstreamFormat, op, truncate(trimmed))
	}

	return body, nil
}

// readBodyForError reads a bounded prefix of a response body for diagnostics.
func readBodyForError(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return "(failed to read response body)"
	}
	return truncate(bytes.TrimSpace(b))
}

func truncate(b []byte) string {
	if len(b) > maxErrorBodySize {
		return string(b[:maxErrorBodySize]) + "... (truncated)"
	}
	return string(b)
}

// IsCanceled reports whether err stems from context cancellation or deadline.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
