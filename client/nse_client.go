package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/krishnateja08/FII-DII-Pulse/middleware"
	"github.com/krishnateja08/FII-DII-Pulse/model"
)

var (
	nseUrl       = "https://www.nseindia.com"
	nseUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36"
	dealsPath    = "/api/historicalOR/bulk-block-short-deals"
	dealsPage    = "/market-data/bulk-block-short-selling-deals"
)

// NseClient talks to the NSE deals API. Every data request must be preceded
// by WarmUp on the same client: the API rejects sessions without the
// cookies the landing pages set.
type NseClient struct {
	client *resty.Client
}

func NewNseClient() *NseClient {
	client := resty.New().
		SetBaseURL(nseUrl).
		SetTimeout(30*time.Second).
		SetHeader("User-Agent", nseUserAgent).
		SetRetryCount(2).
		SetRetryWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			// Warm-up pages legitimately return HTML; only the API
			// endpoint gets the bot-block heuristics.
			if !strings.Contains(r.Request.URL, dealsPath) {
				return false
			}
			body := strings.TrimSpace(string(r.Body()))
			return !r.IsSuccess() || body == "" || strings.HasPrefix(body, "<")
		})

	client.OnAfterResponse(middleware.DecompressMiddleware)

	return &NseClient{client: client}
}

// WarmUp seeds the anti-bot session cookies by visiting the homepage and
// the deals page, the same way a browser would arrive at the API.
func (c *NseClient) WarmUp(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Referer", "https://www.google.com/").
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.9").
		Get("/")
	if err != nil || !resp.IsSuccess() {
		return fmt.Errorf("warmup failed: %v (status: %d)", err, resp.StatusCode())
	}

	resp, err = c.setHeaders(c.client.R().SetContext(ctx), nseUrl+"/").Get(dealsPage)
	if err != nil || !resp.IsSuccess() {
		return fmt.Errorf("warmup deals page failed: %v (status: %d)", err, resp.StatusCode())
	}
	return nil
}

// FetchDeals requests one deal category for the given window. Dates are
// DD-MM-YYYY. The raw response is returned as-is; the service layer owns
// CSV/JSON detection and schema normalization.
func (c *NseClient) FetchDeals(ctx context.Context, category model.DealCategory, from, to string) (*resty.Response, error) {
	resp, err := c.setHeaders(c.client.R().SetContext(ctx), nseUrl+dealsPage).
		SetQueryParams(map[string]string{
			"optionType": string(category),
			"from":       from,
			"to":         to,
		}).
		Get(dealsPath)
	if err != nil {
		return nil, fmt.Errorf("NSE %s request failed: %w", category, err)
	}
	return resp, nil
}

func (c *NseClient) setHeaders(req *resty.Request, referer string) *resty.Request {
	headers := map[string]string{
		"Accept":           "application/json, text/plain, */*",
		"Accept-Encoding":  "gzip, deflate, br",
		"Accept-Language":  "en-US,en;q=0.9",
		"Referer":          referer,
		"X-Requested-With": "XMLHttpRequest",
		"sec-fetch-dest":   "empty",
		"sec-fetch-mode":   "cors",
		"sec-fetch-site":   "same-origin",
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}
