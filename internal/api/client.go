// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

// Package api is the HTTP client for the survey analytics backend.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/davetashner/surveydash/internal/survey"
)

const (
	// DefaultBaseURL is used when no base URL is configured.
	DefaultBaseURL = "http://localhost:5001/api"

	maxResponseBytes = 10 * 1024 * 1024 // 10 MiB
	maxSnippetBytes  = 256
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

// Doer executes HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Compile-time check that *http.Client implements Doer.
var _ Doer = (*http.Client)(nil)

// Client fetches raw JSON documents from the backend.
type Client struct {
	baseURL    string
	httpClient Doer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport used for requests.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.httpClient = d
		}
	}
}

// WithTimeout bounds each request on the default transport. Zero keeps the
// transport default of no client deadline. It has no effect when
// WithHTTPClient is also given.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if hc, ok := c.httpClient.(*http.Client); ok && d > 0 {
			hc.Timeout = d
		}
	}
}

// NewClient returns a Client rooted at baseURL. An empty baseURL falls back
// to DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	c := &Client{
		baseURL:    base,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL returns the absolute URL of a resource.
func (c *Client) URL(r survey.Resource) string {
	return c.baseURL + r.Path()
}

// Get issues one GET for the resource and returns the response body once it
// is known to be valid JSON. Failures are *TransportError, *StatusError or
// *DecodeError.
func (c *Client) Get(ctx context.Context, r survey.Resource) (json.RawMessage, error) {
	url := c.URL(r)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{URL: url, Err: fmt.Errorf("creating request: %w", err)}
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("api: request failed", "resource", r, "request_id", reqID, "error", err)
		return nil, &TransportError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	slog.Debug("api: response", "resource", r, "request_id", reqID,
		"status", resp.StatusCode, "duration", time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, &TransportError{URL: url, Err: fmt.Errorf("reading body: %w", err)}
	}
	if len(body) > maxResponseBytes {
		return nil, &DecodeError{URL: url, Err: fmt.Errorf("%w: over %d bytes", ErrResponseTooLarge, maxResponseBytes)}
	}

	if !json.Valid(body) {
		var probe any
		decodeErr := json.Unmarshal(body, &probe)
		if decodeErr == nil {
			decodeErr = fmt.Errorf("malformed JSON")
		}
		return nil, &DecodeError{URL: url, Snippet: snippet(body), Err: decodeErr}
	}

	return json.RawMessage(body), nil
}

// snippet returns a short prefix of body for error messages.
func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxSnippetBytes {
		s = s[:maxSnippetBytes]
	}
	return s
}
