// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/surveydash/internal/survey"
)

// newTestBackend returns a server that answers every path with status and body.
func newTestBackend(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	c := NewClient("")
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	c := NewClient("http://example.test/api/")
	assert.Equal(t, "http://example.test/api", c.BaseURL())
	assert.Equal(t, "http://example.test/api/demographics", c.URL(survey.Demographics))
}

func TestNewClient_NoDefaultTimeout(t *testing.T) {
	c := NewClient("http://example.test", WithTimeout(0))
	hc, ok := c.httpClient.(*http.Client)
	require.True(t, ok)
	assert.Zero(t, hc.Timeout)
}

func TestWithTimeout(t *testing.T) {
	c := NewClient("http://example.test", WithTimeout(3*time.Second))
	hc, ok := c.httpClient.(*http.Client)
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, hc.Timeout)
}

func TestClient_Get_Success(t *testing.T) {
	var gotPath, gotMethod, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotReqID = r.Header.Get(RequestIDHeader)
		_, _ = w.Write([]byte(`{"status":"healthy","total_records":380}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/api")
	raw, err := c.Get(context.Background(), survey.Health)
	require.NoError(t, err)

	assert.Equal(t, "/api/health", gotPath)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.NotEmpty(t, gotReqID)
	assert.JSONEq(t, `{"status":"healthy","total_records":380}`, string(raw))
}

func TestClient_Get_NonSuccessStatus(t *testing.T) {
	srv := newTestBackend(t, http.StatusInternalServerError, `{"error":"boom"}`)

	_, err := NewClient(srv.URL).Get(context.Background(), survey.Clustering)
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Equal(t, "HTTP error! status: 500", err.Error())
	assert.Equal(t, "status", Kind(err))
}

func TestClient_Get_InvalidJSON(t *testing.T) {
	srv := newTestBackend(t, http.StatusOK, `<html>not json</html>`)

	_, err := NewClient(srv.URL).Get(context.Background(), survey.Demographics)
	require.Error(t, err)

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Contains(t, de.Snippet, "<html>")
	assert.Equal(t, "decode", Kind(err))
}

func TestClient_Get_TooLarge(t *testing.T) {
	body := `"` + strings.Repeat("a", maxResponseBytes) + `"`
	srv := newTestBackend(t, http.StatusOK, body)

	_, err := NewClient(srv.URL).Get(context.Background(), survey.Demographics)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrResponseTooLarge))
	assert.Equal(t, "decode", Kind(err))
	assert.True(t, strings.HasPrefix(err.Error(), "response too large: over 10485760 bytes from "), err.Error())
	assert.NotContains(t, err.Error(), "invalid JSON")
}

func TestClient_Get_AtSizeLimit(t *testing.T) {
	body := `"` + strings.Repeat("a", maxResponseBytes-2) + `"`
	srv := newTestBackend(t, http.StatusOK, body)

	raw, err := NewClient(srv.URL).Get(context.Background(), survey.Demographics)
	require.NoError(t, err)
	assert.Len(t, raw, maxResponseBytes)
}

func TestClient_Get_EmptyBody(t *testing.T) {
	srv := newTestBackend(t, http.StatusOK, "")

	_, err := NewClient(srv.URL).Get(context.Background(), survey.Health)
	require.Error(t, err)
	assert.Equal(t, "decode", Kind(err))
}

func TestClient_Get_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).Get(context.Background(), survey.Health)
	require.Error(t, err)

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "transport", Kind(err))
	assert.True(t, strings.HasPrefix(err.Error(), "request to "))
}

func TestClient_Get_CancelledContext(t *testing.T) {
	srv := newTestBackend(t, http.StatusOK, `{}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL).Get(ctx, survey.Health)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "transport", Kind(err))
}

// stubDoer returns a canned response without touching the network.
type stubDoer struct {
	resp *http.Response
	err  error
	reqs []*http.Request
}

func (s *stubDoer) Do(req *http.Request) (*http.Response, error) {
	s.reqs = append(s.reqs, req)
	return s.resp, s.err
}

func TestWithHTTPClient_UsesDoer(t *testing.T) {
	doer := &stubDoer{err: errors.New("offline")}
	c := NewClient("http://backend.invalid/api", WithHTTPClient(doer))

	_, err := c.Get(context.Background(), survey.TechnologyAnalysis)
	require.Error(t, err)
	require.Len(t, doer.reqs, 1)
	assert.Equal(t, "http://backend.invalid/api/technology-analysis", doer.reqs[0].URL.String())
	assert.Contains(t, err.Error(), "offline")
}

func TestKind_Unrecognized(t *testing.T) {
	assert.Equal(t, "", Kind(nil))
	assert.Equal(t, "", Kind(errors.New("other")))
}
