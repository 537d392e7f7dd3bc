// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package fetcher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/surveydash/internal/api"
	"github.com/davetashner/surveydash/internal/chartdata"
	"github.com/davetashner/surveydash/internal/fallback"
	"github.com/davetashner/surveydash/internal/survey"
)

// newTestFetcher returns a fetcher pointing at srv plus the recorder that
// captures its notices.
func newTestFetcher(t *testing.T, srv *httptest.Server, opts ...Option) (*Fetcher, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	client := api.NewClient(srv.URL+"/api", api.WithHTTPClient(srv.Client()))
	opts = append([]Option{WithNotifier(rec)}, opts...)
	return New(client, opts...), rec
}

func serveJSON(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestFetch_DemographicsToGenderChart(t *testing.T) {
	srv := serveJSON(http.StatusOK, `{"distributions":{"gender":{"labels":["Male","Female"],"values":[150,230],"percentages":[39.47,60.53]}}}`)
	defer srv.Close()
	f, rec := newTestFetcher(t, srv)

	s := Fetch[survey.DemographicsData](context.Background(), f, survey.Demographics)
	require.NotNil(t, s.Data)
	assert.False(t, s.UsedFallback)
	assert.Empty(t, rec.Notices())

	points := chartdata.ToChartPoints(s.Data.Distributions["gender"])
	require.Len(t, points, 2)
	assert.Equal(t, "Male", points[0].Name)
	assert.InDelta(t, 100, chartdata.PercentageTotal(points), 0.01)
}

func TestFetch_Success(t *testing.T) {
	srv := serveJSON(http.StatusOK, `{"status":"healthy","total_records":12}`)
	defer srv.Close()
	f, rec := newTestFetcher(t, srv)

	s := Fetch[survey.HealthResponse](context.Background(), f, survey.Health)

	require.NotNil(t, s.Data)
	assert.Equal(t, "healthy", s.Data.Status)
	assert.Equal(t, 12, s.Data.TotalRecords)
	assert.False(t, s.Loading)
	assert.Empty(t, s.Error)
	assert.False(t, s.UsedFallback)
	assert.False(t, s.Failed())
	assert.Empty(t, rec.Notices())
}

func TestFetch_SingleRequestPerCall(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	f, _ := newTestFetcher(t, srv)

	_ = Fetch[survey.HealthResponse](context.Background(), f, survey.Health)
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetch_StatusErrorUsesFallback(t *testing.T) {
	srv := serveJSON(http.StatusInternalServerError, `{"error":"boom"}`)
	defer srv.Close()
	f, rec := newTestFetcher(t, srv)

	s := Fetch[json.RawMessage](context.Background(), f, survey.Demographics)

	require.NotNil(t, s.Data)
	assert.JSONEq(t, string(fallback.Lookup(survey.Demographics)), string(*s.Data))
	assert.Equal(t, "HTTP error! status: 500", s.Error)
	assert.True(t, s.UsedFallback)
	assert.False(t, s.Loading)

	notices := rec.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, survey.Demographics, notices[0].Resource)
	assert.Equal(t, "status", notices[0].Kind)
	assert.True(t, notices[0].UsedFallback)
	assert.Contains(t, notices[0].Text(), "Showing sample data instead")
}

func TestFetch_InvalidJSONUsesFallback(t *testing.T) {
	srv := serveJSON(http.StatusOK, `<html>not json</html>`)
	defer srv.Close()
	f, rec := newTestFetcher(t, srv)

	s := Fetch[survey.HealthResponse](context.Background(), f, survey.Health)

	require.NotNil(t, s.Data)
	assert.Equal(t, "healthy", s.Data.Status)
	assert.Equal(t, 380, s.Data.TotalRecords)
	assert.NotEmpty(t, s.Error)
	assert.True(t, s.UsedFallback)
	require.Len(t, rec.Notices(), 1)
	assert.Equal(t, "decode", rec.Notices()[0].Kind)
}

func TestFetch_ShapeMismatchUsesFallback(t *testing.T) {
	srv := serveJSON(http.StatusOK, `{"status": 42}`)
	defer srv.Close()
	f, rec := newTestFetcher(t, srv)

	s := Fetch[survey.HealthResponse](context.Background(), f, survey.Health)

	require.NotNil(t, s.Data)
	assert.Equal(t, "healthy", s.Data.Status)
	assert.True(t, s.UsedFallback)
	require.Len(t, rec.Notices(), 1)
	assert.Equal(t, "decode", rec.Notices()[0].Kind)
}

func TestFetch_TransportErrorUsesFallback(t *testing.T) {
	srv := serveJSON(http.StatusOK, `{}`)
	f, rec := newTestFetcher(t, srv)
	srv.Close()

	s := Fetch[survey.ClusteringData](context.Background(), f, survey.Clustering)

	require.NotNil(t, s.Data)
	k3 := s.Data.Result("k_3")
	require.NotNil(t, k3)
	assert.Len(t, k3.Clusters, 3)
	assert.True(t, s.UsedFallback)
	assert.NotEmpty(t, s.Error)
	require.Len(t, rec.Notices(), 1)
	assert.Equal(t, "transport", rec.Notices()[0].Kind)
}

func TestFetch_NoFallbackEntryYieldsEmptyData(t *testing.T) {
	srv := serveJSON(http.StatusServiceUnavailable, ``)
	defer srv.Close()
	f, _ := newTestFetcher(t, srv)

	s := Fetch[survey.CorrelationalAnalysisData](context.Background(), f, survey.CorrelationalAnalysis)

	require.NotNil(t, s.Data)
	assert.Nil(t, s.Data.ITSurveyCorrelation)
	assert.Nil(t, s.Data.PartnershipSurveyCorrelation)
	assert.True(t, s.UsedFallback)
	assert.Equal(t, "HTTP error! status: 503", s.Error)
}

func TestFetch_StrictModeLeavesDataNil(t *testing.T) {
	srv := serveJSON(http.StatusInternalServerError, ``)
	defer srv.Close()
	f, rec := newTestFetcher(t, srv, WithMode(ModeStrict))

	s := Fetch[survey.HealthResponse](context.Background(), f, survey.Health)

	assert.Nil(t, s.Data)
	assert.False(t, s.UsedFallback)
	assert.True(t, s.Failed())
	require.Len(t, rec.Notices(), 1)
	assert.False(t, rec.Notices()[0].UsedFallback)
	assert.Contains(t, rec.Notices()[0].Text(), "No sample data is shown")
}

func TestFetch_CustomFallback(t *testing.T) {
	srv := serveJSON(http.StatusBadGateway, ``)
	defer srv.Close()
	f, _ := newTestFetcher(t, srv, WithFallback(func(survey.Resource) json.RawMessage {
		return json.RawMessage(`{"status":"sample","total_records":1}`)
	}))

	s := Fetch[survey.HealthResponse](context.Background(), f, survey.Health)
	require.NotNil(t, s.Data)
	assert.Equal(t, "sample", s.Data.Status)
}

func TestFetch_DemographicsFallbackPercentages(t *testing.T) {
	srv := serveJSON(http.StatusInternalServerError, ``)
	defer srv.Close()
	f, _ := newTestFetcher(t, srv)

	s := Fetch[survey.DemographicsData](context.Background(), f, survey.Demographics)
	require.NotNil(t, s.Data)

	for name, d := range s.Data.Distributions {
		require.Len(t, d.Values, len(d.Labels), name)
		var sum float64
		for _, p := range d.Percentages {
			sum += p
		}
		assert.InDelta(t, 100, sum, 0.011, "percentages of %s", name)
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeDemo, m)

	m, err = ParseMode("strict")
	require.NoError(t, err)
	assert.Equal(t, ModeStrict, m)

	_, err = ParseMode("loud")
	assert.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	var mu sync.Mutex
	hits := map[string]int{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits[r.URL.Path]++
		mu.Unlock()
		if strings.HasSuffix(r.URL.Path, "/clustering") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"status":"healthy","total_records":5}`))
	}))
	defer srv.Close()
	f, rec := newTestFetcher(t, srv)

	states := LoadAll(context.Background(), f, []survey.Resource{
		survey.Health, survey.Clustering, survey.Health,
	})

	require.Len(t, states, 2)
	assert.False(t, states[survey.Health].Failed())
	assert.True(t, states[survey.Clustering].UsedFallback)
	assert.Equal(t, 1, hits["/api/health"])
	assert.Equal(t, 1, hits["/api/clustering"])
	assert.Len(t, rec.Notices(), 1)

	typed := As[survey.HealthResponse](states[survey.Health])
	require.NotNil(t, typed.Data)
	assert.Equal(t, 5, typed.Data.TotalRecords)
}

func TestMulti_SkipsNil(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	n := Multi(a, nil, b)
	n.Notify(Notice{Resource: survey.Health})
	assert.Len(t, a.Notices(), 1)
	assert.Len(t, b.Notices(), 1)
}

func TestObserve_AddsNotifier(t *testing.T) {
	srv := serveJSON(http.StatusInternalServerError, `{}`)
	defer srv.Close()
	f, base := newTestFetcher(t, srv)

	page := &Recorder{}
	observed := f.Observe(page)
	_ = Fetch[json.RawMessage](context.Background(), observed, survey.Health)

	require.Len(t, page.Notices(), 1)
	assert.Equal(t, "Failed to load health: HTTP error! status: 500. Showing sample data instead.", page.Notices()[0].Text())
	assert.Len(t, base.Notices(), 1)
	assert.Equal(t, f.Mode(), observed.Mode())

	_ = Fetch[json.RawMessage](context.Background(), f, survey.Health)
	assert.Len(t, page.Notices(), 1)
	assert.Len(t, base.Notices(), 2)
}

func TestWriterNotifier(t *testing.T) {
	var sb strings.Builder
	n := NewWriterNotifier(&sb)
	n.Notify(Notice{Resource: survey.Health, Err: "HTTP error! status: 500", UsedFallback: true})
	assert.Contains(t, sb.String(), "Failed to load health: HTTP error! status: 500. Showing sample data instead.")
}
