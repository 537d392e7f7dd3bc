// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/surveydash/internal/fetcher"
	"github.com/davetashner/surveydash/internal/survey"
)

var testMeta = Meta{
	APIURL:       "http://localhost:8000/api",
	FallbackMode: "demo",
	Generated:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
}

func TestValidFormat(t *testing.T) {
	assert.NoError(t, ValidFormat("text"))
	assert.NoError(t, ValidFormat("json"))
	err := ValidFormat("yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "yaml"`)
}

func TestResolveSections(t *testing.T) {
	assert.Equal(t, List(), ResolveSections(nil))
	assert.Equal(t, []string{"clustering", "overview"}, ResolveSections([]string{"clustering", "bogus", "overview"}))
	assert.Empty(t, ResolveSections([]string{"bogus"}))
}

func TestResourceStatus(t *testing.T) {
	in := NewInput(map[survey.Resource]fetcher.State[json.RawMessage]{
		survey.Clustering:   failedState(survey.Clustering),
		survey.Health:       okState(survey.Health, `{"status":"healthy"}`),
		survey.Demographics: sampleState(survey.Demographics),
	}, Options{})

	got := ResourceStatus(in)
	require.Len(t, got, 3)
	assert.Equal(t, ResourceJSON{Resource: survey.Health, Status: "ok"}, got[0])
	assert.Equal(t, survey.Demographics, got[1].Resource)
	assert.Equal(t, "sample", got[1].Status)
	assert.True(t, got[1].UsedFallback)
	assert.Equal(t, "failed", got[2].Status)
	assert.Equal(t, "HTTP error! status: 503", got[2].Error)
}

func TestRenderJSON(t *testing.T) {
	in := NewInput(map[survey.Resource]fetcher.State[json.RawMessage]{
		survey.Health:     okState(survey.Health, `{"status":"healthy","total_records":380}`),
		survey.Clustering: failedState(survey.Clustering),
	}, Options{})

	var buf bytes.Buffer
	require.NoError(t, RenderJSON(in, testMeta, []string{"overview", "clustering"}, &buf))

	var out ReportJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "http://localhost:8000/api", out.APIURL)
	assert.Equal(t, "demo", out.FallbackMode)
	assert.Equal(t, "2026-03-01T12:00:00Z", out.Generated)
	require.Len(t, out.Sections, 2)

	assert.Equal(t, "overview", out.Sections[0].Name)
	assert.Equal(t, "ok", out.Sections[0].Status)
	assert.Contains(t, out.Sections[0].Content, "Dashboard Overview")
	assert.NotNil(t, out.Sections[0].Data)

	assert.Equal(t, "clustering", out.Sections[1].Name)
	assert.Equal(t, "skipped", out.Sections[1].Status)
	assert.Contains(t, out.Sections[1].Reason, "data not available")
	assert.Empty(t, out.Sections[1].Content)
}

func TestRenderJSON_MarksFallbackSections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderJSON(sampleInput(), testMeta, []string{"demographics"}, &buf))

	var out ReportJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Sections, 1)
	assert.True(t, out.Sections[0].UsedFallback)
	for _, r := range out.Resources {
		assert.Equal(t, "sample", r.Status, r.Resource)
	}
}

func TestRenderText(t *testing.T) {
	in := NewInput(map[survey.Resource]fetcher.State[json.RawMessage]{
		survey.Health:       okState(survey.Health, `{"status":"healthy","total_records":380}`),
		survey.Demographics: sampleState(survey.Demographics),
	}, Options{})

	var buf bytes.Buffer
	require.NoError(t, RenderText(in, testMeta, []string{"overview", "demographics", "clustering"}, &buf))
	out := buf.String()

	assert.Contains(t, out, "Survey Analytics Report")
	assert.Contains(t, out, "Backend:   http://localhost:8000/api")
	assert.Contains(t, out, "2026-03-01T12:00:00Z")
	assert.Contains(t, out, "Dashboard Overview")
	assert.Contains(t, out, "Demographics")
	assert.Contains(t, out, "Using demo data")
	assert.Contains(t, out, "skipped: clustering")

	// The banner appears once, before the demographics section only.
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("Using demo data")))
}
