// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package fallback

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/surveydash/internal/survey"
)

func TestLookup_EveryEntryIsValidJSON(t *testing.T) {
	for r := range table {
		t.Run(string(r), func(t *testing.T) {
			doc := Lookup(r)
			assert.True(t, json.Valid(doc), "fallback for %s is not valid JSON", r)
		})
	}
}

func TestLookup_KnownResources(t *testing.T) {
	for _, r := range []survey.Resource{
		survey.Health,
		survey.Demographics,
		survey.SurveyAnalysis,
		survey.ComparativeAnalysis,
		survey.Clustering,
		survey.TechnologyAnalysis,
		survey.PartnershipAnalysis,
		survey.ComprehensiveReport,
	} {
		assert.True(t, Has(r), "expected fallback for %s", r)
	}
}

func TestLookup_UnknownYieldsEmptyObject(t *testing.T) {
	assert.False(t, Has(survey.CorrelationalAnalysis))
	assert.JSONEq(t, `{}`, string(Lookup(survey.CorrelationalAnalysis)))
	assert.JSONEq(t, `{}`, string(Lookup(survey.Resource("nope"))))
}

func TestLookup_ReturnsCopy(t *testing.T) {
	a := Lookup(survey.Health)
	a[0] = 'X'
	b := Lookup(survey.Health)
	assert.True(t, json.Valid(b))
}

func TestLookup_HealthValues(t *testing.T) {
	var h survey.HealthResponse
	require.NoError(t, json.Unmarshal(Lookup(survey.Health), &h))
	assert.Equal(t, "healthy", h.Status)
	assert.Equal(t, 380, h.TotalRecords)
}

func TestLookup_DemographicsGender(t *testing.T) {
	var d survey.DemographicsData
	require.NoError(t, json.Unmarshal(Lookup(survey.Demographics), &d))

	g := d.Distributions["gender"]
	require.NotNil(t, g)
	assert.Equal(t, []string{"Male", "Female"}, g.Labels)
	assert.Equal(t, []float64{150, 230}, g.Values)
	assert.Equal(t, []float64{39.47, 60.53}, g.Percentages)

	ct := d.CrossTabulations["education_vs_business"]
	require.NotNil(t, ct)
	assert.Len(t, ct.Values, 4)
}

func TestLookup_ClusteringSizes(t *testing.T) {
	var c survey.ClusteringData
	require.NoError(t, json.Unmarshal(Lookup(survey.Clustering), &c))

	k3 := c.Result("k_3")
	require.NotNil(t, k3)
	require.Len(t, k3.Clusters, 3)
	assert.Equal(t, 125, k3.Clusters[0].Size)
	assert.Equal(t, 150, k3.Clusters[1].Size)
	assert.Equal(t, 105, k3.Clusters[2].Size)
	assert.InDelta(t, 1245.67, k3.Inertia, 1e-9)

	require.NotNil(t, c.Visualization)
	assert.Len(t, c.Visualization.PCAComponents, 8)
	assert.Equal(t, []float64{0.35, 0.28}, c.Visualization.ExplainedVarianceRatio)
}

func TestLookup_ComprehensiveReport(t *testing.T) {
	var rep survey.ComprehensiveReportData
	require.NoError(t, json.Unmarshal(Lookup(survey.ComprehensiveReport), &rep))
	require.NotNil(t, rep.SampleInfo)
	assert.Equal(t, 365, rep.SampleInfo.CompleteResponses)
	require.Len(t, rep.KeyFindings, 4)
	assert.Equal(t, "Technology", rep.KeyFindings[3].Category)
}
