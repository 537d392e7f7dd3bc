// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package survey

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Resource
	}{
		{"demographics", Demographics},
		{"/clustering", Clustering},
		{"  health ", Health},
		{"correlational-analysis", CorrelationalAnalysis},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	_, err := Parse("weather")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownResource)
	assert.Contains(t, err.Error(), "weather")
}

func TestResource_Path(t *testing.T) {
	assert.Equal(t, "/survey-analysis", SurveyAnalysis.Path())
	assert.Equal(t, "/health", Health.Path())
}

func TestAll_ReturnsCopy(t *testing.T) {
	got := All()
	require.NotEmpty(t, got)
	got[0] = "mutated"
	assert.Equal(t, Health, All()[0])
}

func TestClusteringData_Result(t *testing.T) {
	var nilData *ClusteringData
	assert.Nil(t, nilData.Result("k_3"))
	assert.Nil(t, (&ClusteringData{}).Result("k_3"))

	d := &ClusteringData{ClusteringResults: map[string]*ClusterResult{"k_3": {Inertia: 1}}}
	require.NotNil(t, d.Result("k_3"))
	assert.Nil(t, d.Result("k_4"))
}

func TestAnovaResult_NullableFields(t *testing.T) {
	var r AnovaResult
	require.NoError(t, json.Unmarshal([]byte(`{"variable":"AU","f_statistic":null,"p_value":0.01,"significant":true}`), &r))
	assert.Nil(t, r.FStatistic)
	require.NotNil(t, r.PValue)
	assert.InDelta(t, 0.01, *r.PValue, 1e-12)
}

func TestNamedCorrelation_RowVariables(t *testing.T) {
	var n *NamedCorrelation
	assert.Nil(t, n.RowVariables())
	assert.Equal(t, []string{"IT_SM"}, (&NamedCorrelation{ITVariables: []string{"IT_SM"}}).RowVariables())
	assert.Equal(t, []string{"DP"}, (&NamedCorrelation{PartnershipVariables: []string{"DP"}}).RowVariables())
}

func TestGroupStat_Group(t *testing.T) {
	assert.Equal(t, "31-40 years", GroupStat{AgeGroup: "31-40 years"}.Group())
	assert.Equal(t, "Trading", GroupStat{BusinessField: "Trading"}.Group())
}
