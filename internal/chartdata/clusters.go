// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package chartdata

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/davetashner/surveydash/internal/survey"
)

// ClusterSize pairs a cluster's display name with its member count.
type ClusterSize struct {
	Cluster string `json:"cluster"`
	Size    int    `json:"size"`
}

// ToClusterSizeSeries names each cluster by its ordinal position in names,
// falling back to "Group <cluster_id>".
func ToClusterSizeSeries(res *survey.ClusterResult, names []string) []ClusterSize {
	if res == nil {
		return []ClusterSize{}
	}
	out := make([]ClusterSize, 0, len(res.Clusters))
	for i, c := range res.Clusters {
		out = append(out, ClusterSize{Cluster: ClusterName(names, i, c.ClusterID), Size: c.Size})
	}
	return out
}

// PCAPoint is one observation of the PCA scatter plot.
type PCAPoint struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Cluster int     `json:"cluster"`
}

// ToPCAPoints pairs each projected observation with its cluster label.
// Observations without a label are assigned cluster 0; components with
// fewer than two coordinates are zero-filled.
func ToPCAPoints(p *survey.PCAProjection) []PCAPoint {
	if p == nil {
		return []PCAPoint{}
	}
	out := make([]PCAPoint, 0, len(p.PCAComponents))
	for i, comp := range p.PCAComponents {
		var pt PCAPoint
		if len(comp) > 0 {
			pt.X = comp[0]
		}
		if len(comp) > 1 {
			pt.Y = comp[1]
		}
		if i < len(p.ClusterLabels) {
			pt.Cluster = p.ClusterLabels[i]
		}
		out = append(out, pt)
	}
	return out
}

// ExplainedVariance returns the variance explained by the first two
// principal components as percentages. ok is false when the ratios are
// absent.
func ExplainedVariance(p *survey.PCAProjection) (pc1, pc2 float64, ok bool) {
	if p == nil || len(p.ExplainedVarianceRatio) == 0 {
		return 0, 0, false
	}
	pc1 = p.ExplainedVarianceRatio[0] * 100
	if len(p.ExplainedVarianceRatio) > 1 {
		pc2 = p.ExplainedVarianceRatio[1] * 100
	}
	return pc1, pc2, true
}

// ProfileVariables lists the profile variables of the first cluster in
// sorted order.
func ProfileVariables(res *survey.ClusterResult) []string {
	if res == nil || len(res.Clusters) == 0 {
		return []string{}
	}
	vars := make([]string, 0, len(res.Clusters[0].Profile))
	for v := range res.Clusters[0].Profile {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars
}

// ProfileRow is one variable of the cluster profile table, with one mean
// per cluster in cluster order.
type ProfileRow struct {
	Variable string    `json:"variable"`
	Means    []float64 `json:"means"`
}

// ProfileRows builds the cluster profile table. A cluster missing a
// variable contributes 0.
func ProfileRows(res *survey.ClusterResult) []ProfileRow {
	vars := ProfileVariables(res)
	out := make([]ProfileRow, 0, len(vars))
	for _, v := range vars {
		row := ProfileRow{Variable: v, Means: make([]float64, len(res.Clusters))}
		for i, c := range res.Clusters {
			row.Means[i] = c.Profile[v]
		}
		out = append(out, row)
	}
	return out
}

// Spread summarizes one variable across clusters.
type Spread struct {
	Variable string    `json:"variable"`
	Values   []float64 `json:"values"`
	Mean     float64   `json:"mean"`
	Variance float64   `json:"variance"`
}

// ClusterSpread computes the mean and population variance of each profile
// variable across clusters, for at most limit variables. limit <= 0 means
// all variables.
func ClusterSpread(res *survey.ClusterResult, limit int) []Spread {
	rows := ProfileRows(res)
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	out := make([]Spread, 0, len(rows))
	for _, r := range rows {
		s := Spread{Variable: HumanizeVariable(r.Variable), Values: r.Means}
		if m, err := stats.Mean(r.Means); err == nil {
			s.Mean = m
		}
		if v, err := stats.PopulationVariance(r.Means); err == nil {
			s.Variance = v
		}
		out = append(out, s)
	}
	return out
}

// AnovaCounts tallies ANOVA outcomes.
type AnovaCounts struct {
	Significant int `json:"significant"`
	Tested      int `json:"tested"`
	Skipped     int `json:"skipped"`
}

// AnovaSummary counts significant results among the tests the backend
// could compute. Rows carrying a message or lacking an F statistic are
// counted as skipped.
func AnovaSummary(results []survey.AnovaResult) AnovaCounts {
	var c AnovaCounts
	for _, r := range results {
		if r.Message != "" || r.FStatistic == nil {
			c.Skipped++
			continue
		}
		c.Tested++
		if r.Significant {
			c.Significant++
		}
	}
	return c
}
