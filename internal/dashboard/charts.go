// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package dashboard

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/davetashner/surveydash/internal/chart"
	"github.com/davetashner/surveydash/internal/chartdata"
	"github.com/davetashner/surveydash/internal/fetcher"
	"github.com/davetashner/surveydash/internal/report"
	"github.com/davetashner/surveydash/internal/survey"
)

// chartSpec describes one SVG chart served under /charts/{name}.svg.
type chartSpec struct {
	Name     string
	Title    string
	Section  string
	Resource survey.Resource
	Draw     func(w io.Writer, st fetcher.State[json.RawMessage], opts report.Options) error
}

// chartSpecs lists every chart in page order.
var chartSpecs = []chartSpec{
	{Name: "gender", Title: "Gender distribution", Section: "demographics", Resource: survey.Demographics,
		Draw: distributionChart("gender", "Gender distribution", chart.Pie)},
	{Name: "age", Title: "Age distribution", Section: "demographics", Resource: survey.Demographics,
		Draw: distributionChart("respondent_age", "Age distribution", chart.Bar)},
	{Name: "education", Title: "Education level", Section: "demographics", Resource: survey.Demographics,
		Draw: distributionChart("education", "Education level", chart.Bar)},
	{Name: "variable-means", Title: "Variable means", Section: "survey-analysis", Resource: survey.SurveyAnalysis,
		Draw: drawVariableMeans},
	{Name: "business-fields", Title: "Variable by business field", Section: "comparative", Resource: survey.ComparativeAnalysis,
		Draw: drawBusinessFields},
	{Name: "clusters", Title: "Cluster sizes", Section: "clustering", Resource: survey.Clustering,
		Draw: drawClusterSizes},
	{Name: "pca", Title: "PCA projection", Section: "clustering", Resource: survey.Clustering,
		Draw: drawPCA},
	{Name: "technology", Title: "Technology adoption", Section: "technology", Resource: survey.TechnologyAnalysis,
		Draw: drawTechnology},
	{Name: "double-partnership", Title: "Double partnership (DP)", Section: "partnership", Resource: survey.PartnershipAnalysis,
		Draw: partnershipChart(chartdata.DoublePartnership, "Double partnership (DP)")},
	{Name: "triple-partnership", Title: "Triple partnership (TP)", Section: "partnership", Resource: survey.PartnershipAnalysis,
		Draw: partnershipChart(chartdata.TriplePartnership, "Triple partnership (TP)")},
	{Name: "composite-scores", Title: "Composite score means", Section: "composite-scores", Resource: survey.CompositeScores,
		Draw: drawCompositeScores},
}

func lookupChart(name string) (chartSpec, bool) {
	for _, c := range chartSpecs {
		if c.Name == name {
			return c, true
		}
	}
	return chartSpec{}, false
}

// chartsFor lists the charts shown on a section page.
func chartsFor(section string) []chartSpec {
	var out []chartSpec
	for _, c := range chartSpecs {
		if c.Section == section {
			out = append(out, c)
		}
	}
	return out
}

type pointsRenderer func(w io.Writer, title string, points []chartdata.ChartPoint, size chart.Size) error

func distributionChart(key, title string, render pointsRenderer) func(io.Writer, fetcher.State[json.RawMessage], report.Options) error {
	return func(w io.Writer, st fetcher.State[json.RawMessage], _ report.Options) error {
		var points []chartdata.ChartPoint
		if d := fetcher.As[survey.DemographicsData](st).Data; d != nil {
			points = chartdata.ToChartPoints(d.Distributions[key])
		}
		return render(w, title, points, chart.Size{})
	}
}

func partnershipChart(key, title string) func(io.Writer, fetcher.State[json.RawMessage], report.Options) error {
	return func(w io.Writer, st fetcher.State[json.RawMessage], _ report.Options) error {
		points := chartdata.PartnershipPoints(fetcher.As[survey.PartnershipAnalysisData](st).Data, key)
		return chart.Pie(w, title, points, chart.Size{})
	}
}

func drawVariableMeans(w io.Writer, st fetcher.State[json.RawMessage], _ report.Options) error {
	var points []chartdata.ChartPoint
	if d := fetcher.As[survey.SurveyAnalysisData](st).Data; d != nil {
		for _, r := range chartdata.ToStatsRows(d.BasicStatistics) {
			points = append(points, chartdata.ChartPoint{Name: r.Variable, Value: r.Mean})
		}
	}
	return chart.Bar(w, "Variable means", points, chart.Size{})
}

func drawBusinessFields(w io.Writer, st fetcher.State[json.RawMessage], opts report.Options) error {
	var points []chartdata.ChartPoint
	for _, r := range chartdata.ToGroupSeries(fetcher.As[survey.ComparativeData](st).Data, chartdata.ByBusinessField, opts.Variable) {
		points = append(points, chartdata.ChartPoint{Name: r.Group, Value: r.Mean})
	}
	return chart.Bar(w, opts.Variable+" by business field", points, chart.Size{})
}

func drawClusterSizes(w io.Writer, st fetcher.State[json.RawMessage], opts report.Options) error {
	var points []chartdata.ChartPoint
	d := fetcher.As[survey.ClusteringData](st).Data
	for _, c := range chartdata.ToClusterSizeSeries(d.Result(opts.ClusterK), opts.ClusterNames) {
		points = append(points, chartdata.ChartPoint{Name: c.Cluster, Value: float64(c.Size)})
	}
	return chart.Bar(w, "Cluster sizes ("+strings.TrimPrefix(opts.ClusterK, "k_")+" clusters)", points, chart.Size{})
}

func drawPCA(w io.Writer, st fetcher.State[json.RawMessage], opts report.Options) error {
	var pca *survey.PCAProjection
	if d := fetcher.As[survey.ClusteringData](st).Data; d != nil {
		pca = d.Visualization
	}
	return chart.Scatter(w, "PCA projection", chartdata.ToPCAPoints(pca), opts.ClusterNames, chart.Size{})
}

func drawTechnology(w io.Writer, st fetcher.State[json.RawMessage], _ report.Options) error {
	var points []chartdata.ChartPoint
	if d := fetcher.As[survey.TechnologyAnalysisData](st).Data; d != nil {
		for _, r := range chartdata.ToStatsRows(d.TechnologyStatistics) {
			points = append(points, chartdata.ChartPoint{Name: r.Variable, Value: r.Mean})
		}
	}
	return chart.Bar(w, "Technology adoption", points, chart.Size{})
}

func drawCompositeScores(w io.Writer, st fetcher.State[json.RawMessage], _ report.Options) error {
	var points []chartdata.ChartPoint
	if d := fetcher.As[survey.CompositeScoresData](st).Data; d != nil {
		for _, card := range chartdata.ToScoreCards(d) {
			if s := d.Scores[card.Key]; s != nil && s.Mean != nil {
				points = append(points, chartdata.ChartPoint{Name: card.Title, Value: *s.Mean})
			}
		}
	}
	return chart.Bar(w, "Composite score means", points, chart.Size{})
}
