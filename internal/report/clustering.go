// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/davetashner/surveydash/internal/chartdata"
	"github.com/davetashner/surveydash/internal/survey"
)

// clusteringSection reports the business clusters of one clustering
// solution.
type clusteringSection struct {
	result      *survey.ClusterResult
	pca         *survey.PCAProjection
	k           string
	names       []string
	spreadLimit int
}

type clusteringData struct {
	K         string                  `json:"k"`
	Sizes     []chartdata.ClusterSize `json:"sizes"`
	Inertia   float64                 `json:"inertia"`
	Profiles  []chartdata.ProfileRow  `json:"profiles"`
	Spread    []chartdata.Spread      `json:"spread"`
	Anova     chartdata.AnovaCounts   `json:"anova"`
	PCAPoints []chartdata.PCAPoint    `json:"pca_points"`
	PC1       *float64                `json:"pc1_variance,omitempty"`
	PC2       *float64                `json:"pc2_variance,omitempty"`
}

func (s *clusteringSection) Name() string        { return "clustering" }
func (s *clusteringSection) Description() string { return "Business clusters and ANOVA" }

func (s *clusteringSection) Resources() []survey.Resource {
	return []survey.Resource{survey.Clustering}
}

func (s *clusteringSection) Analyze(in *Input) error {
	d, err := decode[survey.ClusteringData](in, survey.Clustering)
	if err != nil {
		return fmt.Errorf("clustering: %w", err)
	}
	s.k = in.Options.ClusterK
	s.result = d.Result(s.k)
	s.pca = d.Visualization
	s.names = in.Options.ClusterNames
	s.spreadLimit = in.Options.SpreadLimit
	return nil
}

func (s *clusteringSection) Data() any {
	d := clusteringData{
		K:         s.k,
		Sizes:     chartdata.ToClusterSizeSeries(s.result, s.names),
		Profiles:  chartdata.ProfileRows(s.result),
		Spread:    chartdata.ClusterSpread(s.result, s.spreadLimit),
		PCAPoints: chartdata.ToPCAPoints(s.pca),
	}
	if s.result != nil {
		d.Inertia = s.result.Inertia
		d.Anova = chartdata.AnovaSummary(s.result.AnovaResults)
	}
	if pc1, pc2, ok := chartdata.ExplainedVariance(s.pca); ok {
		d.PC1, d.PC2 = &pc1, &pc2
	}
	return d
}

func (s *clusteringSection) Render(w io.Writer) error {
	heading(w, "Clustering Analysis")

	if s.result == nil || len(s.result.Clusters) == 0 {
		_, _ = fmt.Fprintf(w, "  No clustering result for %s.\n\n", s.k)
		return nil
	}

	total := 0
	for _, c := range s.result.Clusters {
		total += c.Size
	}

	subheading(w, "Cluster sizes")
	sizes := NewTable(
		Column{Header: "Cluster"},
		Column{Header: "Size", Align: AlignRight},
		Column{Header: "Share", Align: AlignRight},
	)
	for _, c := range chartdata.ToClusterSizeSeries(s.result, s.names) {
		share := "-"
		if total > 0 {
			share = pct(float64(c.Size) * 100 / float64(total))
		}
		sizes.AddRow(c.Cluster, strconv.Itoa(c.Size), share)
	}
	if err := sizes.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "  Inertia: %s\n", f2(s.result.Inertia))
	if pc1, pc2, ok := chartdata.ExplainedVariance(s.pca); ok {
		_, _ = fmt.Fprintf(w, "  PCA: PC1 explains %.1f%%, PC2 explains %.1f%% of variance\n", pc1, pc2)
	}

	if rows := chartdata.ProfileRows(s.result); len(rows) > 0 {
		subheading(w, "Cluster profiles")
		cols := []Column{{Header: "Variable"}}
		for i, c := range s.result.Clusters {
			cols = append(cols, Column{Header: chartdata.ClusterName(s.names, i, c.ClusterID), Align: AlignRight})
		}
		tbl := NewTable(cols...)
		for _, r := range rows {
			vals := []string{r.Variable}
			for _, m := range r.Means {
				vals = append(vals, f2(m))
			}
			tbl.AddRow(vals...)
		}
		if err := tbl.Render(w); err != nil {
			return err
		}
	}

	if spread := chartdata.ClusterSpread(s.result, s.spreadLimit); len(spread) > 0 {
		subheading(w, "Spread across clusters")
		tbl := NewTable(
			Column{Header: "Variable"},
			Column{Header: "Mean", Align: AlignRight},
			Column{Header: "Variance", Align: AlignRight},
		)
		for _, sp := range spread {
			tbl.AddRow(sp.Variable, f3(sp.Mean), f3(sp.Variance))
		}
		if err := tbl.Render(w); err != nil {
			return err
		}
	}

	if len(s.result.AnovaResults) > 0 {
		subheading(w, "ANOVA")
		tbl := NewTable(
			Column{Header: "Variable"},
			Column{Header: "F", Align: AlignRight},
			Column{Header: "p-value", Align: AlignRight},
			Column{Header: "Significant", Color: ColorSignificance},
		)
		for _, a := range s.result.AnovaResults {
			if a.Message != "" {
				tbl.AddRow(a.Variable, chartdata.NotAvailable, chartdata.NotAvailable, a.Message)
				continue
			}
			tbl.AddRow(a.Variable, chartdata.FormatFStatistic(a.FStatistic), chartdata.FormatPValue(a.PValue), yesNo(a.Significant))
		}
		if err := tbl.Render(w); err != nil {
			return err
		}
		c := chartdata.AnovaSummary(s.result.AnovaResults)
		_, _ = fmt.Fprintf(w, "  %d of %d tested variables differ significantly between clusters.\n", c.Significant, c.Tested)
	}
	_, _ = fmt.Fprintln(w)
	return nil
}
