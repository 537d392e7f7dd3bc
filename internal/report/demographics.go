// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/davetashner/surveydash/internal/chartdata"
	"github.com/davetashner/surveydash/internal/survey"
)

// demographicsSection reports respondent distributions and cross tabulations.
type demographicsSection struct {
	data *survey.DemographicsData
}

type demographicsData struct {
	Distributions    map[string][]chartdata.ChartPoint  `json:"distributions"`
	CrossTabulations map[string][]chartdata.CrossTabRow `json:"cross_tabulations"`
}

func (s *demographicsSection) Name() string        { return "demographics" }
func (s *demographicsSection) Description() string { return "Respondent demographics" }

func (s *demographicsSection) Resources() []survey.Resource {
	return []survey.Resource{survey.Demographics}
}

func (s *demographicsSection) Analyze(in *Input) error {
	d, err := decode[survey.DemographicsData](in, survey.Demographics)
	if err != nil {
		return fmt.Errorf("demographics: %w", err)
	}
	s.data = d
	return nil
}

func (s *demographicsSection) Data() any {
	out := demographicsData{
		Distributions:    map[string][]chartdata.ChartPoint{},
		CrossTabulations: map[string][]chartdata.CrossTabRow{},
	}
	if s.data == nil {
		return out
	}
	for name, d := range s.data.Distributions {
		out.Distributions[name] = chartdata.ToChartPoints(d)
	}
	for name, ct := range s.data.CrossTabulations {
		out.CrossTabulations[name] = chartdata.CrossTabRows(ct)
	}
	return out
}

func (s *demographicsSection) Render(w io.Writer) error {
	heading(w, "Demographics")

	if s.data == nil || (len(s.data.Distributions) == 0 && len(s.data.CrossTabulations) == 0) {
		_, _ = fmt.Fprintf(w, "  No demographic data available.\n\n")
		return nil
	}

	for _, name := range sortedNames(s.data.Distributions) {
		points := chartdata.ToChartPoints(s.data.Distributions[name])
		subheading(w, chartdata.HumanizeVariable(name))
		tbl := NewTable(
			Column{Header: "Group"},
			Column{Header: "Count", Align: AlignRight},
			Column{Header: "Percent", Align: AlignRight},
		)
		for _, p := range points {
			share := "-"
			if p.Percentage != nil {
				share = pct(*p.Percentage)
			}
			tbl.AddRow(p.Name, count(p.Value), share)
		}
		if err := tbl.Render(w); err != nil {
			return err
		}
	}

	for _, name := range sortedNames(s.data.CrossTabulations) {
		ct := s.data.CrossTabulations[name]
		if ct == nil {
			continue
		}
		subheading(w, chartdata.HumanizeVariable(name))
		cols := []Column{{Header: ""}}
		for _, c := range ct.Columns {
			cols = append(cols, Column{Header: c, Align: AlignRight})
		}
		cols = append(cols, Column{Header: "Total", Align: AlignRight})
		tbl := NewTable(cols...)
		for _, row := range chartdata.CrossTabRows(ct) {
			vals := []string{row.Label}
			for _, c := range row.Counts {
				vals = append(vals, count(c))
			}
			tbl.AddRow(append(vals, count(row.Total))...)
		}
		if err := tbl.Render(w); err != nil {
			return err
		}
	}
	_, _ = fmt.Fprintln(w)
	return nil
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
