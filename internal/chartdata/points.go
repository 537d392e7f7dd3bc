// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

// Package chartdata reshapes survey payloads into the flat series that
// charts and tables consume.
//
// Every function here is total: nil or partially populated input yields an
// empty or zero result, never a panic. Missing optional data is expected
// and is not reported as an error.
package chartdata

import (
	"github.com/montanaflynn/stats"

	"github.com/davetashner/surveydash/internal/survey"
)

// ChartPoint is one labelled value of a bar or pie chart.
type ChartPoint struct {
	Name       string   `json:"name"`
	Value      float64  `json:"value"`
	Percentage *float64 `json:"percentage,omitempty"`
}

// ToChartPoints emits one point per label of d. A value or percentage
// missing at an index becomes 0 or nil respectively.
func ToChartPoints(d *survey.Distribution) []ChartPoint {
	if d == nil {
		return []ChartPoint{}
	}
	out := make([]ChartPoint, 0, len(d.Labels))
	for i, label := range d.Labels {
		p := ChartPoint{Name: label}
		if i < len(d.Values) {
			p.Value = d.Values[i]
		}
		if i < len(d.Percentages) {
			pct := d.Percentages[i]
			p.Percentage = &pct
		}
		out = append(out, p)
	}
	return out
}

// SumValues returns the sum of the point values.
func SumValues(points []ChartPoint) float64 {
	vals := make(stats.Float64Data, 0, len(points))
	for _, p := range points {
		vals = append(vals, p.Value)
	}
	return sum(vals)
}

// PercentageTotal returns the sum of the percentages that are present.
func PercentageTotal(points []ChartPoint) float64 {
	vals := make(stats.Float64Data, 0, len(points))
	for _, p := range points {
		if p.Percentage != nil {
			vals = append(vals, *p.Percentage)
		}
	}
	return sum(vals)
}

// sum is stats.Sum with empty input mapped to zero.
func sum(vals stats.Float64Data) float64 {
	s, err := stats.Sum(vals)
	if err != nil {
		return 0
	}
	return s
}

// CrossTabRow is one row of a contingency table.
type CrossTabRow struct {
	Label  string
	Counts []float64
	Total  float64
}

// CrossTabRows flattens a cross tabulation into rows padded or truncated to
// the column count.
func CrossTabRows(ct *survey.CrossTabulation) []CrossTabRow {
	if ct == nil {
		return []CrossTabRow{}
	}
	out := make([]CrossTabRow, 0, len(ct.Index))
	for i, label := range ct.Index {
		counts := make([]float64, len(ct.Columns))
		if i < len(ct.Values) {
			copy(counts, ct.Values[i])
		}
		out = append(out, CrossTabRow{Label: label, Counts: counts, Total: sum(counts)})
	}
	return out
}
