// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

// Package chart renders dashboard series as SVG images.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/davetashner/surveydash/internal/chartdata"
)

// ErrNoData is returned when a series has nothing to draw.
var ErrNoData = errors.New("no chart data")

// Size is the pixel size of a rendered chart.
type Size struct {
	Width  int
	Height int
}

// DefaultSize is used when a Size field is zero.
var DefaultSize = Size{Width: 640, Height: 400}

func (s Size) orDefault() Size {
	if s.Width <= 0 {
		s.Width = DefaultSize.Width
	}
	if s.Height <= 0 {
		s.Height = DefaultSize.Height
	}
	return s
}

func background() gochart.Style {
	return gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}}
}

// pointStyle renders points only, without connecting lines.
func pointStyle(col drawing.Color) gochart.Style {
	return gochart.Style{
		StrokeWidth: gochart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

// Bar renders points as a vertical bar chart.
func Bar(w io.Writer, title string, points []chartdata.ChartPoint, size Size) error {
	if !hasValue(points) {
		return ErrNoData
	}
	size = size.orDefault()

	bars := make([]gochart.Value, 0, len(points))
	var lo, hi float64
	for _, p := range points {
		bars = append(bars, gochart.Value{Label: p.Name, Value: p.Value})
		lo, hi = math.Min(lo, p.Value), math.Max(hi, p.Value)
	}

	barWidth := (size.Width - 80) / (2 * len(points))
	barWidth = max(8, min(barWidth, 80))

	ch := gochart.BarChart{
		Title:      title,
		Background: background(),
		Width:      size.Width,
		Height:     size.Height,
		BarWidth:   barWidth,
		BarSpacing: barWidth / 2,
		YAxis:      gochart.YAxis{Range: &gochart.ContinuousRange{Min: lo, Max: hi + (hi-lo)*0.1}},
		Bars:       bars,
	}
	if err := ch.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("rendering bar chart %q: %w", title, err)
	}
	return nil
}

// Pie renders the positive points as a pie chart.
func Pie(w io.Writer, title string, points []chartdata.ChartPoint, size Size) error {
	size = size.orDefault()

	var values []gochart.Value
	for _, p := range points {
		if p.Value > 0 {
			values = append(values, gochart.Value{Label: p.Name, Value: p.Value})
		}
	}
	if len(values) == 0 {
		return ErrNoData
	}

	ch := gochart.PieChart{
		Title:      title,
		Background: background(),
		Width:      size.Width,
		Height:     size.Height,
		Values:     values,
	}
	if err := ch.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("rendering pie chart %q: %w", title, err)
	}
	return nil
}

// Scatter renders PCA points with one colored series per cluster. names
// label clusters by ordinal position of their sorted ids.
func Scatter(w io.Writer, title string, points []chartdata.PCAPoint, names []string, size Size) error {
	if len(points) == 0 {
		return ErrNoData
	}
	size = size.orDefault()

	byCluster := make(map[int]*gochart.ContinuousSeries)
	var ids []int
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		s, ok := byCluster[p.Cluster]
		if !ok {
			s = &gochart.ContinuousSeries{}
			byCluster[p.Cluster] = s
			ids = append(ids, p.Cluster)
		}
		s.XValues = append(s.XValues, p.X)
		s.YValues = append(s.YValues, p.Y)
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	sort.Ints(ids)

	series := make([]gochart.Series, 0, len(ids))
	for i, id := range ids {
		s := byCluster[id]
		s.Name = chartdata.ClusterName(names, i, id)
		s.Style = pointStyle(gochart.GetDefaultColor(i))
		series = append(series, *s)
	}

	ch := gochart.Chart{
		Title:      title,
		Background: background(),
		Width:      size.Width,
		Height:     size.Height,
		XAxis:      gochart.XAxis{Name: "PC1", Range: padded(minX, maxX)},
		YAxis:      gochart.YAxis{Name: "PC2", Range: padded(minY, maxY)},
		Series:     series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	if err := ch.Render(gochart.SVG, w); err != nil {
		return fmt.Errorf("rendering scatter chart %q: %w", title, err)
	}
	return nil
}

// padded widens [lo, hi] by 5% on each side, and by one unit when the
// range is empty.
func padded(lo, hi float64) *gochart.ContinuousRange {
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 1
	}
	return &gochart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func hasValue(points []chartdata.ChartPoint) bool {
	for _, p := range points {
		if p.Value != 0 {
			return true
		}
	}
	return false
}
