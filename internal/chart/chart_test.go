// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/surveydash/internal/chartdata"
)

var genderPoints = []chartdata.ChartPoint{
	{Name: "Male", Value: 150},
	{Name: "Female", Value: 230},
}

func TestBar(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Bar(&buf, "Gender", genderPoints, Size{}))
	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Female")
}

func TestBar_SingleBar(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Bar(&buf, "One", []chartdata.ChartPoint{{Name: "Only", Value: 3}}, Size{Width: 320, Height: 200}))
	assert.Contains(t, buf.String(), "<svg")
}

func TestBar_NoData(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, errors.Is(Bar(&buf, "Empty", nil, Size{}), ErrNoData))
	assert.True(t, errors.Is(Bar(&buf, "Zero", []chartdata.ChartPoint{{Name: "a"}}, Size{}), ErrNoData))
	assert.Zero(t, buf.Len())
}

func TestPie(t *testing.T) {
	var buf bytes.Buffer
	points := append([]chartdata.ChartPoint{{Name: "Nobody", Value: 0}}, genderPoints...)
	require.NoError(t, Pie(&buf, "Gender", points, Size{}))
	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Male")
	assert.NotContains(t, out, "Nobody")
}

func TestPie_NoData(t *testing.T) {
	var buf bytes.Buffer
	err := Pie(&buf, "Empty", []chartdata.ChartPoint{{Name: "a", Value: 0}}, Size{})
	assert.True(t, errors.Is(err, ErrNoData))
}

func TestScatter(t *testing.T) {
	points := []chartdata.PCAPoint{
		{X: -1.2, Y: 0.4, Cluster: 0},
		{X: 0.8, Y: -0.3, Cluster: 1},
		{X: 1.1, Y: 0.9, Cluster: 1},
		{X: 2.0, Y: 1.5, Cluster: 2},
	}
	var buf bytes.Buffer
	require.NoError(t, Scatter(&buf, "PCA", points, []string{"Traditional"}, Size{}))
	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Traditional")
	assert.Contains(t, out, "Group 2")
}

func TestScatter_SinglePoint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Scatter(&buf, "PCA", []chartdata.PCAPoint{{X: 1, Y: 1}}, nil, Size{}))
	assert.Contains(t, buf.String(), "<svg")
}

func TestScatter_NoData(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, errors.Is(Scatter(&buf, "PCA", nil, nil, Size{}), ErrNoData))
}

func TestPadded(t *testing.T) {
	r := padded(0, 10)
	assert.InDelta(t, -0.5, r.Min, 1e-9)
	assert.InDelta(t, 10.5, r.Max, 1e-9)

	r = padded(3, 3)
	assert.InDelta(t, 2, r.Min, 1e-9)
	assert.InDelta(t, 4, r.Max, 1e-9)
}

func TestSize_OrDefault(t *testing.T) {
	assert.Equal(t, DefaultSize, Size{}.orDefault())
	assert.Equal(t, Size{Width: 100, Height: DefaultSize.Height}, Size{Width: 100}.orDefault())
}
