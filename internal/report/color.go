// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package report

import (
	"strings"

	"github.com/fatih/color"

	"github.com/davetashner/surveydash/internal/chartdata"
)

// Shared color printers for report sections.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorBold   = color.New(color.Bold)
	colorFaint  = color.New(color.Faint)

	colorStrongPositive = color.New(color.FgGreen, color.Bold)
	colorStrongNegative = color.New(color.FgRed, color.Bold)
)

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}

// ColorSignificance colors significance labels.
func ColorSignificance(val string) string {
	switch val {
	case "yes":
		return colorGreen.Sprint(val)
	case "no":
		return colorFaint.Sprint(val)
	default:
		return val
	}
}

// ColorCorrelation colors a formatted coefficient by its strength bucket.
func ColorCorrelation(val string) string {
	v, ok := parseFloat(val)
	if !ok {
		return val
	}
	s := chartdata.CorrelationStrength(v)
	switch {
	case s == chartdata.StrengthNone:
		return colorFaint.Sprint(val)
	case s == chartdata.StrongPositive:
		return colorStrongPositive.Sprint(val)
	case s == chartdata.StrongNegative:
		return colorStrongNegative.Sprint(val)
	case s.Positive():
		return colorGreen.Sprint(val)
	default:
		return colorRed.Sprint(val)
	}
}

// ColorStatus colors resource load status labels.
func ColorStatus(val string) string {
	switch {
	case val == "ok":
		return colorGreen.Sprint(val)
	case strings.HasPrefix(val, "sample"):
		return colorYellow.Sprint(val)
	case val == "failed":
		return colorRed.Sprint(val)
	default:
		return val
	}
}

// FallbackBanner is shown above any section that renders sample data.
func FallbackBanner() string {
	return colorYellow.Sprint("Using demo data: the backend could not be reached, figures below are sample values.")
}
