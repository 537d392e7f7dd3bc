// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package chartdata

import (
	"strconv"
	"strings"
	"unicode"
)

// NotAvailable is shown for statistics the backend could not compute.
const NotAvailable = "N/A"

// FormatPValue renders a p-value for display. Values below 0.001 (zero
// included) read "< 0.001"; values below 0.01 get four decimals and the
// rest three.
func FormatPValue(p *float64) string {
	if p == nil {
		return NotAvailable
	}
	v := *p
	switch {
	case v < 0.001:
		return "< 0.001"
	case v < 0.01:
		return strconv.FormatFloat(v, 'f', 4, 64)
	default:
		return strconv.FormatFloat(v, 'f', 3, 64)
	}
}

// FormatFStatistic renders an F statistic with three decimals.
func FormatFStatistic(f *float64) string {
	if f == nil {
		return NotAvailable
	}
	return strconv.FormatFloat(*f, 'f', 3, 64)
}

// HumanizeVariable turns a snake_case key into title case:
// "business_field" becomes "Business Field".
func HumanizeVariable(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// DefaultClusterNames labels the clusters of the three-cluster solution in
// ordinal order.
var DefaultClusterNames = []string{
	"Traditional Businesses",
	"Innovation Leaders",
	"Moderate SMEs",
}

// ClusterName returns names[idx], or "Group <id>" when idx has no name.
func ClusterName(names []string, idx, id int) string {
	if idx >= 0 && idx < len(names) && names[idx] != "" {
		return names[idx]
	}
	return "Group " + strconv.Itoa(id)
}
