// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package report

import (
	"strconv"
	"strings"
)

func f2(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
func f3(v float64) string { return strconv.FormatFloat(v, 'f', 3, 64) }

func pct(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) + "%" }

func count(n float64) string { return strconv.FormatFloat(n, 'f', -1, 64) }

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
