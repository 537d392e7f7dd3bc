// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/davetashner/surveydash/internal/survey"
)

func init() {
	registerBuiltins()
}

// registerBuiltins registers the dashboard sections in display order.
func registerBuiltins() {
	for _, f := range []Factory{
		func() Section { return &overviewSection{} },
		func() Section { return &demographicsSection{} },
		func() Section { return &surveyAnalysisSection{} },
		func() Section { return &comparativeSection{} },
		func() Section { return &clusteringSection{} },
		func() Section { return &technologySection{} },
		func() Section { return &partnershipSection{} },
		func() Section { return &correlationalSection{} },
		func() Section { return &compositeSection{} },
		func() Section { return &findingsSection{} },
	} {
		Register(f)
	}
}

// heading writes a bold title underlined with dashes.
func heading(w io.Writer, title string) {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle(title))
	_, _ = fmt.Fprintf(w, "%s\n", strings.Repeat("-", len([]rune(title))))
}

// subheading writes an indented table caption.
func subheading(w io.Writer, title string) {
	_, _ = fmt.Fprintf(w, "\n  %s\n", colorBold.Sprint(title))
}

// renderMatrix writes a correlation matrix with colored cells.
func renderMatrix(w io.Writer, m survey.CorrelationMatrix) error {
	cols := []Column{{Header: ""}}
	for _, c := range m.ColumnVariables {
		cols = append(cols, Column{Header: c, Align: AlignRight, Color: ColorCorrelation})
	}
	tbl := NewTable(cols...)
	for i, r := range m.RowVariables {
		row := []string{r}
		for _, v := range m.Matrix[i] {
			row = append(row, f2(v))
		}
		tbl.AddRow(row...)
	}
	return tbl.Render(w)
}
