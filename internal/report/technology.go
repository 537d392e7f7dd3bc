// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/davetashner/surveydash/internal/chartdata"
	"github.com/davetashner/surveydash/internal/glossary"
	"github.com/davetashner/surveydash/internal/survey"
)

// technologySection reports technology adoption and its link to
// performance.
type technologySection struct {
	data     *survey.TechnologyAnalysisData
	glossary *glossary.Glossary
}

type technologyData struct {
	Statistics   []chartdata.StatsRow        `json:"statistics"`
	ByGender     []chartdata.TechGenderRow   `json:"by_gender"`
	Correlations []chartdata.TechCorrelation `json:"correlations"`
}

func (s *technologySection) Name() string        { return "technology" }
func (s *technologySection) Description() string { return "Technology adoption analysis" }

func (s *technologySection) Resources() []survey.Resource {
	return []survey.Resource{survey.TechnologyAnalysis}
}

func (s *technologySection) Analyze(in *Input) error {
	d, err := decode[survey.TechnologyAnalysisData](in, survey.TechnologyAnalysis)
	if err != nil {
		return fmt.Errorf("technology: %w", err)
	}
	s.data = d
	s.glossary = in.Options.Glossary
	return nil
}

func (s *technologySection) Data() any {
	if s.data == nil {
		return technologyData{}
	}
	return technologyData{
		Statistics:   chartdata.ToStatsRows(s.data.TechnologyStatistics),
		ByGender:     chartdata.ToTechByGender(s.data),
		Correlations: chartdata.ToTechCorrelationCells(s.data.TechnologyPerformanceCorrelation),
	}
}

func (s *technologySection) Render(w io.Writer) error {
	heading(w, "Technology Analysis")

	if s.data == nil {
		_, _ = fmt.Fprintf(w, "  No technology data available.\n\n")
		return nil
	}

	if rows := chartdata.ToStatsRows(s.data.TechnologyStatistics); len(rows) > 0 {
		subheading(w, "Adoption statistics")
		tbl := NewTable(
			Column{Header: "Technology"},
			Column{Header: "Mean", Align: AlignRight},
			Column{Header: "Median", Align: AlignRight},
			Column{Header: "Std", Align: AlignRight},
		)
		for _, r := range rows {
			tbl.AddRow(s.glossary.Describe(r.Variable), f2(r.Mean), f2(r.Median), f2(r.Std))
		}
		if err := tbl.Render(w); err != nil {
			return err
		}
	}

	if rows := chartdata.ToTechByGender(s.data); len(rows) > 0 {
		subheading(w, "Adoption by gender")
		tbl := NewTable(
			Column{Header: "Technology"},
			Column{Header: "Male", Align: AlignRight},
			Column{Header: "Female", Align: AlignRight},
		)
		for _, r := range rows {
			tbl.AddRow(r.Technology, f2(r.Male), f2(r.Female))
		}
		if err := tbl.Render(w); err != nil {
			return err
		}
	}

	if m := chartdata.NestedToMatrix(s.data.TechnologyPerformanceCorrelation); len(m.RowVariables) > 0 {
		subheading(w, "Technology x performance correlation")
		if err := renderMatrix(w, m); err != nil {
			return err
		}
	}
	_, _ = fmt.Fprintln(w)
	return nil
}
