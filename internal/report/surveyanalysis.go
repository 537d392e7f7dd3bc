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

// surveyAnalysisSection reports descriptive statistics and correlations of
// the survey variables.
type surveyAnalysisSection struct {
	data     *survey.SurveyAnalysisData
	glossary *glossary.Glossary
}

type surveyAnalysisData struct {
	Statistics      []chartdata.StatsRow     `json:"statistics"`
	TopCorrelations []survey.VariablePair    `json:"top_correlations"`
	Matrix          survey.CorrelationMatrix `json:"correlation_matrix"`
}

func (s *surveyAnalysisSection) Name() string        { return "survey-analysis" }
func (s *surveyAnalysisSection) Description() string { return "Survey variable statistics and correlations" }

func (s *surveyAnalysisSection) Resources() []survey.Resource {
	return []survey.Resource{survey.SurveyAnalysis}
}

func (s *surveyAnalysisSection) Analyze(in *Input) error {
	d, err := decode[survey.SurveyAnalysisData](in, survey.SurveyAnalysis)
	if err != nil {
		return fmt.Errorf("survey-analysis: %w", err)
	}
	s.data = d
	s.glossary = in.Options.Glossary
	return nil
}

func (s *surveyAnalysisSection) Data() any {
	if s.data == nil {
		return surveyAnalysisData{}
	}
	top := s.data.TopCorrelations
	if top == nil {
		top = []survey.VariablePair{}
	}
	return surveyAnalysisData{
		Statistics:      chartdata.ToStatsRows(s.data.BasicStatistics),
		TopCorrelations: top,
		Matrix:          chartdata.FromVariableMatrix(s.data.CorrelationMatrix),
	}
}

func (s *surveyAnalysisSection) Render(w io.Writer) error {
	heading(w, "Survey Analysis")

	if s.data == nil {
		_, _ = fmt.Fprintf(w, "  No survey analysis data available.\n\n")
		return nil
	}

	if rows := chartdata.ToStatsRows(s.data.BasicStatistics); len(rows) > 0 {
		subheading(w, "Basic statistics")
		tbl := NewTable(
			Column{Header: "Variable"},
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

	if len(s.data.TopCorrelations) > 0 {
		subheading(w, "Top correlations")
		tbl := NewTable(
			Column{Header: "Variable 1"},
			Column{Header: "Variable 2"},
			Column{Header: "r", Align: AlignRight, Color: ColorCorrelation},
			Column{Header: "Strength"},
		)
		for _, p := range s.data.TopCorrelations {
			tbl.AddRow(p.Var1, p.Var2, f2(p.Correlation), chartdata.CorrelationStrength(p.Correlation).String())
		}
		if err := tbl.Render(w); err != nil {
			return err
		}
	}

	if m := chartdata.FromVariableMatrix(s.data.CorrelationMatrix); len(m.RowVariables) > 0 {
		subheading(w, "Correlation matrix")
		if err := renderMatrix(w, m); err != nil {
			return err
		}
	}
	_, _ = fmt.Fprintln(w)
	return nil
}
