// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/davetashner/surveydash/internal/survey"
)

// overviewSection reports backend health and sample size.
type overviewSection struct {
	health *survey.HealthResponse
	report *survey.ComprehensiveReportData
}

type overviewData struct {
	Status       string             `json:"status,omitempty"`
	TotalRecords int                `json:"total_records"`
	SampleInfo   *survey.SampleInfo `json:"sample_info,omitempty"`
	KeyFindings  int                `json:"key_findings"`
}

func (s *overviewSection) Name() string        { return "overview" }
func (s *overviewSection) Description() string { return "Dashboard overview" }

func (s *overviewSection) Resources() []survey.Resource {
	return []survey.Resource{survey.Health, survey.ComprehensiveReport}
}

// Analyze needs at least one of the two documents.
func (s *overviewSection) Analyze(in *Input) error {
	health, herr := decode[survey.HealthResponse](in, survey.Health)
	rep, rerr := decode[survey.ComprehensiveReportData](in, survey.ComprehensiveReport)
	if herr != nil && rerr != nil {
		return fmt.Errorf("overview: %w", herr)
	}
	s.health, s.report = health, rep
	return nil
}

func (s *overviewSection) Data() any {
	d := overviewData{}
	if s.health != nil {
		d.Status = s.health.Status
		d.TotalRecords = s.health.TotalRecords
	}
	if s.report != nil {
		d.SampleInfo = s.report.SampleInfo
		d.KeyFindings = len(s.report.KeyFindings)
	}
	return d
}

func (s *overviewSection) Render(w io.Writer) error {
	heading(w, "Dashboard Overview")

	tbl := NewTable(
		Column{Header: "Metric"},
		Column{Header: "Value", Align: AlignRight},
	)
	if s.health != nil {
		tbl.AddRow("Backend status", s.health.Status)
		tbl.AddRow("Total records", strconv.Itoa(s.health.TotalRecords))
	}
	if s.report != nil && s.report.SampleInfo != nil {
		si := s.report.SampleInfo
		tbl.AddRow("Total respondents", strconv.Itoa(si.TotalRespondents))
		tbl.AddRow("Complete responses", strconv.Itoa(si.CompleteResponses))
		tbl.AddRow("Survey variables", strconv.Itoa(si.SurveyVariables))
		tbl.AddRow("Technology variables", strconv.Itoa(si.TechnologyVariables))
	}
	if s.report != nil {
		tbl.AddRow("Key findings", strconv.Itoa(len(s.report.KeyFindings)))
	}

	if tbl.Len() == 0 {
		_, _ = fmt.Fprintf(w, "  No overview data available.\n\n")
		return nil
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w)
	return nil
}
