// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/davetashner/surveydash/internal/chartdata"
	"github.com/davetashner/surveydash/internal/survey"
)

// correlationalSection reports the named correlation matrices between
// variable families.
type correlationalSection struct {
	data *survey.CorrelationalAnalysisData
}

type namedMatrix struct {
	Title   string                    `json:"title"`
	Matrix  *survey.CorrelationMatrix `json:"matrix,omitempty"`
	Message string                    `json:"message,omitempty"`
}

func (s *correlationalSection) Name() string        { return "correlational" }
func (s *correlationalSection) Description() string { return "Correlational analysis" }

func (s *correlationalSection) Resources() []survey.Resource {
	return []survey.Resource{survey.CorrelationalAnalysis}
}

func (s *correlationalSection) Analyze(in *Input) error {
	d, err := decode[survey.CorrelationalAnalysisData](in, survey.CorrelationalAnalysis)
	if err != nil {
		return fmt.Errorf("correlational: %w", err)
	}
	s.data = d
	return nil
}

// matrices lists the families present in the document.
func (s *correlationalSection) matrices() []namedMatrix {
	var out []namedMatrix
	if s.data == nil {
		return out
	}
	for _, part := range []struct {
		title string
		nc    *survey.NamedCorrelation
	}{
		{"Technology adoption impact on business performance", s.data.ITSurveyCorrelation},
		{"Partnership strategy impact on business performance", s.data.PartnershipSurveyCorrelation},
	} {
		if part.nc == nil {
			continue
		}
		nm := namedMatrix{Title: part.title}
		if m, ok := chartdata.FromNamedCorrelation(part.nc); ok {
			nm.Matrix = &m
		} else {
			nm.Message = part.nc.Message
			if nm.Message == "" {
				nm.Message = "Insufficient data for correlation analysis"
			}
		}
		out = append(out, nm)
	}
	return out
}

func (s *correlationalSection) Data() any {
	m := s.matrices()
	if m == nil {
		m = []namedMatrix{}
	}
	return m
}

func (s *correlationalSection) Render(w io.Writer) error {
	heading(w, "Correlational Analysis")

	matrices := s.matrices()
	if len(matrices) == 0 {
		_, _ = fmt.Fprintf(w, "  No correlational data available.\n\n")
		return nil
	}
	for _, nm := range matrices {
		subheading(w, nm.Title)
		if nm.Matrix == nil {
			_, _ = fmt.Fprintf(w, "  Limited data: %s\n", nm.Message)
			continue
		}
		if err := renderMatrix(w, *nm.Matrix); err != nil {
			return err
		}
	}
	_, _ = fmt.Fprintln(w)
	return nil
}
