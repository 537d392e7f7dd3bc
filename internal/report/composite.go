// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/davetashner/surveydash/internal/chartdata"
	"github.com/davetashner/surveydash/internal/survey"
)

// compositeSection reports the composite scores.
type compositeSection struct {
	data *survey.CompositeScoresData
}

type compositeData struct {
	Cards    []chartdata.ScoreCard    `json:"cards"`
	Matrix   survey.CorrelationMatrix `json:"correlations"`
	Analysis string                   `json:"analysis,omitempty"`
}

func (s *compositeSection) Name() string        { return "composite-scores" }
func (s *compositeSection) Description() string { return "Composite scores" }

func (s *compositeSection) Resources() []survey.Resource {
	return []survey.Resource{survey.CompositeScores}
}

func (s *compositeSection) Analyze(in *Input) error {
	d, err := decode[survey.CompositeScoresData](in, survey.CompositeScores)
	if err != nil {
		return fmt.Errorf("composite-scores: %w", err)
	}
	s.data = d
	return nil
}

func (s *compositeSection) Data() any {
	d := compositeData{Cards: chartdata.ToScoreCards(s.data)}
	if s.data != nil {
		d.Matrix = chartdata.FromVariableMatrix(s.data.Correlations)
		d.Analysis = s.data.Analysis
	}
	return d
}

func (s *compositeSection) Render(w io.Writer) error {
	heading(w, "Composite Scores")

	if s.data == nil || len(s.data.Scores) == 0 {
		_, _ = fmt.Fprintf(w, "  No composite score data available.\n\n")
		return nil
	}

	tbl := NewTable(
		Column{Header: "Score"},
		Column{Header: "Mean", Align: AlignRight},
		Column{Header: "Std", Align: AlignRight},
		Column{Header: "Description", Wrap: 48},
	)
	for _, c := range chartdata.ToScoreCards(s.data) {
		tbl.AddRow(c.Title, c.Mean, c.Std, c.Description)
	}
	if err := tbl.Render(w); err != nil {
		return err
	}

	if m := chartdata.FromVariableMatrix(s.data.Correlations); len(m.RowVariables) > 0 {
		subheading(w, "Composite score correlations")
		if err := renderMatrix(w, m); err != nil {
			return err
		}
	}

	if a := strings.TrimSpace(s.data.Analysis); a != "" {
		subheading(w, "Analysis")
		for _, line := range strings.Split(a, "\n") {
			_, _ = fmt.Fprintf(w, "  %s\n", line)
		}
	}
	_, _ = fmt.Fprintln(w)
	return nil
}
