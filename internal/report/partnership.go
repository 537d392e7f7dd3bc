// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/davetashner/surveydash/internal/chartdata"
	"github.com/davetashner/surveydash/internal/survey"
)

// partnershipSection reports partnership types and their impact on one
// variable.
type partnershipSection struct {
	data     *survey.PartnershipAnalysisData
	variable string
}

type partnershipData struct {
	Variable string                 `json:"variable"`
	Double   []chartdata.ChartPoint `json:"double_partnership"`
	Triple   []chartdata.ChartPoint `json:"triple_partnership"`
	Impact   []chartdata.ImpactRow  `json:"impact"`
}

func (s *partnershipSection) Name() string        { return "partnership" }
func (s *partnershipSection) Description() string { return "Partnership analysis" }

func (s *partnershipSection) Resources() []survey.Resource {
	return []survey.Resource{survey.PartnershipAnalysis}
}

func (s *partnershipSection) Analyze(in *Input) error {
	d, err := decode[survey.PartnershipAnalysisData](in, survey.PartnershipAnalysis)
	if err != nil {
		return fmt.Errorf("partnership: %w", err)
	}
	s.data = d
	s.variable = in.Options.Variable
	return nil
}

func (s *partnershipSection) Data() any {
	return partnershipData{
		Variable: s.variable,
		Double:   chartdata.PartnershipPoints(s.data, chartdata.DoublePartnership),
		Triple:   chartdata.PartnershipPoints(s.data, chartdata.TriplePartnership),
		Impact:   chartdata.ToPartnershipImpact(s.data, chartdata.DoublePartnership, s.variable),
	}
}

func (s *partnershipSection) Render(w io.Writer) error {
	heading(w, "Partnership Analysis")

	d := s.Data().(partnershipData)
	if len(d.Double) == 0 && len(d.Triple) == 0 && len(d.Impact) == 0 {
		_, _ = fmt.Fprintf(w, "  No partnership data available.\n\n")
		return nil
	}

	for _, part := range []struct {
		title  string
		points []chartdata.ChartPoint
	}{
		{"Double partnership (DP)", d.Double},
		{"Triple partnership (TP)", d.Triple},
	} {
		if len(part.points) == 0 {
			continue
		}
		subheading(w, part.title)
		tbl := NewTable(
			Column{Header: "Partnership"},
			Column{Header: "Count", Align: AlignRight},
			Column{Header: "Percent", Align: AlignRight},
		)
		for _, p := range part.points {
			share := "-"
			if p.Percentage != nil {
				share = pct(*p.Percentage)
			}
			tbl.AddRow(p.Name, count(p.Value), share)
		}
		if err := tbl.Render(w); err != nil {
			return err
		}
	}

	if len(d.Impact) > 0 {
		subheading(w, "Impact on "+s.variable)
		tbl := NewTable(
			Column{Header: "Partnership"},
			Column{Header: "Mean score", Align: AlignRight},
			Column{Header: "Count", Align: AlignRight},
		)
		for _, r := range d.Impact {
			tbl.AddRow(r.Partnership, f2(r.Score), strconv.Itoa(r.Count))
		}
		if err := tbl.Render(w); err != nil {
			return err
		}
	}
	_, _ = fmt.Fprintln(w)
	return nil
}
