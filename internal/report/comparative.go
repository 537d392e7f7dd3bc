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

// comparativeSection reports gender t-tests and group breakdowns of one
// variable.
type comparativeSection struct {
	data     *survey.ComparativeData
	variable string
}

type comparativeData struct {
	Variable       string                `json:"variable"`
	Gender         []chartdata.GenderRow `json:"gender"`
	AgeGroups      []chartdata.GroupRow  `json:"age_groups"`
	BusinessFields []chartdata.GroupRow  `json:"business_fields"`
}

func (s *comparativeSection) Name() string        { return "comparative" }
func (s *comparativeSection) Description() string { return "Comparative analysis by gender, age and business field" }

func (s *comparativeSection) Resources() []survey.Resource {
	return []survey.Resource{survey.ComparativeAnalysis}
}

func (s *comparativeSection) Analyze(in *Input) error {
	d, err := decode[survey.ComparativeData](in, survey.ComparativeAnalysis)
	if err != nil {
		return fmt.Errorf("comparative: %w", err)
	}
	s.data = d
	s.variable = in.Options.Variable
	return nil
}

func (s *comparativeSection) Data() any {
	return comparativeData{
		Variable:       s.variable,
		Gender:         chartdata.ToGenderSeries(s.data),
		AgeGroups:      chartdata.ToGroupSeries(s.data, chartdata.ByAgeGroup, s.variable),
		BusinessFields: chartdata.ToGroupSeries(s.data, chartdata.ByBusinessField, s.variable),
	}
}

func (s *comparativeSection) Render(w io.Writer) error {
	heading(w, "Comparative Analysis")

	gender := chartdata.ToGenderSeries(s.data)
	age := chartdata.ToGroupSeries(s.data, chartdata.ByAgeGroup, s.variable)
	biz := chartdata.ToGroupSeries(s.data, chartdata.ByBusinessField, s.variable)
	if len(gender) == 0 && len(age) == 0 && len(biz) == 0 {
		_, _ = fmt.Fprintf(w, "  No comparative data available.\n\n")
		return nil
	}

	if len(gender) > 0 {
		subheading(w, "Gender differences")
		tbl := NewTable(
			Column{Header: "Variable"},
			Column{Header: "Male", Align: AlignRight},
			Column{Header: "Female", Align: AlignRight},
			Column{Header: "p-value", Align: AlignRight},
			Column{Header: "Significant", Color: ColorSignificance},
		)
		for _, g := range gender {
			tbl.AddRow(g.Variable, f2(g.Male), f2(g.Female), chartdata.FormatPValue(g.PValue), yesNo(g.Significant))
		}
		if err := tbl.Render(w); err != nil {
			return err
		}
	}

	for _, part := range []struct {
		title string
		rows  []chartdata.GroupRow
	}{
		{"Age groups (" + s.variable + ")", age},
		{"Business fields (" + s.variable + ")", biz},
	} {
		if len(part.rows) == 0 {
			continue
		}
		subheading(w, part.title)
		tbl := NewTable(
			Column{Header: "Group"},
			Column{Header: "Mean", Align: AlignRight},
			Column{Header: "Std", Align: AlignRight},
			Column{Header: "Count", Align: AlignRight},
		)
		for _, r := range part.rows {
			tbl.AddRow(r.Group, f2(r.Mean), f2(r.Std), strconv.Itoa(r.Count))
		}
		if err := tbl.Render(w); err != nil {
			return err
		}
	}
	_, _ = fmt.Fprintln(w)
	return nil
}
