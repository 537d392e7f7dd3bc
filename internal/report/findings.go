// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/davetashner/surveydash/internal/glossary"
	"github.com/davetashner/surveydash/internal/survey"
)

// findingsSection lists the key findings of the comprehensive report.
type findingsSection struct {
	findings []survey.KeyFinding
	glossary *glossary.Glossary
}

type findingJSON struct {
	Category string          `json:"category"`
	Finding  string          `json:"finding"`
	Terms    []glossary.Term `json:"terms,omitempty"`
}

func (s *findingsSection) Name() string        { return "findings" }
func (s *findingsSection) Description() string { return "Key findings" }

func (s *findingsSection) Resources() []survey.Resource {
	return []survey.Resource{survey.ComprehensiveReport}
}

func (s *findingsSection) Analyze(in *Input) error {
	d, err := decode[survey.ComprehensiveReportData](in, survey.ComprehensiveReport)
	if err != nil {
		return fmt.Errorf("findings: %w", err)
	}
	s.findings = d.KeyFindings
	s.glossary = in.Options.Glossary
	return nil
}

func (s *findingsSection) Data() any {
	out := make([]findingJSON, 0, len(s.findings))
	for _, f := range s.findings {
		out = append(out, findingJSON{Category: f.Category, Finding: f.Finding, Terms: s.glossary.Mentioned(f.Finding)})
	}
	return out
}

func (s *findingsSection) Render(w io.Writer) error {
	heading(w, "Key Findings")

	if len(s.findings) == 0 {
		_, _ = fmt.Fprintf(w, "  No key findings available.\n\n")
		return nil
	}

	tbl := NewTable(
		Column{Header: "Category"},
		Column{Header: "Finding", Wrap: 72},
	)
	var terms []glossary.Term
	seen := make(map[string]bool)
	for _, f := range s.findings {
		tbl.AddRow(f.Category, f.Finding)
		for _, t := range s.glossary.Mentioned(f.Finding) {
			if !seen[t.Abbr] {
				seen[t.Abbr] = true
				terms = append(terms, t)
			}
		}
	}
	if err := tbl.Render(w); err != nil {
		return err
	}

	if len(terms) > 0 {
		subheading(w, "Abbreviations")
		for _, t := range terms {
			_, _ = fmt.Fprintf(w, "  %-6s %s\n", t.Abbr, t.Full)
		}
	}
	_, _ = fmt.Fprintln(w)
	return nil
}
