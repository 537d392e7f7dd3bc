// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davetashner/surveydash/internal/config"
	"github.com/davetashner/surveydash/internal/fetcher"
	"github.com/davetashner/surveydash/internal/report"
)

// Report-specific flag values.
var (
	reportFormat      string
	reportOutput      string
	reportVariable    string
	reportClusterK    string
	reportSpreadLimit int
)

// reportCmd renders report sections from the backend resources.
var reportCmd = &cobra.Command{
	Use:   "report [section...]",
	Short: "Render survey analytics report sections",
	Long: `Load the backend resources the requested sections read and render them as
terminal tables (--format text) or machine-readable JSON (--format json).
With no arguments every section is rendered.

Sections: overview, demographics, survey-analysis, comparative, clustering,
technology, partnership, correlational, composite-scores, findings.

Sections whose data came from the bundled demo data are marked with a
banner; sections with no data at all (strict mode) are listed as skipped.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "output format: text or json (default text)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "output file path (default: stdout)")
	reportCmd.Flags().StringVar(&reportVariable, "variable", "", "variable broken down by group and partnership type (default AU)")
	reportCmd.Flags().StringVar(&reportClusterK, "cluster-k", "", "clustering solution to show, e.g. k_3")
	reportCmd.Flags().IntVar(&reportSpreadLimit, "spread-limit", 0, "max variables in the cluster spread table")
}

func runReport(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime(cmd, config.Settings{
		OutputFormat: reportFormat,
		Sections:     args,
		Variable:     reportVariable,
		ClusterK:     reportClusterK,
		SpreadLimit:  reportSpreadLimit,
	}, terminalNotifier(cmd))
	if err != nil {
		return err
	}
	s := rt.settings

	if err := report.ValidFormat(s.OutputFormat); err != nil {
		return exitError(ExitInvalidArgs, "surveydash: %v", err)
	}
	for _, name := range s.Sections {
		if report.Get(name) == nil {
			return exitError(ExitInvalidArgs, "surveydash: unknown section %q (available: %s)",
				name, strings.Join(report.List(), ", "))
		}
	}
	sections := report.ResolveSections(s.Sections)

	resources := report.ResourcesFor(sections)
	slog.Info("generating report", "sections", len(sections), "resources", len(resources))
	states := fetcher.LoadAll(cmd.Context(), rt.fetcher, resources)

	in := report.NewInput(states, rt.options)
	meta := report.Meta{
		APIURL:       rt.displayURL(),
		FallbackMode: string(s.FallbackMode),
	}

	w := cmd.OutOrStdout()
	if reportOutput != "" {
		f, createErr := os.Create(reportOutput) //nolint:gosec // user-specified output path
		if createErr != nil {
			return exitError(ExitInvalidArgs, "surveydash: cannot create output file %q (%v)", reportOutput, createErr)
		}
		defer f.Close() //nolint:errcheck // best-effort close on output file
		w = f
	}

	if err := renderReport(in, meta, sections, s.OutputFormat, w); err != nil {
		return fmt.Errorf("surveydash: report failed (%v)", err)
	}
	return outcomeError(states)
}

func renderReport(in *report.Input, meta report.Meta, sections []string, format string, w io.Writer) error {
	if format == report.FormatJSON {
		return report.RenderJSON(in, meta, sections, w)
	}
	return report.RenderText(in, meta, sections, w)
}
