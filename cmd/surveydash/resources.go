// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/davetashner/surveydash/internal/config"
	"github.com/davetashner/surveydash/internal/fallback"
	"github.com/davetashner/surveydash/internal/fetcher"
	"github.com/davetashner/surveydash/internal/report"
	"github.com/davetashner/surveydash/internal/survey"
)

// Resources-specific flag values.
var resourcesCheck bool

// resourcesCmd lists the backend resources.
var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "List backend resources",
	Long: `List the logical backend resources with their endpoint URL and whether
bundled demo data exists for each.

With --check every resource is loaded once and its status shown: ok,
sample (the load failed and demo data was used) or failed.`,
	Args: cobra.NoArgs,
	RunE: runResources,
}

func init() {
	resourcesCmd.Flags().BoolVar(&resourcesCheck, "check", false, "load every resource and show its status")
}

func runResources(cmd *cobra.Command, _ []string) error {
	rt, err := loadRuntime(cmd, config.Settings{}, fetcher.LogNotifier{})
	if err != nil {
		return err
	}

	if resourcesCheck {
		return checkResources(cmd, rt)
	}

	tbl := report.NewTable(
		report.Column{Header: "Resource"},
		report.Column{Header: "URL"},
		report.Column{Header: "Demo data"},
	)
	for _, r := range survey.All() {
		demo := "no"
		if fallback.Has(r) {
			demo = "yes"
		}
		tbl.AddRow(r.String(), rt.displayURL()+r.Path(), demo)
	}
	return tbl.Render(cmd.OutOrStdout())
}

// checkResources loads every resource and prints its load status.
func checkResources(cmd *cobra.Command, rt *runtime) error {
	states := fetcher.LoadAll(cmd.Context(), rt.fetcher, survey.All())
	in := report.NewInput(states, rt.options)

	tbl := report.NewTable(
		report.Column{Header: "Resource"},
		report.Column{Header: "Status", Color: report.ColorStatus},
		report.Column{Header: "Error"},
	)
	for _, rs := range report.ResourceStatus(in) {
		tbl.AddRow(rs.Resource.String(), rs.Status, rs.Error)
	}
	if err := tbl.Render(cmd.OutOrStdout()); err != nil {
		return err
	}
	return outcomeError(states)
}
