// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davetashner/surveydash/internal/config"
	"github.com/davetashner/surveydash/internal/fetcher"
	"github.com/davetashner/surveydash/internal/survey"
)

// Fetch-specific flag values.
var fetchDataOnly bool

// fetchCmd loads a single backend resource.
var fetchCmd = &cobra.Command{
	Use:   "fetch <resource>",
	Short: "Load one backend resource and print its state",
	Long: `Load one backend resource and print its load state as JSON:

  {"resource": ..., "data": ..., "loading": false, "error": null, "usedFallback": false}

When the load fails in demo mode, data holds the bundled sample document,
error carries the failure message and usedFallback is true. The command
then exits with code 2 (3 if no data could be produced at all).

Resources: health, demographics, survey-analysis, comparative-analysis,
clustering, technology-analysis, partnership-analysis, comprehensive-report,
correlational-analysis, composite-scores.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchDataOnly, "data-only", false, "print only the data document")
}

func runFetch(cmd *cobra.Command, args []string) error {
	r, err := survey.Parse(args[0])
	if err != nil {
		return exitError(ExitInvalidArgs, "surveydash: %v (available: %s)", err, resourceNames())
	}

	rt, err := loadRuntime(cmd, config.Settings{}, terminalNotifier(cmd))
	if err != nil {
		return err
	}

	st := fetcher.Fetch[json.RawMessage](cmd.Context(), rt.fetcher, r)

	var v any = st
	if fetchDataOnly {
		v = st.Data
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("surveydash: JSON marshal (%v)", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))

	return outcomeError(map[survey.Resource]fetcher.State[json.RawMessage]{r: st})
}
