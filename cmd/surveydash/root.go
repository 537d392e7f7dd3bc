// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	surveylog "github.com/davetashner/surveydash/internal/log"
)

// Global flag values.
var (
	verbose      bool
	quiet        bool
	noColor      bool
	apiURL       string
	timeout      time.Duration
	fallbackMode string
	logFormat    string
)

// rootCmd is the base command for surveydash.
var rootCmd = &cobra.Command{
	Use:   "surveydash",
	Short: "Explore survey analytics from the terminal or a local dashboard",
	Long: `Surveydash reads the survey analytics backend (demographics, clustering,
technology, partnership and correlation results) and presents it as
terminal reports, a local HTML dashboard with charts, or MCP tools.
When the backend is unreachable it falls back to bundled demo data.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		format, err := surveylog.ParseFormat(logFormat)
		if err != nil {
			return exitError(ExitInvalidArgs, "surveydash: %v", err)
		}
		surveylog.SetupWith(os.Stderr, format, verbose, quiet)
		if noColor {
			color.NoColor = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "analytics backend base URL (default http://localhost:5001/api)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per-request timeout (default none)")
	rootCmd.PersistentFlags().StringVar(&fallbackMode, "fallback-mode", "", "on load failure: demo (serve sample data) or strict")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
