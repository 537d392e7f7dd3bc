// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davetashner/surveydash/internal/config"
	"github.com/davetashner/surveydash/internal/dashboard"
	"github.com/davetashner/surveydash/internal/fetcher"
)

// Serve-specific flag values.
var serveAddr string

// serveCmd runs the HTML dashboard.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTML dashboard",
	Long: `Serve a local HTML dashboard with one page per report section and SVG
charts. Every page load fetches its resources from the backend again; pages
built from demo data carry a "Using demo data" banner.

Routes:
  /                     overview
  /pages/{section}      a report section
  /api/{resource}       a resource load state as JSON
  /charts/{chart}.svg   a chart
  /healthz              liveness`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default 127.0.0.1:8080)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	rt, err := loadRuntime(cmd, config.Settings{Addr: serveAddr}, fetcher.LogNotifier{})
	if err != nil {
		return err
	}

	srv, err := dashboard.New(rt.fetcher, dashboard.Config{
		APIURL:  rt.displayURL(),
		Options: rt.options,
	})
	if err != nil {
		return fmt.Errorf("surveydash: %v", err)
	}

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Dashboard on http://%s (backend %s)\n", rt.settings.Addr, rt.displayURL())
	if err := srv.ListenAndServe(cmd.Context(), rt.settings.Addr); err != nil {
		return fmt.Errorf("surveydash: %v", err)
	}
	return nil
}
