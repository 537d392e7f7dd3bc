// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/davetashner/surveydash/internal/config"
	"github.com/davetashner/surveydash/internal/fetcher"
	"github.com/davetashner/surveydash/internal/mcpserver"
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running surveydash as an MCP server, exposing the backend resources and report sections to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing surveydash tools:
  - list_resources: List backend resources and demo data availability
  - list_sections:  List report sections and the resources they read
  - fetch_resource: Load one resource and return its load state
  - report:         Render report sections as JSON or text

The server communicates using the Model Context Protocol (MCP) over stdio
transport. Load failures are logged to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rt, err := loadRuntime(cmd, config.Settings{}, fetcher.LogNotifier{})
		if err != nil {
			return err
		}
		return mcpserver.Run(cmd.Context(), Version, rt.fetcher, mcpserver.Config{
			APIURL:  rt.displayURL(),
			Options: rt.options,
		}, &mcp.StdioTransport{})
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
