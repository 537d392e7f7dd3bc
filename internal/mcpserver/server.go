// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the survey backend and report sections as tools.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/surveydash/internal/fetcher"
	"github.com/davetashner/surveydash/internal/report"
)

// Config carries what the tools report about their data source.
type Config struct {
	APIURL  string
	Options report.Options
}

// New creates a configured MCP server with all surveydash tools registered.
func New(version string, f *fetcher.Fetcher, cfg Config) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "surveydash",
		Title:   "Surveydash - Survey Analytics",
		Version: version,
	}, nil)
	registerTools(server, &toolset{fetcher: f, apiURL: cfg.APIURL, opts: cfg.Options})
	return server
}

// Run creates and starts the MCP server on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, f *fetcher.Fetcher, cfg Config, transport mcp.Transport) error {
	return New(version, f, cfg).Run(ctx, transport)
}
