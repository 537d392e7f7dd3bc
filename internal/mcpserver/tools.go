// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/surveydash/internal/fallback"
	"github.com/davetashner/surveydash/internal/fetcher"
	"github.com/davetashner/surveydash/internal/report"
	"github.com/davetashner/surveydash/internal/survey"
)

// FetchInput is the input schema for the fetch_resource MCP tool.
type FetchInput struct {
	Resource string `json:"resource" jsonschema:"Backend resource to load, e.g. demographics or /clustering"`
}

// ReportInput is the input schema for the report MCP tool.
type ReportInput struct {
	Sections string `json:"sections,omitempty" jsonschema:"Comma-separated list of report sections to include (default: all)"`
	Format   string `json:"format,omitempty" jsonschema:"Output format: json or text (default: json)"`
	Variable string `json:"variable,omitempty" jsonschema:"Variable broken down by group and partnership type (default: AU)"`
	ClusterK string `json:"cluster_k,omitempty" jsonschema:"Clustering solution to show, e.g. k_3"`
}

// ListInput is the input schema for the list tools, which take no arguments.
type ListInput struct{}

// resourceInfo describes one backend resource for list_resources.
type resourceInfo struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	URL    string `json:"url"`
	Sample bool   `json:"sample"`
}

// sectionInfo describes one report section for list_sections.
type sectionInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Resources   []string `json:"resources"`
}

// toolset binds the tool handlers to a fetcher.
type toolset struct {
	fetcher *fetcher.Fetcher
	apiURL  string
	opts    report.Options
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// readOnly marks a tool that only reads from the backend.
func readOnly() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(true),
	}
}

// registerTools adds all surveydash tools to the MCP server.
func registerTools(server *mcp.Server, ts *toolset) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_resources",
		Description: "List the survey backend resources with their endpoint URLs and whether sample data exists for each.",
		Annotations: readOnly(),
	}, ts.handleListResources)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_sections",
		Description: "List the report sections and the backend resources each one reads.",
		Annotations: readOnly(),
	}, ts.handleListSections)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "fetch_resource",
		Description: "Load one survey backend resource. Returns the load state: data, error and whether demo data was substituted.",
		Annotations: readOnly(),
	}, ts.handleFetch)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "report",
		Description: "Generate a survey analytics report covering demographics, clustering, technology, partnership, correlation and composite score results.",
		Annotations: readOnly(),
	}, ts.handleReport)
}

func (ts *toolset) handleListResources(_ context.Context, _ *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, any, error) {
	var out []resourceInfo
	for _, r := range survey.All() {
		out = append(out, resourceInfo{
			Name:   r.String(),
			Path:   r.Path(),
			URL:    ts.apiURL + r.Path(),
			Sample: fallback.Has(r),
		})
	}
	return jsonResult(out)
}

func (ts *toolset) handleListSections(_ context.Context, _ *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, any, error) {
	var out []sectionInfo
	for _, name := range report.List() {
		sec := report.Get(name)
		info := sectionInfo{Name: name, Description: sec.Description()}
		for _, r := range sec.Resources() {
			info.Resources = append(info.Resources, r.String())
		}
		out = append(out, info)
	}
	return jsonResult(out)
}

func (ts *toolset) handleFetch(ctx context.Context, _ *mcp.CallToolRequest, input FetchInput) (*mcp.CallToolResult, any, error) {
	r, err := resolveResource(input.Resource)
	if err != nil {
		return nil, nil, err
	}

	st := fetcher.Fetch[json.RawMessage](ctx, ts.fetcher, r)
	res, _, err := jsonResult(st)
	if err != nil {
		return nil, nil, err
	}
	if !st.HasData() {
		res.IsError = true
	}
	return res, nil, nil
}

func (ts *toolset) handleReport(ctx context.Context, _ *mcp.CallToolRequest, input ReportInput) (*mcp.CallToolResult, any, error) {
	sections, err := resolveSections(input.Sections)
	if err != nil {
		return nil, nil, err
	}
	format, err := resolveFormat(input.Format)
	if err != nil {
		return nil, nil, err
	}

	opts := ts.opts
	if input.Variable != "" {
		opts.Variable = input.Variable
	}
	if input.ClusterK != "" {
		opts.ClusterK = input.ClusterK
	}

	states := fetcher.LoadAll(ctx, ts.fetcher, report.ResourcesFor(sections))
	in := report.NewInput(states, opts)
	meta := report.Meta{
		APIURL:       ts.apiURL,
		FallbackMode: string(ts.fetcher.Mode()),
		Generated:    time.Now(),
	}
	slog.Debug("mcp report", "sections", sections, "format", format)

	var buf bytes.Buffer
	switch format {
	case report.FormatText:
		err = report.RenderText(in, meta, sections, &buf)
	default:
		err = report.RenderJSON(in, meta, sections, &buf)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("report failed: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: buf.String()},
		},
	}, nil, nil
}

// jsonResult wraps v as indented JSON text content.
func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("JSON marshal: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}
