// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"fmt"
	"strings"

	"github.com/davetashner/surveydash/internal/report"
	"github.com/davetashner/surveydash/internal/survey"
)

// resolveResource maps a tool argument to a backend resource, naming the
// valid choices on failure.
func resolveResource(name string) (survey.Resource, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("resource is required (available: %s)", resourceNames())
	}
	r, err := survey.Parse(name)
	if err != nil {
		return "", fmt.Errorf("%w (available: %s)", err, resourceNames())
	}
	return r, nil
}

// resolveSections parses a comma-separated section list. An empty list
// selects every registered section; any unknown name is an error.
func resolveSections(csv string) ([]string, error) {
	names := splitAndTrim(csv)
	if len(names) == 0 {
		return report.List(), nil
	}
	for _, name := range names {
		if report.Get(name) == nil {
			return nil, fmt.Errorf("unknown section %q (available: %s)",
				name, strings.Join(report.List(), ", "))
		}
	}
	return names, nil
}

// resolveFormat defaults to json, which MCP clients parse most easily.
func resolveFormat(format string) (string, error) {
	format = strings.TrimSpace(format)
	if format == "" {
		return report.FormatJSON, nil
	}
	if err := report.ValidFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

func resourceNames() string {
	all := survey.All()
	names := make([]string, len(all))
	for i, r := range all {
		names[i] = r.String()
	}
	return strings.Join(names, ", ")
}

// splitAndTrim splits a comma-separated string and trims whitespace from each element.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
