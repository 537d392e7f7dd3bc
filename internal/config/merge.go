// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"time"

	"github.com/davetashner/surveydash/internal/api"
	"github.com/davetashner/surveydash/internal/fetcher"
	"github.com/davetashner/surveydash/internal/report"
)

// DefaultAddr is the dashboard listen address when none is configured.
const DefaultAddr = "127.0.0.1:8080"

// Settings is the fully resolved runtime configuration.
type Settings struct {
	APIURL       string
	Timeout      time.Duration
	FallbackMode fetcher.Mode
	OutputFormat string
	ClusterNames []string
	GlossaryFile string
	Addr         string
	Sections     []string
	Variable     string
	ClusterK     string
	SpreadLimit  int
}

// MergeConfigs overlays higher on lower. Only non-zero values in higher
// override lower.
func MergeConfigs(lower, higher *Config) *Config {
	merged := *lower

	if higher.APIURL != "" {
		merged.APIURL = higher.APIURL
	}
	if higher.Timeout != "" {
		merged.Timeout = higher.Timeout
	}
	if higher.FallbackMode != "" {
		merged.FallbackMode = higher.FallbackMode
	}
	if higher.OutputFormat != "" {
		merged.OutputFormat = higher.OutputFormat
	}
	if len(higher.ClusterNames) > 0 {
		merged.ClusterNames = higher.ClusterNames
	}
	if higher.GlossaryFile != "" {
		merged.GlossaryFile = higher.GlossaryFile
	}
	if higher.Addr != "" {
		merged.Addr = higher.Addr
	}
	if len(higher.Sections) > 0 {
		merged.Sections = higher.Sections
	}
	if higher.Report.Variable != "" {
		merged.Report.Variable = higher.Report.Variable
	}
	if higher.Report.ClusterK != "" {
		merged.Report.ClusterK = higher.Report.ClusterK
	}
	if higher.Report.SpreadLimit != 0 {
		merged.Report.SpreadLimit = higher.Report.SpreadLimit
	}

	return &merged
}

// Resolve loads the global config, the config in dir and the environment,
// in increasing precedence, and returns the merged result.
func Resolve(dir string) (*Config, error) {
	global, err := LoadGlobal()
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}
	local, err := Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	env, err := Env(dir)
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	return MergeConfigs(MergeConfigs(global, local), env), nil
}

// Merge combines file-based config with CLI-provided settings.
// CLI values take precedence; zero-value CLI fields fall through to file
// config and then to defaults.
func Merge(fileCfg *Config, cli Settings) Settings {
	result := cli

	if result.APIURL == "" {
		result.APIURL = fileCfg.APIURL
	}
	if result.APIURL == "" {
		result.APIURL = api.DefaultBaseURL
	}

	if result.Timeout == 0 && fileCfg.Timeout != "" {
		if d, err := time.ParseDuration(fileCfg.Timeout); err == nil {
			result.Timeout = d
		}
	}

	if result.FallbackMode == "" {
		if m, err := fetcher.ParseMode(fileCfg.FallbackMode); err == nil {
			result.FallbackMode = m
		} else {
			result.FallbackMode = fetcher.ModeDemo
		}
	}

	if result.OutputFormat == "" {
		result.OutputFormat = fileCfg.OutputFormat
	}
	if result.OutputFormat == "" {
		result.OutputFormat = report.FormatText
	}

	if len(result.ClusterNames) == 0 {
		result.ClusterNames = fileCfg.ClusterNames
	}
	if result.GlossaryFile == "" {
		result.GlossaryFile = fileCfg.GlossaryFile
	}

	if result.Addr == "" {
		result.Addr = fileCfg.Addr
	}
	if result.Addr == "" {
		result.Addr = DefaultAddr
	}

	if len(result.Sections) == 0 {
		result.Sections = fileCfg.Sections
	}
	if result.Variable == "" {
		result.Variable = fileCfg.Report.Variable
	}
	if result.ClusterK == "" {
		result.ClusterK = fileCfg.Report.ClusterK
	}
	if result.SpreadLimit == 0 {
		result.SpreadLimit = fileCfg.Report.SpreadLimit
	}

	return result
}

// ReportOptions returns the report options the settings describe. The
// glossary is loaded separately since it touches the filesystem.
func (s Settings) ReportOptions() report.Options {
	return report.Options{
		ClusterNames: s.ClusterNames,
		Variable:     s.Variable,
		ClusterK:     s.ClusterK,
		SpreadLimit:  s.SpreadLimit,
	}
}
