// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

// Package config handles .surveydash.yaml configuration files.
package config

// Config represents the contents of a .surveydash.yaml file.
type Config struct {
	APIURL       string       `yaml:"api_url,omitempty"`
	Timeout      string       `yaml:"timeout,omitempty"`
	FallbackMode string       `yaml:"fallback_mode,omitempty"`
	OutputFormat string       `yaml:"output_format,omitempty"`
	ClusterNames []string     `yaml:"cluster_names,omitempty"`
	GlossaryFile string       `yaml:"glossary_file,omitempty"`
	Addr         string       `yaml:"addr,omitempty"`
	Sections     []string     `yaml:"sections,omitempty"`
	Report       ReportConfig `yaml:"report,omitempty"`
}

// ReportConfig holds report tuning settings in the config file.
type ReportConfig struct {
	// Variable is broken down by age group, business field and partnership.
	Variable string `yaml:"variable,omitempty"`
	// ClusterK selects the clustering solution, e.g. "k_3".
	ClusterK    string `yaml:"cluster_k,omitempty"`
	SpreadLimit int    `yaml:"spread_limit,omitempty"`
}

// FileName is the expected config file name in the working directory.
const FileName = ".surveydash.yaml"
