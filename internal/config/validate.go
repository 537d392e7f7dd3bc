// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/davetashner/surveydash/internal/fetcher"
	"github.com/davetashner/surveydash/internal/report"
)

var clusterKPattern = regexp.MustCompile(`^k_[1-9][0-9]*$`)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.APIURL != "" {
		u, err := url.Parse(cfg.APIURL)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("api_url: %v", err))
		case u.Scheme != "http" && u.Scheme != "https":
			errs = append(errs, fmt.Sprintf("api_url: scheme must be http or https, got %q", u.Scheme))
		case u.Host == "":
			errs = append(errs, fmt.Sprintf("api_url: missing host in %q", cfg.APIURL))
		}
	}

	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("timeout: %v", err))
		case d <= 0:
			errs = append(errs, fmt.Sprintf("timeout: must be positive, got %s", cfg.Timeout))
		}
	}

	if _, err := fetcher.ParseMode(cfg.FallbackMode); err != nil {
		errs = append(errs, fmt.Sprintf("fallback_mode: %v", err))
	}

	if cfg.OutputFormat != "" {
		if err := report.ValidFormat(cfg.OutputFormat); err != nil {
			errs = append(errs, fmt.Sprintf("output_format: %v", err))
		}
	}

	for i, name := range cfg.ClusterNames {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Sprintf("cluster_names[%d]: must not be empty", i))
		}
	}

	if cfg.Addr != "" {
		if _, _, err := net.SplitHostPort(cfg.Addr); err != nil {
			errs = append(errs, fmt.Sprintf("addr: %v", err))
		}
	}

	for _, name := range cfg.Sections {
		if report.Get(name) == nil {
			errs = append(errs, fmt.Sprintf("sections: unknown section %q (available: %s)", name, strings.Join(report.List(), ", ")))
		}
	}

	if cfg.Report.ClusterK != "" && !clusterKPattern.MatchString(cfg.Report.ClusterK) {
		errs = append(errs, fmt.Sprintf("report.cluster_k: must look like k_3, got %q", cfg.Report.ClusterK))
	}

	if cfg.Report.SpreadLimit < 0 {
		errs = append(errs, fmt.Sprintf("report.spread_limit: must be non-negative, got %d", cfg.Report.SpreadLimit))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
