// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davetashner/surveydash/internal/api"
	"github.com/davetashner/surveydash/internal/config"
	"github.com/davetashner/surveydash/internal/fetcher"
	"github.com/davetashner/surveydash/internal/glossary"
	"github.com/davetashner/surveydash/internal/redact"
	"github.com/davetashner/surveydash/internal/report"
	"github.com/davetashner/surveydash/internal/survey"
)

// runtime is what a command needs to talk to the backend.
type runtime struct {
	settings config.Settings
	fetcher  *fetcher.Fetcher
	options  report.Options
}

// displayURL is the backend URL with any credentials removed.
func (rt *runtime) displayURL() string {
	return redact.String(rt.settings.APIURL)
}

// loadRuntime resolves configuration (flags > environment > .env > repo
// config > global config > defaults) and builds the fetcher. overrides
// carries command-specific flag values; the global flags are applied on top.
func loadRuntime(cmd *cobra.Command, overrides config.Settings, notifier fetcher.Notifier) (*runtime, error) {
	fileCfg, err := config.Resolve(".")
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "surveydash: %v", err)
	}
	if err := config.Validate(fileCfg); err != nil {
		return nil, exitError(ExitInvalidArgs, "surveydash: %v", err)
	}

	cli := overrides
	cli.APIURL = apiURL
	if cmd.Flags().Changed("timeout") {
		if timeout <= 0 {
			return nil, exitError(ExitInvalidArgs, "surveydash: --timeout must be positive, got %s", timeout)
		}
		cli.Timeout = timeout
	}
	if fallbackMode != "" {
		m, err := fetcher.ParseMode(fallbackMode)
		if err != nil {
			return nil, exitError(ExitInvalidArgs, "surveydash: %v", err)
		}
		cli.FallbackMode = m
	}

	s := config.Merge(fileCfg, cli)

	g, err := glossary.Load(s.GlossaryFile)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "surveydash: %v", err)
	}
	opts := s.ReportOptions()
	opts.Glossary = g

	client := api.NewClient(s.APIURL, api.WithTimeout(s.Timeout))
	f := fetcher.New(client, fetcher.WithMode(s.FallbackMode), fetcher.WithNotifier(notifier))

	slog.Debug("resolved settings",
		"api_url", redact.String(s.APIURL),
		"timeout", s.Timeout,
		"fallback_mode", s.FallbackMode)

	return &runtime{settings: s, fetcher: f, options: opts}, nil
}

// terminalNotifier reports load failures on stderr, or through the logger
// when output is quieted.
func terminalNotifier(cmd *cobra.Command) fetcher.Notifier {
	if quiet {
		return fetcher.LogNotifier{}
	}
	return fetcher.NewWriterNotifier(cmd.ErrOrStderr())
}

// loadOutcome maps resolved states to an exit code: every load succeeded,
// some failed, or none produced data.
func loadOutcome(states map[survey.Resource]fetcher.State[json.RawMessage]) int {
	failed, empty := 0, 0
	for _, st := range states {
		if st.Error != "" {
			failed++
		}
		if !st.HasData() {
			empty++
		}
	}
	switch {
	case failed == 0:
		return ExitOK
	case empty == len(states):
		return ExitTotalFailure
	default:
		return ExitPartialFailure
	}
}

// outcomeError returns the exit error for states, or nil on full success.
func outcomeError(states map[survey.Resource]fetcher.State[json.RawMessage]) error {
	code := loadOutcome(states)
	if code == ExitOK {
		return nil
	}
	return exitError(code, "")
}

// resourceNames lists every resource name, comma-separated.
func resourceNames() string {
	all := survey.All()
	names := make([]string, len(all))
	for i, r := range all {
		names[i] = r.String()
	}
	return strings.Join(names, ", ")
}
