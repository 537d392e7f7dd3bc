// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootHelp(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "survey analytics backend")
	for _, sub := range []string{"fetch", "report", "serve", "resources", "config", "mcp", "version"} {
		assert.Contains(t, out, sub, "root help missing %s subcommand", sub)
	}
}

func TestGlobalFlags(t *testing.T) {
	for _, name := range []string{"verbose", "quiet", "no-color", "api-url", "timeout", "fallback-mode", "log-format"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "global flag --%s not registered", name)
	}

	v := rootCmd.PersistentFlags().ShorthandLookup("v")
	require.NotNil(t, v)
	assert.Equal(t, "verbose", v.Name)
	q := rootCmd.PersistentFlags().ShorthandLookup("q")
	require.NotNil(t, q)
	assert.Equal(t, "quiet", q.Name)
}

func TestRoot_InvalidLogFormat(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "version", "--log-format", "xml")
	require.Error(t, err)

	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
	assert.Contains(t, ece.Error(), "invalid log format")
}

func TestVersionDefault(t *testing.T) {
	assert.Equal(t, "dev", Version)
}

func TestVersionSubcommand(t *testing.T) {
	isolate(t)
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "surveydash dev", strings.TrimSpace(out))
}

func TestExitError_DefaultMessages(t *testing.T) {
	assert.Equal(t, "surveydash: some resources failed to load", exitError(ExitPartialFailure, "").Error())
	assert.Equal(t, "surveydash: no resource could be loaded", exitError(ExitTotalFailure, "").Error())
	assert.Equal(t, "surveydash: bad", exitError(ExitInvalidArgs, "surveydash: %s", "bad").Error())
}
