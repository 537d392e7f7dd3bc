// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_Live(t *testing.T) {
	isolate(t)
	backend := sampleBackend(t)

	out, stderr, err := execute(t, "fetch", "demographics", "--api-url", backend.URL)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	var st map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, "demographics", st["resource"])
	assert.Nil(t, st["error"])
	assert.Equal(t, false, st["usedFallback"])
	assert.Equal(t, false, st["loading"])
	assert.NotNil(t, st["data"])
}

func TestFetch_FallbackIsPartialFailure(t *testing.T) {
	isolate(t)
	backend := failingBackend(t)

	out, stderr, err := execute(t, "fetch", "/health", "--api-url", backend.URL)
	require.Error(t, err)

	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitPartialFailure, ece.ExitCode())

	var st map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, "HTTP error! status: 500", st["error"])
	assert.Equal(t, true, st["usedFallback"])
	assert.Contains(t, stderr, "Failed to load health: HTTP error! status: 500. Showing sample data instead.")
}

func TestFetch_StrictIsTotalFailure(t *testing.T) {
	isolate(t)
	backend := failingBackend(t)

	out, _, err := execute(t, "fetch", "clustering", "--api-url", backend.URL, "--fallback-mode", "strict")
	require.Error(t, err)

	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitTotalFailure, ece.ExitCode())
	assert.Contains(t, out, `"data": null`)
}

func TestFetch_DataOnly(t *testing.T) {
	isolate(t)
	backend := sampleBackend(t)

	out, _, err := execute(t, "fetch", "health", "--data-only", "--api-url", backend.URL)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.NotContains(t, doc, "usedFallback")
	assert.Contains(t, doc, "status")
}

func TestFetch_InvalidArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown resource", []string{"fetch", "users"}, "unknown resource"},
		{"bad fallback mode", []string{"fetch", "health", "--fallback-mode", "maybe"}, "maybe"},
		{"non-positive timeout", []string{"fetch", "health", "--timeout", "0s"}, "--timeout must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)

			var ece *exitCodeError
			require.True(t, errors.As(err, &ece))
			assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
			assert.Contains(t, ece.Error(), tt.want)
		})
	}
}

func TestFetch_EnvironmentSelectsBackend(t *testing.T) {
	isolate(t)
	backend := sampleBackend(t)
	t.Setenv("SURVEYDASH_API_URL", backend.URL)

	_, _, err := execute(t, "fetch", "health")
	assert.NoError(t, err)
}
