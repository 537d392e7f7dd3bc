// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/surveydash/internal/config"
	"github.com/davetashner/surveydash/internal/fallback"
	"github.com/davetashner/surveydash/internal/survey"
)

// sampleBackend serves the sample documents as if they were live.
func sampleBackend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res, err := survey.Parse(r.URL.Path)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(fallback.Lookup(res))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// failingBackend answers every request with a 500.
func failingBackend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// isolate runs the test in an empty working directory with no global
// config and no surveydash environment variables.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, key := range []string{config.EnvAPIURL, config.EnvTimeout, config.EnvFallbackMode} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	resetFlags()
	return dir
}

// resetFlags restores every flag of every command to its default value.
func resetFlags() {
	var reset func(c *cobra.Command)
	reset = func(c *cobra.Command) {
		for _, fs := range []*pflag.FlagSet{c.PersistentFlags(), c.Flags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				f.Changed = false
				_ = f.Value.Set(f.DefValue)
			})
		}
		for _, sub := range c.Commands() {
			reset(sub)
		}
	}
	reset(rootCmd)
}

// newTestCmd redirects rootCmd's output to buffers.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

// execute runs rootCmd with args and returns its output.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd, stdout, stderr := newTestCmd()
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
