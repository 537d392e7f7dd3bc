// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_FlagsRegistered(t *testing.T) {
	assert.NotNil(t, serveCmd.Flags().Lookup("addr"))
	assert.Error(t, serveCmd.Args(serveCmd, []string{"extra"}))
}

func TestServeCmd_StopsOnCancel(t *testing.T) {
	isolate(t)
	backend := sampleBackend(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	t.Cleanup(func() {
		rootCmd.SetContext(context.Background())
		serveCmd.SetContext(context.Background())
	})
	serveCmd.SetContext(ctx)

	cmd, _, stderr := newTestCmd()
	cmd.SetArgs([]string{"serve", "--addr", "127.0.0.1:0", "--api-url", backend.URL})
	require.NoError(t, cmd.ExecuteContext(ctx))
	assert.Contains(t, stderr.String(), "Dashboard on http://127.0.0.1:0")
}
