// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/davetashner/surveydash/internal/redact"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		var ece *exitCodeError
		if errors.As(err, &ece) {
			if ece.msg != "" {
				fmt.Fprintln(os.Stderr, redact.String(ece.msg))
			}
			os.Exit(ece.code)
		}
		fmt.Fprintln(os.Stderr, redact.String(err.Error()))
		os.Exit(1)
	}
}
