// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

// Package log configures structured logging for surveydash using log/slog.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format selects the slog handler.
type Format string

const (
	// FormatText writes logfmt-style key=value lines.
	FormatText Format = "text"
	// FormatJSON writes one JSON object per line.
	FormatJSON Format = "json"
)

// ParseFormat validates a --log-format value. The empty string selects text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid log format %q (must be text or json)", s)
	}
}

// Setup configures the default slog logger based on verbosity flags.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
//
// Output is written to stderr using slog.TextHandler.
func Setup(verbose, quiet bool) {
	SetupWith(os.Stderr, FormatText, verbose, quiet)
}

// SetupWith is Setup with an explicit destination and handler format.
func SetupWith(w io.Writer, format Format, verbose, quiet bool) {
	opts := &slog.HandlerOptions{Level: level(verbose, quiet)}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
