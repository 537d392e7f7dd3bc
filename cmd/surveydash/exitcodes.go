// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for the surveydash CLI.
const (
	ExitOK             = 0 // Every resource loaded from the backend.
	ExitInvalidArgs    = 1 // Invalid arguments or configuration.
	ExitPartialFailure = 2 // Some resources failed, output written anyway.
	ExitTotalFailure   = 3 // No resource produced any data.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitPartialFailure:
			msg = "surveydash: some resources failed to load"
		case ExitTotalFailure:
			msg = "surveydash: no resource could be loaded"
		default:
			msg = "surveydash: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
