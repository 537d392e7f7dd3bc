// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package api

import (
	"errors"
	"fmt"
)

// TransportError reports a request that never produced an HTTP response:
// connection refused, DNS failure, timeout, cancelled context.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports a response whose status is outside 200-299.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// ErrResponseTooLarge is wrapped by a DecodeError when a 2xx body exceeds
// the client's size limit.
var ErrResponseTooLarge = errors.New("response too large")

// DecodeError reports a 2xx response whose body is not valid JSON or is too
// large to read.
type DecodeError struct {
	URL     string
	Snippet string
	Err     error
}

func (e *DecodeError) Error() string {
	if errors.Is(e.Err, ErrResponseTooLarge) {
		return fmt.Sprintf("%v from %s", e.Err, e.URL)
	}
	if e.Snippet == "" {
		return fmt.Sprintf("invalid JSON from %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("invalid JSON from %s: %v (body %q)", e.URL, e.Err, e.Snippet)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Kind classifies err into one of the fetch failure categories:
// "transport", "status", "decode", or "" when err is nil or unrecognized.
func Kind(err error) string {
	var te *TransportError
	var se *StatusError
	var de *DecodeError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &se):
		return "status"
	case errors.As(err, &de):
		return "decode"
	case errors.As(err, &te):
		return "transport"
	default:
		return ""
	}
}
