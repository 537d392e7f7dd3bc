// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package fetcher

import (
	"context"
	"log/slog"
	"sync"

	"github.com/davetashner/surveydash/internal/survey"
)

// Consumer owns the State cell of one data consumer (a page, a report
// section). Each Load is tagged with an increasing sequence number and its
// result is applied only if no later Load has been issued since, so a slow
// superseded response can never overwrite a newer one.
type Consumer[T any] struct {
	f *Fetcher

	mu       sync.Mutex
	seq      uint64
	state    State[T]
	onChange func(State[T])
}

// NewConsumer returns a Consumer with an empty, non-loading state.
func NewConsumer[T any](f *Fetcher) *Consumer[T] {
	return &Consumer[T]{f: f}
}

// OnChange registers fn to observe every applied transition. fn runs on the
// goroutine that called Load and must not call Load itself.
func (c *Consumer[T]) OnChange(fn func(State[T])) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// State returns a snapshot of the current state.
func (c *Consumer[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Load moves the consumer to Pending for r, fetches r, and applies the
// outcome unless a newer Load started meanwhile. It returns the resolved
// state and whether it was applied.
func (c *Consumer[T]) Load(ctx context.Context, r survey.Resource) (State[T], bool) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	pending := Pending[T](r)
	pending.Seq = seq
	c.state = pending
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(pending)
	}

	resolved := Fetch[T](ctx, c.f, r)
	resolved.Seq = seq

	c.mu.Lock()
	if seq != c.seq {
		latest := c.seq
		c.mu.Unlock()
		slog.Debug("discarding stale response", "resource", r, "seq", seq, "latest", latest)
		return resolved, false
	}
	c.state = resolved
	fn = c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(resolved)
	}
	return resolved, true
}
