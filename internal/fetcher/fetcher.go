// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

// Package fetcher loads backend resources into State values, degrading to
// static sample data when a load fails.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/davetashner/surveydash/internal/api"
	"github.com/davetashner/surveydash/internal/fallback"
	"github.com/davetashner/surveydash/internal/survey"
)

// Mode controls what a failed load resolves to.
type Mode string

const (
	// ModeDemo substitutes the static sample document on failure.
	ModeDemo Mode = "demo"
	// ModeStrict leaves Data nil on failure.
	ModeStrict Mode = "strict"
)

// ParseMode validates a mode name. The empty string selects ModeDemo.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeDemo:
		return ModeDemo, nil
	case ModeStrict:
		return ModeStrict, nil
	default:
		return "", fmt.Errorf("invalid fallback mode %q (must be demo or strict)", s)
	}
}

// maxConcurrentLoads caps the goroutines LoadAll runs at once.
const maxConcurrentLoads = 8

// Getter fetches the raw JSON document of a resource. *api.Client
// implements it.
type Getter interface {
	Get(ctx context.Context, r survey.Resource) (json.RawMessage, error)
}

// Compile-time check that *api.Client implements Getter.
var _ Getter = (*api.Client)(nil)

// Fetcher turns backend responses into States.
type Fetcher struct {
	client   Getter
	notifier Notifier
	mode     Mode
	lookup   func(survey.Resource) json.RawMessage
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithNotifier sets where failure notices go. The default logs them.
func WithNotifier(n Notifier) Option {
	return func(f *Fetcher) {
		if n != nil {
			f.notifier = n
		}
	}
}

// WithMode selects demo or strict fallback behaviour.
func WithMode(m Mode) Option {
	return func(f *Fetcher) {
		if m != "" {
			f.mode = m
		}
	}
}

// WithFallback replaces the sample-data lookup.
func WithFallback(lookup func(survey.Resource) json.RawMessage) Option {
	return func(f *Fetcher) {
		if lookup != nil {
			f.lookup = lookup
		}
	}
}

// New returns a Fetcher reading from client.
func New(client Getter, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:   client,
		notifier: LogNotifier{},
		mode:     ModeDemo,
		lookup:   fallback.Lookup,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Mode returns the configured fallback mode.
func (f *Fetcher) Mode() Mode {
	return f.mode
}

// Observe returns a copy of f that also delivers every notice to n. The
// original fetcher is unchanged.
func (f *Fetcher) Observe(n Notifier) *Fetcher {
	c := *f
	c.notifier = Multi(f.notifier, n)
	return &c
}

// Fetch issues exactly one GET for r and resolves it into a State. It never
// returns an error: transport, status and decode failures are folded into
// State.Error, and in demo mode Data holds the sample document for r.
func Fetch[T any](ctx context.Context, f *Fetcher, r survey.Resource) State[T] {
	raw, err := f.client.Get(ctx, r)
	if err == nil {
		var v T
		if uerr := json.Unmarshal(raw, &v); uerr != nil {
			err = &api.DecodeError{URL: r.Path(), Err: uerr}
		} else {
			slog.Debug("fetch ok", "resource", r)
			return State[T]{Resource: r, Data: &v}
		}
	}
	return fail[T](f, r, err)
}

// fail builds the failure state for r and emits a notice.
func fail[T any](f *Fetcher, r survey.Resource, cause error) State[T] {
	s := State[T]{Resource: r, Error: cause.Error()}

	if f.mode != ModeStrict {
		var v T
		if err := json.Unmarshal(f.lookup(r), &v); err != nil {
			slog.Warn("fallback document does not fit payload type", "resource", r, "error", err)
		} else {
			s.Data = &v
			s.UsedFallback = true
		}
	}

	f.notifier.Notify(Notice{
		Resource:     r,
		Kind:         api.Kind(cause),
		Err:          s.Error,
		UsedFallback: s.UsedFallback,
	})
	return s
}

// LoadAll fetches every resource concurrently and returns the raw states
// keyed by resource. Duplicate resources are fetched once.
func LoadAll(ctx context.Context, f *Fetcher, resources []survey.Resource) map[survey.Resource]State[json.RawMessage] {
	unique := make([]survey.Resource, 0, len(resources))
	seen := make(map[survey.Resource]bool, len(resources))
	for _, r := range resources {
		if !seen[r] {
			seen[r] = true
			unique = append(unique, r)
		}
	}

	states := make([]State[json.RawMessage], len(unique))
	var g errgroup.Group
	g.SetLimit(maxConcurrentLoads)
	for i, r := range unique {
		g.Go(func() error {
			states[i] = Fetch[json.RawMessage](ctx, f, r)
			return nil
		})
	}
	_ = g.Wait() // loads never fail the group

	out := make(map[survey.Resource]State[json.RawMessage], len(unique))
	for i, r := range unique {
		out[r] = states[i]
	}
	return out
}
