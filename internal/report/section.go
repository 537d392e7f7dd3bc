// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

// Package report provides a pluggable section registry for surveydash report.
// Each section decodes one or more backend resources and renders a focused
// view of them as terminal tables or structured data.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/davetashner/surveydash/internal/chartdata"
	"github.com/davetashner/surveydash/internal/fetcher"
	"github.com/davetashner/surveydash/internal/glossary"
	"github.com/davetashner/surveydash/internal/survey"
)

// ErrDataNotAvailable indicates a section's resource resolved to no usable
// document, typically because the load failed in strict mode.
var ErrDataNotAvailable = errors.New("data not available")

// Section is a pluggable report section that analyzes resource states and
// renders a focused report segment.
type Section interface {
	// Name returns the unique identifier for this section (e.g., "clustering").
	Name() string

	// Description returns a human-readable description of what this section reports.
	Description() string

	// Resources lists the backend resources the section reads.
	Resources() []survey.Resource

	// Analyze decodes the input states and prepares internal state for rendering.
	// Returns ErrDataNotAvailable (wrapped) if a required document is missing.
	Analyze(in *Input) error

	// Render writes the section output to w.
	Render(w io.Writer) error

	// Data returns the analyzed rows for machine-readable output.
	Data() any
}

// Factory creates a fresh, unanalyzed section.
type Factory func() Section

// Options tunes what sections show.
type Options struct {
	// ClusterNames labels clusters by ordinal position.
	ClusterNames []string
	// Glossary expands variable abbreviations.
	Glossary *glossary.Glossary
	// Variable is the variable broken down by group and partnership type.
	Variable string
	// ClusterK selects the clustering solution, e.g. "k_3".
	ClusterK string
	// SpreadLimit caps the variables in the cluster spread table.
	SpreadLimit int
}

// Defaults used when an Options field is zero.
const (
	DefaultVariable    = "AU"
	DefaultClusterK    = "k_3"
	DefaultSpreadLimit = 8
)

// WithDefaults fills zero fields with the package defaults.
func (o Options) WithDefaults() Options {
	if len(o.ClusterNames) == 0 {
		o.ClusterNames = chartdata.DefaultClusterNames
	}
	if o.Glossary == nil {
		o.Glossary = glossary.Default()
	}
	if o.Variable == "" {
		o.Variable = DefaultVariable
	}
	if o.ClusterK == "" {
		o.ClusterK = DefaultClusterK
	}
	if o.SpreadLimit <= 0 {
		o.SpreadLimit = DefaultSpreadLimit
	}
	return o
}

// Input is what every section analyzes: the resolved state of each loaded
// resource plus display options.
type Input struct {
	States  map[survey.Resource]fetcher.State[json.RawMessage]
	Options Options
}

// NewInput returns an Input over states with defaults applied to opts.
func NewInput(states map[survey.Resource]fetcher.State[json.RawMessage], opts Options) *Input {
	return &Input{States: states, Options: opts.WithDefaults()}
}

// UsedFallback reports whether any of resources was served from sample data.
func (in *Input) UsedFallback(resources ...survey.Resource) bool {
	for _, r := range resources {
		if in.States[r].UsedFallback {
			return true
		}
	}
	return false
}

// decode returns the typed document for r, or ErrDataNotAvailable.
func decode[T any](in *Input, r survey.Resource) (*T, error) {
	st, ok := in.States[r]
	if !ok {
		return nil, fmt.Errorf("%s not loaded: %w", r, ErrDataNotAvailable)
	}
	typed := fetcher.As[T](st)
	if typed.Data == nil {
		if typed.Error != "" {
			return nil, fmt.Errorf("%s: %s: %w", r, typed.Error, ErrDataNotAvailable)
		}
		return nil, fmt.Errorf("%s: %w", r, ErrDataNotAvailable)
	}
	return typed.Data, nil
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Factory)
	order    []string // insertion order for deterministic listing
)

// Register adds a section factory to the global registry.
// It panics if a section with the same name is already registered.
func Register(f Factory) {
	mu.Lock()
	defer mu.Unlock()
	name := f().Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("report section already registered: %s", name))
	}
	registry[name] = f
	order = append(order, name)
}

// Get returns a new instance of the named section, or nil if not found.
func Get(name string) Section {
	mu.RLock()
	f := registry[name]
	mu.RUnlock()
	if f == nil {
		return nil
	}
	return f()
}

// List returns the names of all registered sections in registration order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// ResourcesFor returns the union of resources the named sections read, in
// first-use order. Unknown names are ignored.
func ResourcesFor(names []string) []survey.Resource {
	var out []survey.Resource
	seen := make(map[survey.Resource]bool)
	for _, name := range names {
		s := Get(name)
		if s == nil {
			continue
		}
		for _, r := range s.Resources() {
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}
	return out
}

// Run analyzes the named section against in.
func Run(name string, in *Input) (Section, error) {
	s := Get(name)
	if s == nil {
		return nil, fmt.Errorf("unknown report section %q", name)
	}
	if err := s.Analyze(in); err != nil {
		return s, err
	}
	return s, nil
}

// resetForTesting clears the registry. Only for use in tests.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Factory)
	order = nil
}
