// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

// Package glossary expands the variable abbreviations used by the survey
// backend (AU, IT_SM, OEO, ...) into their full names.
package glossary

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
)

//go:embed glossary.toml
var builtin []byte

// glossaryFile is the on-disk TOML layout.
type glossaryFile struct {
	Terms map[string]string `toml:"terms"`
}

// Term is one abbreviation and its expansion.
type Term struct {
	Abbr string `json:"abbr"`
	Full string `json:"full"`
}

// Glossary maps abbreviations to full names.
type Glossary struct {
	terms map[string]string
}

// Default returns the built-in glossary.
func Default() *Glossary {
	g, err := parse(builtin)
	if err != nil {
		panic(fmt.Sprintf("glossary: built-in glossary is invalid: %v", err))
	}
	return g
}

// Load returns the built-in glossary overlaid with the terms from the TOML
// file at path. Terms in the file replace built-in terms of the same name.
// An empty path returns Default().
func Load(path string) (*Glossary, error) {
	g := Default()
	if path == "" {
		return g, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // user-supplied config path
	if err != nil {
		return nil, fmt.Errorf("reading glossary %s: %w", path, err)
	}
	override, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing glossary %s: %w", path, err)
	}
	for k, v := range override.terms {
		g.terms[k] = v
	}
	return g, nil
}

func parse(data []byte) (*Glossary, error) {
	var f glossaryFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	g := &Glossary{terms: make(map[string]string, len(f.Terms))}
	for k, v := range f.Terms {
		if k == "" || v == "" {
			continue
		}
		g.terms[k] = v
	}
	return g, nil
}

// Lookup returns the expansion of abbr.
func (g *Glossary) Lookup(abbr string) (string, bool) {
	if g == nil {
		return "", false
	}
	full, ok := g.terms[abbr]
	return full, ok
}

// Describe returns "Full Name (ABBR)" for known abbreviations and abbr
// unchanged otherwise.
func (g *Glossary) Describe(abbr string) string {
	if full, ok := g.Lookup(abbr); ok {
		return full + " (" + abbr + ")"
	}
	return abbr
}

// Terms lists every term sorted by abbreviation.
func (g *Glossary) Terms() []Term {
	if g == nil {
		return nil
	}
	out := make([]Term, 0, len(g.terms))
	for k, v := range g.terms {
		out = append(out, Term{Abbr: k, Full: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Abbr < out[j].Abbr })
	return out
}

// Mentioned returns the terms whose abbreviation appears as a whole word in
// text, in order of first appearance.
func (g *Glossary) Mentioned(text string) []Term {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '&'
	})
	var out []Term
	seen := make(map[string]bool)
	for _, w := range words {
		if seen[w] {
			continue
		}
		if full, ok := g.Lookup(w); ok {
			seen[w] = true
			out = append(out, Term{Abbr: w, Full: full})
		}
	}
	return out
}
