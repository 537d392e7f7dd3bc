// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package glossary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	g := Default()

	full, ok := g.Lookup("AU")
	require.True(t, ok)
	assert.Equal(t, "Autonomy", full)

	full, ok = g.Lookup("F&B")
	require.True(t, ok)
	assert.Equal(t, "Food & Beverage", full)

	_, ok = g.Lookup("XYZ")
	assert.False(t, ok)
}

func TestDescribe(t *testing.T) {
	g := Default()
	assert.Equal(t, "IT Social Media (IT_SM)", g.Describe("IT_SM"))
	assert.Equal(t, "Jasa", g.Describe("Jasa"))

	var nilG *Glossary
	assert.Equal(t, "AU", nilG.Describe("AU"))
}

func TestTerms_Sorted(t *testing.T) {
	terms := Default().Terms()
	require.NotEmpty(t, terms)
	for i := 1; i < len(terms); i++ {
		assert.Less(t, terms[i-1].Abbr, terms[i].Abbr)
	}
}

func TestLoad_Override(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glossary.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[terms]
AU = "Autonomy Index"
NEW = "Brand New"
`), 0o600))

	g, err := Load(path)
	require.NoError(t, err)

	full, _ := g.Lookup("AU")
	assert.Equal(t, "Autonomy Index", full)
	full, _ = g.Lookup("NEW")
	assert.Equal(t, "Brand New", full)
	full, _ = g.Lookup("INN")
	assert.Equal(t, "Innovation", full)
}

func TestLoad_EmptyPath(t *testing.T) {
	g, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, len(Default().Terms()), len(g.Terms()))
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "reading glossary")

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[terms\nAU = "), 0o600))
	_, err = Load(path)
	assert.ErrorContains(t, err, "parsing glossary")
}

func TestMentioned(t *testing.T) {
	g := Default()
	got := g.Mentioned("Strong correlation between AU and INN; AU leads, F&B dominates.")
	assert.Equal(t, []Term{
		{Abbr: "AU", Full: "Autonomy"},
		{Abbr: "INN", Full: "Innovation"},
		{Abbr: "F&B", Full: "Food & Beverage"},
	}, got)
	assert.Empty(t, g.Mentioned("nothing here"))
}
