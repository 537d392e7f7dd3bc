// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetValue_TopLevel(t *testing.T) {
	cfg := &Config{
		APIURL:       "http://localhost:5001/api",
		FallbackMode: "strict",
	}

	val, err := GetValue(cfg, "api_url")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5001/api", val)

	val, err = GetValue(cfg, "fallback_mode")
	require.NoError(t, err)
	assert.Equal(t, "strict", val)
}

func TestGetValue_Nested(t *testing.T) {
	cfg := &Config{Report: ReportConfig{SpreadLimit: 6}}

	val, err := GetValue(cfg, "report.spread_limit")
	require.NoError(t, err)
	assert.Equal(t, 6, val)

	val, err = GetValue(cfg, "report")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"spread_limit": 6}, val)
}

func TestGetValue_List(t *testing.T) {
	cfg := &Config{ClusterNames: []string{"A", "B"}}
	val, err := GetValue(cfg, "cluster_names")
	require.NoError(t, err)
	assert.Equal(t, []any{"A", "B"}, val)
}

func TestGetValue_NotFound(t *testing.T) {
	_, err := GetValue(&Config{}, "api_url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetValue_ParentNotMap(t *testing.T) {
	_, err := GetValue(&Config{APIURL: "x"}, "api_url.host")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parent is not a map")
}

func TestSetValue_TopLevel(t *testing.T) {
	data := map[string]any{}
	require.NoError(t, SetValue(data, "fallback_mode", "strict"))
	assert.Equal(t, "strict", data["fallback_mode"])
}

func TestSetValue_StringFieldsStayStrings(t *testing.T) {
	data := map[string]any{}
	require.NoError(t, SetValue(data, "addr", "8080"))
	require.NoError(t, SetValue(data, "report.variable", "true"))
	assert.Equal(t, "8080", data["addr"])
	assert.Equal(t, map[string]any{"variable": "true"}, data["report"])
}

func TestSetValue_IntField(t *testing.T) {
	data := map[string]any{}
	require.NoError(t, SetValue(data, "report.spread_limit", "4"))
	assert.Equal(t, map[string]any{"spread_limit": 4}, data["report"])
}

func TestSetValue_ListSplitsOnCommas(t *testing.T) {
	data := map[string]any{}
	require.NoError(t, SetValue(data, "cluster_names", "Traditional, Leaders ,,Moderate"))
	assert.Equal(t, []any{"Traditional", "Leaders", "Moderate"}, data["cluster_names"])
}

func TestSetValue_PreservesSiblings(t *testing.T) {
	data := map[string]any{"report": map[string]any{"variable": "AU"}}
	require.NoError(t, SetValue(data, "report.cluster_k", "k_4"))
	assert.Equal(t, map[string]any{"variable": "AU", "cluster_k": "k_4"}, data["report"])
}

func TestSetValue_ParentNotMap(t *testing.T) {
	data := map[string]any{"report": "flat"}
	err := SetValue(data, "report.variable", "AU")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a map")
}

func TestSetValue_EmptyPath(t *testing.T) {
	assert.Error(t, SetValue(map[string]any{}, "", "x"))
}

func TestFlattenMap(t *testing.T) {
	m := map[string]any{
		"api_url": "http://x/api",
		"report": map[string]any{
			"variable":  "AU",
			"cluster_k": "k_3",
		},
	}
	assert.Equal(t, map[string]any{
		"api_url":          "http://x/api",
		"report.variable":  "AU",
		"report.cluster_k": "k_3",
	}, FlattenMap(m, ""))
}

func TestValidateKeyPath(t *testing.T) {
	tests := []struct {
		key     string
		wantErr string
	}{
		{"api_url", ""},
		{"cluster_names", ""},
		{"report.spread_limit", ""},
		{"bogus", "unknown key"},
		{"api_url.host", "is a scalar"},
		{"report", "requires a field"},
		{"report.nope", "unknown report field"},
		{"report.variable.x", "too deep"},
		{"", "empty key path"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := ValidateKeyPath(tt.key)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCoerceValue(t *testing.T) {
	assert.Equal(t, true, coerceValue("true"))
	assert.Equal(t, false, coerceValue("false"))
	assert.Equal(t, 42, coerceValue("42"))
	assert.Equal(t, 0.5, coerceValue("0.5"))
	assert.Equal(t, "1e3", coerceValue("1e3"))
	assert.Equal(t, "hello", coerceValue("hello"))
}
