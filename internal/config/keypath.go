// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// GetValue retrieves a value from a Config by dot-notation key path.
// It returns scalar values as-is, and maps/slices for intermediate nodes.
func GetValue(cfg *Config, keyPath string) (any, error) {
	m, err := ToMap(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return navigateMap(m, keyPath)
}

// SetValue sets a value in a raw YAML map by dot-notation key path,
// creating intermediate maps as needed. List keys take a comma-separated
// value.
func SetValue(data map[string]any, keyPath string, rawValue string) error {
	parts := strings.Split(keyPath, ".")
	if len(parts) == 0 || keyPath == "" {
		return fmt.Errorf("empty key path")
	}

	// Navigate to the parent, creating intermediate maps.
	current := data
	for _, part := range parts[:len(parts)-1] {
		child, ok := current[part]
		if !ok {
			next := make(map[string]any)
			current[part] = next
			current = next
			continue
		}
		next, ok := child.(map[string]any)
		if !ok {
			return fmt.Errorf("key %q is not a map", part)
		}
		current = next
	}

	current[parts[len(parts)-1]] = coerceFor(fieldType(parts), rawValue)
	return nil
}

// FlattenMap recursively flattens a nested map to dot-notation keys.
func FlattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			for sk, sv := range FlattenMap(sub, key) {
				result[sk] = sv
			}
		} else {
			result[key] = v
		}
	}
	return result
}

// ValidateKeyPath checks that a dot-notation key path corresponds to a valid
// Config field. It uses yaml struct tags to build the valid key set.
func ValidateKeyPath(keyPath string) error {
	if keyPath == "" {
		return fmt.Errorf("empty key path")
	}
	parts := strings.Split(keyPath, ".")

	topKeys := yamlKeys(reflect.TypeOf(Config{}))
	first := parts[0]

	if _, ok := topKeys[first]; !ok {
		return fmt.Errorf("unknown key %q; valid top-level keys: %s", first, sortedKeys(topKeys))
	}

	if first != "report" {
		if len(parts) > 1 {
			return fmt.Errorf("key %q is a scalar; cannot use sub-keys", first)
		}
		return nil
	}

	// report.<field>
	rcKeys := yamlKeys(reflect.TypeOf(ReportConfig{}))
	switch len(parts) {
	case 1:
		return fmt.Errorf("report requires a field; valid fields: %s", sortedKeys(rcKeys))
	case 2:
		if _, ok := rcKeys[parts[1]]; !ok {
			return fmt.Errorf("unknown report field %q; valid fields: %s", parts[1], sortedKeys(rcKeys))
		}
		return nil
	default:
		return fmt.Errorf("key path too deep: %q", keyPath)
	}
}

// ToMap converts a Config to a map via YAML round-trip, omitting zero
// values.
func ToMap(cfg *Config) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[string]any)
	}
	return m, nil
}

// navigateMap traverses a nested map using a dot-notation key path.
func navigateMap(m map[string]any, keyPath string) (any, error) {
	parts := strings.Split(keyPath, ".")
	var current any = m
	for _, part := range parts {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("key %q: parent is not a map", part)
		}
		val, exists := cm[part]
		if !exists {
			return nil, fmt.Errorf("key %q not found", keyPath)
		}
		current = val
	}
	return current, nil
}

// fieldType resolves the Go type of the Config field at parts, or nil when
// the path names no field.
func fieldType(parts []string) reflect.Type {
	t := reflect.TypeOf(Config{})
	for _, part := range parts {
		if t.Kind() != reflect.Struct {
			return nil
		}
		f, ok := fieldByTag(t, part)
		if !ok {
			return nil
		}
		t = f.Type
	}
	return t
}

func fieldByTag(t reflect.Type, name string) (reflect.StructField, bool) {
	for i := range t.NumField() {
		f := t.Field(i)
		if strings.Split(f.Tag.Get("yaml"), ",")[0] == name {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

// coerceFor parses s according to the field type t. Strings stay strings
// and string lists split on commas; unknown fields use coerceValue.
func coerceFor(t reflect.Type, s string) any {
	if t == nil {
		return coerceValue(s)
	}
	switch t.Kind() {
	case reflect.String:
		return s
	case reflect.Slice:
		var out []any
		for _, item := range strings.Split(s, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out
	default:
		return coerceValue(s)
	}
}

// coerceValue parses a string into bool, int, float64, or keeps it as string.
func coerceValue(s string) any {
	if s == "true" {
		return true
	}
	if s == "false" {
		return false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		// Only use float if it has a decimal point (avoid converting "3" to 3.0).
		if strings.Contains(s, ".") {
			return f
		}
	}
	return s
}

// yamlKeys extracts yaml tag names from a struct type.
func yamlKeys(t reflect.Type) map[string]bool {
	keys := make(map[string]bool)
	for i := range t.NumField() {
		tag := t.Field(i).Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name != "" {
			keys[name] = true
		}
	}
	return keys
}

// sortedKeys returns a comma-separated sorted list of map keys.
func sortedKeys(m map[string]bool) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
