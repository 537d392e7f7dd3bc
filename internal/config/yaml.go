// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the .surveydash.yaml file from dir.
// If the file does not exist, it returns a zero-value Config and nil error.
func Load(dir string) (*Config, error) {
	return readFile(filepath.Join(dir, FileName))
}

func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// Write marshals the config to YAML and writes it to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close() //nolint:errcheck // best-effort close
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// LoadRaw reads a YAML file into a generic map so that config set can
// modify keys without dropping unknown ones. A missing or empty file yields
// an empty map.
func LoadRaw(path string) (map[string]any, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user config path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[string]any), nil
		}
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

// WriteFile writes data as YAML to path, creating parent directories.
func WriteFile(path string, data map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	out, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o600)
}
