// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvAPIURL       = "SURVEYDASH_API_URL"
	EnvTimeout      = "SURVEYDASH_TIMEOUT"
	EnvFallbackMode = "SURVEYDASH_FALLBACK_MODE"
)

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

// Env returns the surveydash settings from the process environment layered
// over the .env file in dir. The process environment wins.
func Env(dir string) (*Config, error) {
	vars := make(map[string]string)

	path := filepath.Join(dir, DotEnvFile)
	if _, err := os.Stat(path); err == nil {
		fileVars, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		vars = fileVars
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	for _, key := range []string{EnvAPIURL, EnvTimeout, EnvFallbackMode} {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}

	return &Config{
		APIURL:       vars[EnvAPIURL],
		Timeout:      vars[EnvTimeout],
		FallbackMode: vars[EnvFallbackMode],
	}, nil
}
