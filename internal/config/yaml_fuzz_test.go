// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func FuzzConfigParse(f *testing.F) {
	f.Add([]byte("api_url: http://localhost:5001/api\ntimeout: 30s\n"))
	f.Add([]byte(""))
	f.Add([]byte("---"))
	f.Add([]byte("report:\n  cluster_k: k_3\n"))
	f.Add([]byte("cluster_names: [a, b]\n"))
	f.Add([]byte("{invalid"))

	f.Fuzz(func(t *testing.T, data []byte) {
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return
		}
		// Parsed configs must validate or fail without panicking.
		_ = Validate(&cfg)
		yaml.Marshal(&cfg) //nolint:errcheck,gosec // fuzz: testing crash-freedom
	})
}
