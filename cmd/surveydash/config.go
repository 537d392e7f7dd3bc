// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/davetashner/surveydash/internal/config"
)

// Config command flags.
var configGlobal bool

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and modify surveydash configuration",
	Long: `View and modify surveydash configuration.

Surveydash reads configuration from .surveydash.yaml in the working
directory. A global config at ~/.config/surveydash/config.yaml provides
defaults, and SURVEYDASH_API_URL, SURVEYDASH_TIMEOUT and
SURVEYDASH_FALLBACK_MODE (from the environment or a .env file) override
both. Command-line flags win over everything.

Note: config set does a YAML round-trip and will not preserve comments.`,
}

// configGetCmd retrieves a configuration value by dot-notation key path.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a configuration value by dot-notation key path.

Examples:
  surveydash config get api_url
  surveydash config get report.cluster_k
  surveydash config get --global fallback_mode`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configSetCmd sets a configuration value.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the config file.

By default, writes to .surveydash.yaml in the current directory.
Use --global to write to ~/.config/surveydash/config.yaml.
List values (cluster_names, sections) are comma-separated.

Examples:
  surveydash config set api_url http://analytics:5001/api
  surveydash config set fallback_mode strict
  surveydash config set cluster_names "Traditional,Digital,Collaborative"
  surveydash config set report.spread_limit 5`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

// configListCmd lists all configuration values with their source.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Long: `List all configuration values with their source annotation.

Shows every set configuration value, annotated with whether it comes from
the global config, the repo config (.surveydash.yaml) or the environment.
Environment values override repo values, which override global values.`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

func init() {
	configGetCmd.Flags().BoolVar(&configGlobal, "global", false, "use global config (~/.config/surveydash/config.yaml)")
	configSetCmd.Flags().BoolVar(&configGlobal, "global", false, "write to global config (~/.config/surveydash/config.yaml)")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	var cfg *config.Config
	var err error
	if configGlobal {
		cfg, err = config.LoadGlobal()
	} else {
		cfg, err = config.Resolve(".")
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	val, err := config.GetValue(cfg, args[0])
	if err != nil {
		return err
	}
	return printValue(cmd, val)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	keyPath, rawValue := args[0], args[1]

	if err := config.ValidateKeyPath(keyPath); err != nil {
		return err
	}

	targetPath := filepath.Join(".", config.FileName)
	if configGlobal {
		targetPath = config.GlobalConfigPath()
	}

	data, err := config.LoadRaw(targetPath)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}
	if err := config.SetValue(data, keyPath, rawValue); err != nil {
		return fmt.Errorf("setting value: %w", err)
	}

	// Round-trip validate before writing.
	roundTrip, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	var validCfg config.Config
	if err := yaml.Unmarshal(roundTrip, &validCfg); err != nil {
		return fmt.Errorf("invalid config after set: %w", err)
	}
	if err := config.Validate(&validCfg); err != nil {
		return err
	}

	if err := config.WriteFile(targetPath, data); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", keyPath, rawValue)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return fmt.Errorf("loading global config: %w", err)
	}
	repoCfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("loading repo config: %w", err)
	}
	envCfg, err := config.Env(".")
	if err != nil {
		return fmt.Errorf("loading environment: %w", err)
	}

	type entry struct {
		value  any
		source string
	}
	seen := make(map[string]entry)
	for _, layer := range []struct {
		cfg    *config.Config
		source string
	}{
		{globalCfg, "global"},
		{repoCfg, "repo"},
		{envCfg, "env"},
	} {
		m, err := config.ToMap(layer.cfg)
		if err != nil {
			return err
		}
		for k, v := range config.FlattenMap(m, "") {
			seen[k] = entry{value: v, source: layer.source}
		}
	}

	if len(seen) == 0 {
		_, _ = fmt.Fprintln(w, "No configuration set.")
		_, _ = fmt.Fprintln(w, "Run 'surveydash config set <key> <value>' to set values.")
		return nil
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		e := seen[k]
		_, _ = fmt.Fprintf(w, "%s = %v %s\n", k, e.value, formatSource(e.source))
	}
	return nil
}

// printValue outputs a value: scalars as plain text, maps/slices as YAML.
func printValue(cmd *cobra.Command, val any) error {
	switch v := val.(type) {
	case map[string]any, []any:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
	default:
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

var sourceColors = map[string]*color.Color{
	"global": color.New(color.FgCyan),
	"repo":   color.New(color.FgGreen),
	"env":    color.New(color.FgYellow),
}

// formatSource returns a colorized source annotation.
func formatSource(source string) string {
	if c, ok := sourceColors[source]; ok {
		return c.Sprintf("(%s)", source)
	}
	return fmt.Sprintf("(%s)", source)
}
