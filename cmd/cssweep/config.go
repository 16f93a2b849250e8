package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/cssweep"
)

var k = koanf.New(".")

// changedFlags records which flags the user set explicitly. The posflag
// provider also merges unchanged flag defaults into k under the bare
// flag key, and those must not shadow the namespaced config-file keys
// in the fallback getters.
var changedFlags = map[string]bool{}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssweep.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	changedFlags = map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		changedFlags[f.Name] = true
	})

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSWEEP_* prefix)
	if err := k.Load(env.Provider("CSSWEEP_", ".", func(s string) string {
		// CSSWEEP_SCAN_GITIGNORE -> scan.gitignore
		// CSSWEEP_SCAN_STRICT -> scan.strict
		// CSSWEEP_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSWEEP_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildScanConfig constructs the library's Config struct from koanf state.
func buildScanConfig(root string) cssweep.Config {
	config := cssweep.Config{
		Root:          root,
		UseGitignore:  getBoolWithFallback("gitignore", "scan.gitignore", false),
		FollowImports: getBoolWithFallback("css-imports", "scan.css-imports", false),
		Verbose:       getBoolWithFallback("verbose", "verbose", false),
	}

	// Handle excludes: check the explicitly-set flag first, then the
	// config key, then whatever else landed under the flag key
	if excludes := k.Strings("exclude"); changedFlags["exclude"] && len(excludes) > 0 {
		config.Excludes = excludes
	} else if excludes := k.Strings("scan.exclude"); len(excludes) > 0 {
		config.Excludes = excludes
	} else if excludes := k.Strings("exclude"); len(excludes) > 0 {
		config.Excludes = excludes
	}

	return config
}

// getStringWithFallback checks the explicitly-set flag first, then the
// config file key, then the flag default merged by posflag, then
// returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if changedFlags[flagKey] {
		if v := k.String(flagKey); v != "" {
			return v
		}
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	if v := k.String(flagKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the explicitly-set flag first, then the
// config file key, then the flag default merged by posflag, then
// returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if changedFlags[flagKey] && k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	return defaultVal
}
