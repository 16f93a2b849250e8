package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
	changedFlags = map[string]bool{}
}

// newScanTestCmd builds a command with the scan flag set, so loadConfig
// can be exercised end to end without touching the global scanCmd.
func newScanTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "scan"}
	f := cmd.Flags()
	f.String("config", ".cssweep.yaml", "")
	f.StringSlice("exclude", nil, "")
	f.Bool("gitignore", false, "")
	f.Bool("css-imports", false, "")
	f.Bool("strict", false, "")
	f.String("output-format", "", "")
	return cmd
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssweep.yaml")
	configContent := `
verbose: true

scan:
  exclude:
    - "vendor/**"
    - "node_modules/**"
  gitignore: true
  css-imports: true
  strict: true
  output-format: json
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, []string{"vendor/**", "node_modules/**"}, k.Strings("scan.exclude"))
	assert.True(t, k.Bool("scan.gitignore"))
	assert.True(t, k.Bool("scan.css-imports"))
	assert.True(t, k.Bool("scan.strict"))
	assert.Equal(t, "json", k.String("scan.output-format"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.cssweep.yaml"))

	config := buildScanConfig("public")
	assert.Equal(t, "public", config.Root)
	assert.Empty(t, config.Excludes)
	assert.False(t, config.UseGitignore)
	assert.False(t, config.FollowImports)
	assert.False(t, config.Verbose)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssweep.yaml")
	configContent := `
verbose: false
scan:
  gitignore: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Env vars should override config file values
	t.Setenv("CSSWEEP_VERBOSE", "true")
	t.Setenv("CSSWEEP_SCAN_GITIGNORE", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.True(t, k.Bool("scan.gitignore"))
}

func TestBuildScanConfigFromConfigKeys(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssweep.yaml")
	configContent := `
scan:
  exclude:
    - "dist/**"
  css-imports: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildScanConfig(".")
	assert.Equal(t, []string{"dist/**"}, config.Excludes)
	assert.True(t, config.FollowImports)
}

func TestLoadConfigFileDrivesUnsetFlags(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssweep.yaml")
	configContent := `
scan:
  exclude:
    - "dist/**"
  output-format: json
  gitignore: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// No scan flags set: the config file must drive the result even
	// though posflag merges the flag defaults under the bare keys.
	cmd := newScanTestCmd()
	require.NoError(t, cmd.Flags().Set("config", configPath))
	require.NoError(t, loadConfig(cmd))

	assert.Equal(t, "json", getStringWithFallback("output-format", "scan.output-format", "text"))
	assert.True(t, getBoolWithFallback("gitignore", "scan.gitignore", false))

	config := buildScanConfig(".")
	assert.True(t, config.UseGitignore)
	assert.Equal(t, []string{"dist/**"}, config.Excludes)
}

func TestLoadConfigFlagsOverrideConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssweep.yaml")
	configContent := `
scan:
  exclude:
    - "dist/**"
  output-format: json
  gitignore: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	cmd := newScanTestCmd()
	require.NoError(t, cmd.Flags().Set("config", configPath))
	require.NoError(t, cmd.Flags().Set("output-format", "markdown"))
	require.NoError(t, cmd.Flags().Set("gitignore", "false"))
	require.NoError(t, cmd.Flags().Set("exclude", "vendor/**"))
	require.NoError(t, loadConfig(cmd))

	assert.Equal(t, "markdown", getStringWithFallback("output-format", "scan.output-format", "text"))
	assert.False(t, getBoolWithFallback("gitignore", "scan.gitignore", true))

	config := buildScanConfig(".")
	assert.False(t, config.UseGitignore)
	assert.Equal(t, []string{"vendor/**"}, config.Excludes)
}

func TestLoadConfigDefaultsWithoutConfigFile(t *testing.T) {
	resetKoanf()

	cmd := newScanTestCmd()
	require.NoError(t, cmd.Flags().Set("config", filepath.Join(t.TempDir(), "absent.yaml")))
	require.NoError(t, loadConfig(cmd))

	assert.Equal(t, "text", getStringWithFallback("output-format", "scan.output-format", "text"))
	assert.False(t, getBoolWithFallback("gitignore", "scan.gitignore", false))
}
