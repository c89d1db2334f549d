package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", `
output:
  defaultFormat: json
  precision: 1
  locale: fr
  color: never
chart:
  enabled: false
  width: 60
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, cfg.Output.DefaultFormat)
	assert.Equal(t, 1, cfg.Output.Precision)
	assert.Equal(t, "fr", cfg.Output.Locale)
	assert.Equal(t, ColorNever, cfg.Output.Color)
	assert.False(t, cfg.Chart.Enabled)
	assert.Equal(t, 60, cfg.Chart.Width)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, path, cfg.ConfigPath())
}

func TestLoadJSON(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{"output":{"defaultFormat":"ndjson"}}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, FormatNDJSON, cfg.Output.DefaultFormat)
	// Unset sections keep their defaults.
	assert.Equal(t, 2, cfg.Output.Precision)
	assert.True(t, cfg.Chart.Enabled)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeConfigFile(t, "config.toml", `x = 1`)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigValidation)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ECOFOOT_OUTPUT__LOCALE", "de")
	t.Setenv("ECOFOOT_OUTPUT__DEFAULTFORMAT", "json")

	path := writeConfigFile(t, "config.yaml", `
output:
  locale: en
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "de", cfg.Output.Locale, "environment overrides the file")
	assert.Equal(t, FormatJSON, cfg.Output.DefaultFormat)
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	defaults := New()
	assert.Equal(t, defaults.Output, cfg.Output)
	assert.Equal(t, defaults.Chart, cfg.Chart)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "unknown output format", mutate: func(c *Config) { c.Output.DefaultFormat = "xml" }},
		{name: "precision too high", mutate: func(c *Config) { c.Output.Precision = 5 }},
		{name: "negative precision", mutate: func(c *Config) { c.Output.Precision = -1 }},
		{name: "unknown color mode", mutate: func(c *Config) { c.Output.Color = "sometimes" }},
		{name: "unknown log level", mutate: func(c *Config) { c.Logging.Level = "blaring" }},
		{name: "unknown log format", mutate: func(c *Config) { c.Logging.Format = "xml" }},
		{name: "chart too narrow", mutate: func(c *Config) { c.Chart.Width = 3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfigValidation)
		})
	}

	assert.NoError(t, New().Validate(), "defaults must validate")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := New()
	cfg.Output.Locale = "ja"
	cfg.Chart.Width = 50
	cfg.SetConfigPath(path)
	require.NoError(t, cfg.Save())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ja", loaded.Output.Locale)
	assert.Equal(t, 50, loaded.Chart.Width)
}

func TestGetConfigDirHonorsHomeOverride(t *testing.T) {
	t.Setenv("ECOFOOT_HOME", "/tmp/ecofoot-test-home")

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ecofoot-test-home", dir)
}

func TestGlobalConfigLifecycle(t *testing.T) {
	t.Setenv("ECOFOOT_HOME", t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, FormatTable, GetDefaultOutputFormat())
	assert.Equal(t, 2, GetOutputPrecision())
	assert.Equal(t, "en", GetLocale())

	custom := New()
	custom.Output.DefaultFormat = FormatNDJSON
	SetGlobalConfig(custom)
	assert.Equal(t, FormatNDJSON, GetDefaultOutputFormat())
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "warn", Format: "json", File: "/tmp/e.log"}
	bridged := lc.ToLoggingConfig()

	assert.Equal(t, "warn", bridged.Level)
	assert.Equal(t, "json", bridged.Format)
	assert.Equal(t, "/tmp/e.log", bridged.File)
}
