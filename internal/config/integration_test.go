package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfig(t *testing.T) {
	t.Setenv("ECOFOOT_HOME", t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, FormatTable, cfg.Output.DefaultFormat)

	// Subsequent calls return the same instance.
	assert.Same(t, cfg, GetGlobalConfig())

	// A reset builds a fresh one.
	ResetGlobalConfigForTest()
	assert.NotSame(t, cfg, GetGlobalConfig())
}

func TestInitGlobalConfigReadsConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ECOFOOT_HOME", home)
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	content := `output:
  defaultFormat: ndjson
  locale: de
chart:
  width: 72
`
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0600))

	InitGlobalConfig()
	cfg := GetGlobalConfig()

	assert.Equal(t, FormatNDJSON, cfg.Output.DefaultFormat)
	assert.Equal(t, "de", cfg.Output.Locale)
	assert.Equal(t, 72, cfg.Chart.Width)
	// Unset sections keep their defaults.
	assert.Equal(t, 2, cfg.Output.Precision)
}

func TestInitGlobalConfigBadFileFallsBack(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ECOFOOT_HOME", home)
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("output:\n  defaultFormat: xml\n"), 0600))

	InitGlobalConfig()
	cfg := GetGlobalConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, FormatTable, cfg.Output.DefaultFormat, "invalid file falls back to defaults")
}

func TestConfigGetters(t *testing.T) {
	t.Setenv("ECOFOOT_HOME", t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	cfg.Output.Color = ColorNever
	cfg.Chart.Enabled = false
	cfg.Chart.Width = 55
	cfg.Logging.Level = "warn"
	cfg.Logging.File = "/tmp/ecofoot-test.log"

	assert.Equal(t, ColorNever, GetColorMode())
	assert.Equal(t, ChartConfig{Enabled: false, Width: 55}, GetChartConfig())
	assert.Equal(t, "warn", GetLogLevel())
	assert.Equal(t, "/tmp/ecofoot-test.log", GetLogFile())

	lc := GetLoggingConfig()
	assert.Equal(t, "warn", lc.Level)
	assert.Equal(t, "/tmp/ecofoot-test.log", lc.File)
}

func TestEnsureConfigDir(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "ecofoot")
	t.Setenv("ECOFOOT_HOME", home)

	require.NoError(t, EnsureConfigDir())

	stat, err := os.Stat(home)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestEnsureLogDir(t *testing.T) {
	t.Setenv("ECOFOOT_HOME", t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	t.Run("no log file is a no-op", func(t *testing.T) {
		GetGlobalConfig().Logging.File = ""
		assert.NoError(t, EnsureLogDir())
	})

	t.Run("creates nested directories", func(t *testing.T) {
		dir := t.TempDir()
		GetGlobalConfig().Logging.File = filepath.Join(dir, "logs", "deep", "ecofoot.log")

		require.NoError(t, EnsureLogDir())

		stat, err := os.Stat(filepath.Join(dir, "logs", "deep"))
		require.NoError(t, err)
		assert.True(t, stat.IsDir())
	})

	t.Run("fails when the parent is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "not-a-dir")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

		GetGlobalConfig().Logging.File = filepath.Join(file, "ecofoot.log")
		assert.Error(t, EnsureLogDir())
	})
}

func TestGetConfigDirDefaultsToHome(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("ECOFOOT_HOME", "")
	t.Setenv("HOME", tmpHome)
	t.Setenv("USERPROFILE", tmpHome) // Windows

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpHome, ".ecofoot"), dir)
}
