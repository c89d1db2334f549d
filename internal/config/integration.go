package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// configDirPerm keeps the config directory private to the owning user.
const configDirPerm = 0700

// GlobalConfig holds the global configuration instance.
var GlobalConfig *Config        //nolint:gochecknoglobals // Singleton pattern for configuration
var globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects globalConfigInit flag
var globalConfigInit bool       //nolint:gochecknoglobals // Tracks if global config has been initialized

// InitGlobalConfig initializes the global configuration from the default
// config path, falling back to built-in defaults when the file is missing
// or unreadable.
func InitGlobalConfig() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	if globalConfigInit {
		return
	}

	cfg, err := LoadOrDefault(defaultConfigPath())
	if err != nil {
		cfg = New()
	}
	GlobalConfig = cfg
	globalConfigInit = true
}

// SetGlobalConfig installs an explicitly loaded configuration, e.g. from a
// --config flag.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	GlobalConfig = cfg
	globalConfigInit = true
}

// ResetGlobalConfigForTest resets the global config for testing purposes.
func ResetGlobalConfigForTest() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	GlobalConfig = nil
	globalConfigInit = false
}

// GetGlobalConfig returns the global configuration, initializing it if needed.
func GetGlobalConfig() *Config {
	InitGlobalConfig()

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return GlobalConfig
}

// defaultConfigPath is <config dir>/config.yaml, or the bare file name when
// the home directory cannot be determined.
func defaultConfigPath() string {
	dir, err := GetConfigDir()
	if err != nil {
		return configFileName
	}
	return filepath.Join(dir, configFileName)
}

// GetDefaultOutputFormat returns the configured default output format.
func GetDefaultOutputFormat() string {
	cfg := GetGlobalConfig()
	return cfg.Output.DefaultFormat
}

// GetOutputPrecision returns the configured output precision.
func GetOutputPrecision() int {
	cfg := GetGlobalConfig()
	return cfg.Output.Precision
}

// GetLocale returns the configured number-formatting locale.
func GetLocale() string {
	cfg := GetGlobalConfig()
	return cfg.Output.Locale
}

// GetColorMode returns the configured color mode.
func GetColorMode() string {
	cfg := GetGlobalConfig()
	return cfg.Output.Color
}

// GetChartConfig returns the chart section of the global configuration.
func GetChartConfig() ChartConfig {
	cfg := GetGlobalConfig()
	return cfg.Chart
}

// GetLoggingConfig returns the Logging section of the global configuration.
// The returned value is a copy; flag-level overrides (for example --debug)
// are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	cfg := GetGlobalConfig()
	return cfg.Logging
}

// GetLogLevel returns the configured log level.
func GetLogLevel() string {
	cfg := GetGlobalConfig()
	return cfg.Logging.Level
}

// GetLogFile returns the configured log file path.
func GetLogFile() string {
	cfg := GetGlobalConfig()
	return cfg.Logging.File
}

// EnsureConfigDir ensures the ecofoot configuration directory exists.
func EnsureConfigDir() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, configDirPerm)
}

// EnsureLogDir ensures the directory for the configured log file exists. If
// no log file is configured, it does nothing.
func EnsureLogDir() error {
	cfg := GetGlobalConfig()
	if cfg.Logging.File == "" {
		return nil
	}
	logDir := filepath.Dir(cfg.Logging.File)
	if err := os.MkdirAll(logDir, configDirPerm); err != nil {
		return fmt.Errorf("failed to create log directory %q: %w", logDir, err)
	}
	return nil
}

// GetConfigDir returns the path to the ecofoot configuration directory:
// $ECOFOOT_HOME when set, otherwise ~/.ecofoot.
func GetConfigDir() (string, error) {
	if efHome := os.Getenv("ECOFOOT_HOME"); efHome != "" {
		return efHome, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ecofoot"), nil
}
