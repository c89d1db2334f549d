// Package config loads and validates the ecofoot application configuration.
//
// Configuration lives at <config dir>/config.yaml, where the config dir is
// $ECOFOOT_HOME or ~/.ecofoot. File values can be overridden per invocation
// with ECOFOOT_-prefixed environment variables, using "__" as the section
// separator: ECOFOOT_OUTPUT__LOCALE=fr overrides output.locale.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/greensteps/ecofoot/internal/logging"
)

// envPrefix is the prefix for environment overrides.
const envPrefix = "ECOFOOT_"

// Output format names accepted by OutputConfig.DefaultFormat.
const (
	// FormatTable is the human-readable report.
	FormatTable = "table"

	// FormatJSON is a single JSON document.
	FormatJSON = "json"

	// FormatNDJSON is newline-delimited JSON, one object per line.
	FormatNDJSON = "ndjson"
)

// Color mode names accepted by OutputConfig.Color.
const (
	// ColorAuto enables colour only on a terminal.
	ColorAuto = "auto"

	// ColorAlways forces colour.
	ColorAlways = "always"

	// ColorNever disables colour.
	ColorNever = "never"
)

// maxPrecision caps fractional digits; reports never show more than two.
const maxPrecision = 2

// minChartWidth keeps the category bar legible.
const minChartWidth = 10

// ErrConfigValidation indicates a configuration value outside its closed set.
var ErrConfigValidation = constError("config validation failed")

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Config is the complete application configuration.
type Config struct {
	Output  OutputConfig  `json:"output" yaml:"output"`
	Chart   ChartConfig   `json:"chart" yaml:"chart"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// path is where this configuration was loaded from or will be saved to.
	path string
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	// DefaultFormat is the report format when --output is not given.
	DefaultFormat string `json:"defaultFormat" yaml:"defaultFormat"`

	// Precision is the number of fractional digits, at most 2.
	Precision int `json:"precision" yaml:"precision"`

	// Locale is the BCP 47 tag used for number grouping.
	Locale string `json:"locale" yaml:"locale"`

	// Color is one of auto, always, never.
	Color string `json:"color" yaml:"color"`
}

// ChartConfig controls the category bar in table reports.
type ChartConfig struct {
	// Enabled toggles the bar.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Width is the bar width in cells.
	Width int `json:"width" yaml:"width"`
}

// LoggingConfig controls the zerolog setup.
type LoggingConfig struct {
	// Level is a zerolog level name.
	Level string `json:"level" yaml:"level"`

	// Format is console or json.
	Format string `json:"format" yaml:"format"`

	// File is an optional log file path. Empty logs to stderr.
	File string `json:"file" yaml:"file,omitempty"`
}

// ToLoggingConfig bridges the configuration section to the logging package.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		File:   lc.File,
	}
}

// New returns the built-in defaults: table output at two digits in English,
// chart enabled, info-level console logging to stderr.
func New() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: FormatTable,
			Precision:     maxPrecision,
			Locale:        "en",
			Color:         ColorAuto,
		},
		Chart: ChartConfig{
			Enabled: true,
			Width:   40,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
	}
}

// Load reads the configuration file at path, applies ECOFOOT_ environment
// overrides, and validates the result. The parser follows the file
// extension: .yaml/.yml or .json.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("%w: unsupported config format %q", ErrConfigValidation, ext)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if err := loadEnvOverrides(k); err != nil {
		return nil, err
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.path = path
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns the defaults (plus environment
// overrides) when no file exists at path.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		k := koanf.New(".")
		if err := loadEnvOverrides(k); err != nil {
			return nil, err
		}
		cfg := New()
		if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
			return nil, fmt.Errorf("applying environment overrides: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		cfg.path = path
		return cfg, nil
	}
	return Load(path)
}

// loadEnvOverrides layers ECOFOOT_ environment variables over k.
func loadEnvOverrides(k *koanf.Koanf) error {
	err := k.Load(env.Provider(envPrefix, "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil)
	if err != nil {
		return fmt.Errorf("loading environment overrides: %w", err)
	}
	return nil
}

// Validate checks every closed-set and range constraint.
func (c *Config) Validate() error {
	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON, FormatNDJSON:
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrConfigValidation, c.Output.DefaultFormat)
	}

	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		return fmt.Errorf("%w: precision must be 0..%d, got %d", ErrConfigValidation, maxPrecision, c.Output.Precision)
	}

	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: unknown color mode %q", ErrConfigValidation, c.Output.Color)
	}

	switch c.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrConfigValidation, c.Logging.Level)
	}

	switch c.Logging.Format {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrConfigValidation, c.Logging.Format)
	}

	if c.Chart.Width < minChartWidth {
		return fmt.Errorf("%w: chart width must be >= %d, got %d", ErrConfigValidation, minChartWidth, c.Chart.Width)
	}

	return nil
}
