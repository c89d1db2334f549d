package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/greensteps/ecofoot/internal/config"
)

// NewConfigInitCmd creates the config init command. It writes the built-in
// defaults as commented YAML to ~/.ecofoot/config.yaml (or $ECOFOOT_HOME).
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the configuration file with default values",
		Long: `Creates a new configuration file with default values.

The file lands at ~/.ecofoot/config.yaml, or under $ECOFOOT_HOME when
set. An existing file is never overwritten without --force.`,
		Example: `  # Create the configuration file
  ecofoot config init

  # Overwrite an existing configuration
  ecofoot config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// runConfigInit writes the default configuration unless one already exists.
func runConfigInit(cmd *cobra.Command, force bool) error {
	cfg := config.New()

	if !force {
		if _, err := os.Stat(cfg.ConfigPath()); err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), err)
		}
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", cfg.ConfigPath())

	return nil
}

// NewConfigValidateCmd creates the config validate command.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness.

This includes:
- YAML/JSON syntax
- Output format, precision, and color mode
- Chart width
- Logging level and format`,
		Example: `  # Validate the current configuration
  ecofoot config validate

  # Validate and show the effective values
  ecofoot config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show the effective configuration values")

	return cmd
}

// runConfigValidate parses and validates the configuration, including any
// ECOFOOT_ environment overrides.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	path := config.New().ConfigPath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cmd.Printf("No configuration file at %s; built-in defaults apply\n", path)
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printConfigDetails(cmd, cfg)
	}

	return nil
}

// printConfigDetails prints the effective configuration values.
func printConfigDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Output precision: %d\n", cfg.Output.Precision)
	cmd.Printf("  Locale: %s\n", cfg.Output.Locale)
	cmd.Printf("  Color mode: %s\n", cfg.Output.Color)
	cmd.Printf("  Chart enabled: %t\n", cfg.Chart.Enabled)
	cmd.Printf("  Chart width: %d\n", cfg.Chart.Width)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Logging format: %s\n", cfg.Logging.Format)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
}
