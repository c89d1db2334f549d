// Package cli wires the ecofoot commands: the estimate, survey,
// whatif, and cohort workflows plus profile and config management.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/greensteps/ecofoot/internal/config"
	"github.com/greensteps/ecofoot/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the ecofoot CLI.
// It wires up configuration loading, logging, tracing, and the
// subcommands (estimate, survey, whatif, cohort, profile, config).
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "ecofoot",
		Short:   "Household carbon footprint estimator",
		Long:    "ecofoot: estimate a household's annual carbon footprint from lifestyle answers",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			if configPath != "" {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				config.SetGlobalConfig(cfg)
			} else {
				config.InitGlobalConfig()
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to config file (default ~/.ecofoot/config.yaml)")

	cmd.AddCommand(
		NewEstimateCmd(), NewSurveyCmd(), NewWhatIfCmd(), NewCohortCmd(),
		newProfileCmd(), newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Estimate from a saved profile
  ecofoot estimate --profile family.yaml

  # Estimate from flags
  ecofoot estimate --people 4 --transport car --diet meat --flights few

  # Adjust the household interactively
  ecofoot estimate --profile family.yaml --interactive

  # Run the trail survey, then the calculator
  ecofoot survey

  # Compare a change against a saved profile
  ecofoot whatif --profile family.yaml --set diet=veg --set practices=recycling

  # Aggregate several profiles
  ecofoot cohort profiles/*.yaml

  # Create a starter profile
  ecofoot profile init family.yaml

  # Initialize configuration
  ecofoot config init`

// newProfileCmd creates the profile command group.
func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "profile", Short: "Household profile management commands"}
	cmd.AddCommand(NewProfileInitCmd(), NewProfileShowCmd())
	return cmd
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}
