package cli

import (
	"github.com/spf13/cobra"

	"github.com/greensteps/ecofoot/internal/footprint"
	"github.com/greensteps/ecofoot/internal/profile"
	"github.com/greensteps/ecofoot/internal/survey"
)

// defaultProfilePath is where profile init writes without an argument.
const defaultProfilePath = "ecofoot-profile.yaml"

// NewProfileInitCmd creates the profile init command. It writes a commented
// starter profile ready for editing.
func NewProfileInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter household profile",
		Long: `Writes a commented starter profile listing every accepted value.

Edit the file, then feed it to estimate, whatif, or cohort.`,
		Example: `  # Starter profile in the working directory
  ecofoot profile init

  # Explicit location
  ecofoot profile init household/family.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultProfilePath
			if len(args) == 1 {
				path = args[0]
			}
			if err := profile.Scaffold(path); err != nil {
				return err
			}
			cmd.Printf("Profile written to %s\n", path)
			cmd.Println("Edit it, then run: ecofoot estimate --profile", path)
			return nil
		},
	}
}

// NewProfileShowCmd creates the profile show command. It validates a
// profile and prints its content with human-readable labels.
func NewProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <path>",
		Short: "Validate a profile and show its content",
		Example: `  # Check a profile parses cleanly
  ecofoot profile show family.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := profile.Load(args[0])
			if err != nil {
				return err
			}
			printProfile(cmd, p)
			return nil
		},
	}
}

// printProfile prints a validated profile with labeled fields.
func printProfile(cmd *cobra.Command, p *profile.Profile) {
	cmd.Printf("Profile: %s\n", p.Name)
	cmd.Println()
	cmd.Println("Household")
	cmd.Println("---------")
	cmd.Printf("  People:    %d\n", p.Household.People)
	cmd.Printf("  Transport: %s\n", p.Household.TransportMode.Label())
	cmd.Printf("  Diet:      %s\n", p.Household.Diet.Label())
	cmd.Printf("  Energy:    %s\n", p.Household.EnergySaving.Label())
	cmd.Printf("  Spending:  %s\n", p.Household.Spending.Label())
	cmd.Printf("  Flights:   %s\n", p.Household.Flights.Label())
	printProfilePractices(cmd, p.Household)
	if p.Household.WalkedKmToday > 0 {
		cmd.Printf("  Walked today: %.1f km\n", p.Household.WalkedKmToday)
	}

	cmd.Println()
	cmd.Println("Survey")
	cmd.Println("------")
	cmd.Printf("  Knows the trail:  %s\n", yesNo(p.Survey.KnowsTrail))
	cmd.Printf("  Walked the trail: %s\n", yesNo(p.Survey.HasWalkedTrail))
	for _, r := range p.Survey.Reasons {
		cmd.Printf("  Reason: %s\n", r.Label())
	}
	for _, s := range p.Survey.Satisfaction {
		cmd.Printf("  Satisfied with: %s\n", s.Label())
	}
	cmd.Printf("  Bonus: %d of %d\n", int(p.Bonus()), survey.MaxBonus)
}

// printProfilePractices lists the profile's practices, one per line.
func printProfilePractices(cmd *cobra.Command, h footprint.Household) {
	practices := h.Practices.Practices()
	if len(practices) == 0 {
		cmd.Println("  Practices: none")
		return
	}
	cmd.Println("  Practices:")
	for _, p := range practices {
		cmd.Printf("    - %s\n", p.Label())
	}
}
