package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/greensteps/ecofoot/internal/config"
	"github.com/greensteps/ecofoot/internal/footprint"
	"github.com/greensteps/ecofoot/internal/logging"
	"github.com/greensteps/ecofoot/internal/profile"
	"github.com/greensteps/ecofoot/internal/render"
	"github.com/greensteps/ecofoot/internal/survey"
	"github.com/greensteps/ecofoot/internal/tui"
)

// EstimateParams holds the parameters for the estimate command execution.
// Exported for testing.
type EstimateParams struct {
	// Profile mode flags
	ProfilePath string

	// Flag mode: household fields
	People    int
	Transport string
	Diet      string
	Energy    string
	Spending  string
	Flights   string
	Practices []string
	WalkedKm  float64
	Bonus     int

	// Common flags
	Interactive bool
	Output      string
	Locale      string
	NoChart     bool

	// BonusSet records whether --bonus was given explicitly, so a flag
	// value of zero can still override a profile's survey-derived bonus.
	BonusSet bool
}

// householdFlagNames are the flags that conflict with --profile.
//
//nolint:gochecknoglobals // Static flag name list.
var householdFlagNames = []string{
	"people", "transport", "diet", "energy", "spending", "flights", "practice", "walked-km",
}

// NewEstimateCmd creates the "estimate" command.
//
// The command supports two mutually exclusive input modes:
//
//  1. Profile mode: --profile loads a saved household profile, including
//     any recorded survey answers.
//  2. Flag mode: the household is described directly with flags; unset
//     flags fall back to a single-person neutral household.
//
// Common flags:
//   - --output: Output format (table, json, ndjson)
//   - --interactive: Adjust the household in a TUI before the final report
//   - --locale: Number formatting locale (overrides config)
//   - --no-chart: Suppress the category bar in table output
//   - --bonus: Survey engagement bonus (0-4)
func NewEstimateCmd() *cobra.Command {
	var params EstimateParams

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate a household's annual carbon footprint",
		Long: `Estimate a household's annual carbon footprint in tonnes CO2e.

The household comes from a saved profile or from flags. The report
breaks the total down by category, applies practice and survey-bonus
discounts, and classifies the per-person figure into a tier.

Examples:
  # From a saved profile
  ecofoot estimate --profile family.yaml

  # From flags
  ecofoot estimate --people 4 --transport car --diet meat --flights few

  # Adjust interactively, then print the final report
  ecofoot estimate --profile family.yaml --interactive

  # Machine-readable output
  ecofoot estimate --profile family.yaml --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.BonusSet = cmd.Flags().Changed("bonus")
			return executeEstimate(cmd, params, anyHouseholdFlagChanged(cmd))
		},
	}

	// Profile mode flags
	cmd.Flags().StringVar(&params.ProfilePath, "profile", "", "Path to a household profile (YAML or JSON)")

	// Flag mode: household fields
	cmd.Flags().IntVar(&params.People, "people", 1, "Number of people in the household")
	cmd.Flags().StringVar(&params.Transport, "transport", footprint.TransportMixed.String(),
		"Transport mode (car, mixed, transit, active)")
	cmd.Flags().StringVar(&params.Diet, "diet", footprint.DietMixed.String(),
		"Diet (meat, mixed, veg)")
	cmd.Flags().StringVar(&params.Energy, "energy", footprint.EnergyMid.String(),
		"Energy-saving effort (high, mid, low)")
	cmd.Flags().StringVar(&params.Spending, "spending", footprint.SpendingMid.String(),
		"Lifestyle spending (frugal, mid, spend)")
	cmd.Flags().StringVar(&params.Flights, "flights", footprint.FlightsNone.String(),
		"Annual flights (none, few, some, many)")
	cmd.Flags().StringArrayVar(&params.Practices, "practice", nil,
		"Green practice the household follows (repeatable)")
	cmd.Flags().Float64Var(&params.WalkedKm, "walked-km", 0, "Kilometers walked today instead of driving")
	cmd.Flags().IntVar(&params.Bonus, "bonus", 0, "Survey engagement bonus (0-4)")

	// Common flags
	cmd.Flags().BoolVar(&params.Interactive, "interactive", false, "Adjust the household in a TUI first")
	cmd.Flags().StringVar(&params.Output, "output", "", "Output format (table, json, ndjson)")
	cmd.Flags().StringVar(&params.Locale, "locale", "", "Number formatting locale (e.g. en, de)")
	cmd.Flags().BoolVar(&params.NoChart, "no-chart", false, "Suppress the category bar in table output")

	return cmd
}

// anyHouseholdFlagChanged reports whether the user set any flag that
// describes the household directly.
func anyHouseholdFlagChanged(cmd *cobra.Command) bool {
	for _, name := range householdFlagNames {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// ValidateEstimateFlags validates that the estimate command flags are
// consistent. Exported for testing.
//
// Rules:
//   - --profile is mutually exclusive with the household flags
//   - --bonus must stay within the survey's 0-4 range
func ValidateEstimateFlags(params *EstimateParams, householdFlagsSet bool) error {
	if params.ProfilePath != "" && householdFlagsSet {
		return errors.New(
			"cannot mix --profile with household flags (--people, --transport, --diet, " +
				"--energy, --spending, --flights, --practice, --walked-km)")
	}
	if err := survey.Bonus(params.Bonus).Validate(); err != nil {
		return err
	}
	return nil
}

// BuildHouseholdFromParams converts flag values into a validated
// Household. Exported for testing.
func BuildHouseholdFromParams(params EstimateParams) (footprint.Household, error) {
	var h footprint.Household
	var err error

	h.People = params.People
	if h.TransportMode, err = footprint.ParseTransportMode(params.Transport); err != nil {
		return h, err
	}
	if h.Diet, err = footprint.ParseDiet(params.Diet); err != nil {
		return h, err
	}
	if h.EnergySaving, err = footprint.ParseEnergySaving(params.Energy); err != nil {
		return h, err
	}
	if h.Spending, err = footprint.ParseSpending(params.Spending); err != nil {
		return h, err
	}
	if h.Flights, err = footprint.ParseFlights(params.Flights); err != nil {
		return h, err
	}
	for _, name := range params.Practices {
		p, perr := footprint.ParsePractice(name)
		if perr != nil {
			return h, perr
		}
		h.Practices = h.Practices.With(p)
	}
	h.WalkedKmToday = params.WalkedKm

	if err := h.Validate(); err != nil {
		return h, err
	}
	return h, nil
}

// resolveEstimateInput produces the household, bonus, and display name
// from either the profile or the flag values.
func resolveEstimateInput(params EstimateParams) (footprint.Household, survey.Bonus, string, error) {
	if params.ProfilePath != "" {
		p, err := profile.Load(params.ProfilePath)
		if err != nil {
			return footprint.Household{}, 0, "", fmt.Errorf("loading profile: %w", err)
		}
		bonus := p.Bonus()
		if params.BonusSet {
			bonus = survey.Bonus(params.Bonus)
		}
		return p.Household, bonus, p.Name, nil
	}

	h, err := BuildHouseholdFromParams(params)
	if err != nil {
		return footprint.Household{}, 0, "", err
	}
	return h, survey.Bonus(params.Bonus), "", nil
}

// newFormatter builds the report formatter from the locale flag or the
// configured defaults.
func newFormatter(locale string) *render.Formatter {
	if locale == "" {
		locale = config.GetLocale()
	}
	return render.NewFormatter(locale, config.GetOutputPrecision())
}

// tableOptions builds the chart options from config and the --no-chart
// flag.
func tableOptions(noChart bool) render.TableOptions {
	chartCfg := config.GetChartConfig()
	return render.TableOptions{
		Chart:      chartCfg.Enabled && !noChart,
		ChartWidth: chartCfg.Width,
	}
}

// outputFormat resolves the effective output format.
func outputFormat(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return config.GetDefaultOutputFormat()
}

// executeEstimate runs the estimate workflow: validate flags, resolve
// the household, estimate, and render.
func executeEstimate(cmd *cobra.Command, params EstimateParams, householdFlagsSet bool) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	start := time.Now()

	if err := ValidateEstimateFlags(&params, householdFlagsSet); err != nil {
		return err
	}

	h, bonus, name, err := resolveEstimateInput(params)
	if err != nil {
		return err
	}

	log.Debug().Ctx(ctx).
		Str("operation", "estimate").
		Str("profile", params.ProfilePath).
		Int("people", h.People).
		Int("bonus", int(bonus)).
		Bool("interactive", params.Interactive).
		Msg("starting footprint estimation")

	if params.Interactive {
		err = executeInteractiveEstimate(cmd, params, h, bonus, name)
	} else {
		result := footprint.Estimate(h, bonus)
		rpt := render.NewReport(name, h, bonus, result)
		err = renderReport(cmd.OutOrStdout(), outputFormat(params.Output), rpt, params)
	}
	if err != nil {
		return err
	}

	log.Info().Ctx(ctx).
		Str("operation", "estimate").
		Dur("duration_ms", time.Since(start)).
		Msg("footprint estimation complete")

	return nil
}

// executeInteractiveEstimate launches the calculator TUI seeded with
// the resolved household. When the TUI exits, the final estimate is
// printed using the configured output format.
func executeInteractiveEstimate(
	cmd *cobra.Command,
	params EstimateParams,
	h footprint.Household,
	bonus survey.Bonus,
	name string,
) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if !isTerminal(os.Stdin) {
		return errors.New("interactive mode requires a terminal")
	}

	log.Debug().Ctx(ctx).Int("people", h.People).Msg("launching interactive calculator")

	model := tui.NewCalculatorModel(h, bonus, newFormatter(params.Locale))
	program := tea.NewProgram(model)

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("running interactive calculator: %w", err)
	}

	calcModel, ok := finalModel.(*tui.CalculatorModel)
	if !ok {
		// This should not happen unless the TUI library changes
		return fmt.Errorf("unexpected model type: %T, expected *tui.CalculatorModel", finalModel)
	}

	rpt := render.NewReport(name, calcModel.GetHousehold(), calcModel.GetBonus(), calcModel.GetResult())
	cmd.Println("\nFinal Estimate:")
	return renderReport(cmd.OutOrStdout(), outputFormat(params.Output), rpt, params)
}

// renderReport renders a single report to the output.
func renderReport(w io.Writer, format string, rpt render.Report, params EstimateParams) error {
	switch format {
	case config.FormatJSON:
		return render.WriteJSON(w, rpt)
	case config.FormatNDJSON:
		return render.WriteNDJSON(w, rpt)
	default:
		return render.WriteTable(w, rpt, newFormatter(params.Locale), tableOptions(params.NoChart))
	}
}
