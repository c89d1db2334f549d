package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/greensteps/ecofoot/internal/config"
	"github.com/greensteps/ecofoot/internal/footprint"
	"github.com/greensteps/ecofoot/internal/logging"
	"github.com/greensteps/ecofoot/internal/render"
	"github.com/greensteps/ecofoot/internal/survey"
)

// keyValueParts is the number of parts in a key=value override.
const keyValueParts = 2

// WhatIfParams holds the parameters for the whatif command execution.
// Exported for testing.
type WhatIfParams struct {
	ProfilePath string
	Overrides   []string

	Output string
	Locale string
}

// whatIfDelta is the JSON shape of the baseline/modified difference.
type whatIfDelta struct {
	Total          float64 `json:"total"`
	PerPerson      float64 `json:"perPerson"`
	TotalPercent   float64 `json:"totalPercent"`
	TierFrom       string  `json:"tierFrom"`
	TierTo         string  `json:"tierTo"`
	TierMovement   string  `json:"tierMovement"`
	AvoidedKgDelta float64 `json:"avoidedKgDelta"`
}

// whatIfResponse is the JSON shape of a what-if comparison.
type whatIfResponse struct {
	Baseline render.Report `json:"baseline"`
	Modified render.Report `json:"modified"`
	Delta    whatIfDelta   `json:"delta"`
}

// overrideKeys lists the household fields --set can change, in render
// order. Keeping the order fixed makes override application and error
// reporting deterministic.
//
//nolint:gochecknoglobals // Static key list.
var overrideKeys = []string{
	"people", "transport", "diet", "energy", "spending", "flights", "practices", "walked-km", "bonus",
}

// NewWhatIfCmd creates the "whatif" command.
//
// The command loads a baseline profile, applies --set overrides to a copy,
// estimates both snapshots, and renders the difference.
func NewWhatIfCmd() *cobra.Command {
	var params WhatIfParams

	cmd := &cobra.Command{
		Use:   "whatif",
		Short: "Compare a profile against a modified copy",
		Long: `Compare a household profile against a copy with selected fields changed.

Overrides use key=value form. Valid keys: people, transport, diet,
energy, spending, flights, practices (comma-separated list), walked-km,
bonus.

Examples:
  # What if the family went mostly vegetarian?
  ecofoot whatif --profile family.yaml --set diet=veg

  # Combine several changes
  ecofoot whatif --profile family.yaml --set diet=veg --set transport=transit

  # Replace the practice list
  ecofoot whatif --profile family.yaml --set practices=recycling,thermostat`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeWhatIf(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.ProfilePath, "profile", "", "Path to the baseline profile (required)")
	cmd.Flags().StringArrayVar(&params.Overrides, "set", nil, "Field override in key=value form (repeatable)")
	cmd.Flags().StringVar(&params.Output, "output", "", "Output format (table, json, ndjson)")
	cmd.Flags().StringVar(&params.Locale, "locale", "", "Number formatting locale (e.g. en, de)")

	if err := cmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("marking profile flag required: %v", err))
	}

	return cmd
}

// ParseOverrides converts key=value strings into an override map.
// Exported for testing.
func ParseOverrides(overrides []string) (map[string]string, error) {
	parsed := make(map[string]string, len(overrides))
	for _, o := range overrides {
		parts := strings.SplitN(o, "=", keyValueParts)
		if len(parts) != keyValueParts || parts[0] == "" {
			return nil, fmt.Errorf("invalid override format: %q (expected key=value)", o)
		}
		parsed[parts[0]] = parts[1]
	}
	for key := range parsed {
		if !isOverrideKey(key) {
			return nil, fmt.Errorf("unknown override key: %q (valid keys: %s)",
				key, strings.Join(overrideKeys, ", "))
		}
	}
	return parsed, nil
}

func isOverrideKey(key string) bool {
	for _, k := range overrideKeys {
		if k == key {
			return true
		}
	}
	return false
}

// ApplyOverrides returns a copy of the household and bonus with the given
// overrides applied. The copy is re-validated, so an override cannot
// produce an out-of-contract snapshot. Exported for testing.
func ApplyOverrides(
	h footprint.Household,
	bonus survey.Bonus,
	overrides map[string]string,
) (footprint.Household, survey.Bonus, error) {
	var err error
	for _, key := range overrideKeys {
		value, ok := overrides[key]
		if !ok {
			continue
		}
		switch key {
		case "people":
			h.People, err = strconv.Atoi(value)
		case "transport":
			h.TransportMode, err = footprint.ParseTransportMode(value)
		case "diet":
			h.Diet, err = footprint.ParseDiet(value)
		case "energy":
			h.EnergySaving, err = footprint.ParseEnergySaving(value)
		case "spending":
			h.Spending, err = footprint.ParseSpending(value)
		case "flights":
			h.Flights, err = footprint.ParseFlights(value)
		case "practices":
			h.Practices, err = parsePracticeList(value)
		case "walked-km":
			h.WalkedKmToday, err = strconv.ParseFloat(value, 64)
		case "bonus":
			var b int
			if b, err = strconv.Atoi(value); err == nil {
				bonus = survey.Bonus(b)
				err = bonus.Validate()
			}
		}
		if err != nil {
			return h, bonus, fmt.Errorf("override %s=%s: %w", key, value, err)
		}
	}
	if err := h.Validate(); err != nil {
		return h, bonus, err
	}
	return h, bonus, nil
}

// parsePracticeList parses a comma-separated practice list. An empty
// value clears the set.
func parsePracticeList(value string) (footprint.PracticeSet, error) {
	var set footprint.PracticeSet
	if value == "" {
		return set, nil
	}
	for _, name := range strings.Split(value, ",") {
		p, err := footprint.ParsePractice(strings.TrimSpace(name))
		if err != nil {
			return set, err
		}
		set = set.With(p)
	}
	return set, nil
}

// executeWhatIf runs the what-if workflow: load the baseline, apply
// overrides, estimate both, render the comparison.
func executeWhatIf(cmd *cobra.Command, params WhatIfParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	start := time.Now()

	if len(params.Overrides) == 0 {
		return fmt.Errorf("no overrides given; use --set key=value (valid keys: %s)",
			strings.Join(overrideKeys, ", "))
	}

	overrides, err := ParseOverrides(params.Overrides)
	if err != nil {
		return err
	}

	baseH, baseBonus, name, err := resolveEstimateInput(EstimateParams{ProfilePath: params.ProfilePath})
	if err != nil {
		return err
	}

	modH, modBonus, err := ApplyOverrides(baseH, baseBonus, overrides)
	if err != nil {
		return err
	}

	log.Debug().Ctx(ctx).
		Str("operation", "whatif").
		Str("profile", params.ProfilePath).
		Int("overrides", len(overrides)).
		Msg("starting what-if comparison")

	baseline := render.NewReport(name, baseH, baseBonus, footprint.Estimate(baseH, baseBonus))
	modified := render.NewReport(name, modH, modBonus, footprint.Estimate(modH, modBonus))

	err = renderWhatIf(cmd.OutOrStdout(), outputFormat(params.Output), baseline, modified, params)
	if err != nil {
		return err
	}

	log.Info().Ctx(ctx).
		Str("operation", "whatif").
		Dur("duration_ms", time.Since(start)).
		Msg("what-if comparison complete")

	return nil
}

// buildDelta computes the baseline/modified difference.
func buildDelta(baseline, modified render.Report) whatIfDelta {
	totalDelta := modified.Result.Total - baseline.Result.Total
	percent := 0.0
	if baseline.Result.Total > 0 {
		percent = totalDelta / baseline.Result.Total * 100 //nolint:mnd // Fraction to percent.
	}
	return whatIfDelta{
		Total:          totalDelta,
		PerPerson:      modified.Result.PerPerson - baseline.Result.PerPerson,
		TotalPercent:   percent,
		TierFrom:       baseline.Result.Tier.String(),
		TierTo:         modified.Result.Tier.String(),
		TierMovement:   tierMovement(baseline.Result.Tier, modified.Result.Tier),
		AvoidedKgDelta: modified.Result.AvoidedKg - baseline.Result.AvoidedKg,
	}
}

// tierMovement describes the direction of a tier change. Tiers order from
// best (S) to worst (D), so a lower value is an improvement.
func tierMovement(from, to footprint.Tier) string {
	switch {
	case to < from:
		return "improved"
	case to > from:
		return "worsened"
	default:
		return "unchanged"
	}
}

// renderWhatIf renders the comparison in the requested format.
func renderWhatIf(w io.Writer, format string, baseline, modified render.Report, params WhatIfParams) error {
	switch format {
	case config.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(whatIfResponse{Baseline: baseline, Modified: modified, Delta: buildDelta(baseline, modified)})
	case config.FormatNDJSON:
		encoder := json.NewEncoder(w)
		return encoder.Encode(whatIfResponse{Baseline: baseline, Modified: modified, Delta: buildDelta(baseline, modified)})
	default:
		return renderWhatIfTable(w, baseline, modified, newFormatter(params.Locale), params.Overrides)
	}
}

// renderWhatIfTable renders the comparison as a three-column table.
func renderWhatIfTable(w io.Writer, baseline, modified render.Report, f *render.Formatter, overrides []string) error {
	delta := buildDelta(baseline, modified)

	fmt.Fprintln(w, "What-If Comparison")
	fmt.Fprintln(w, "==================")
	if baseline.Profile != "" {
		fmt.Fprintf(w, "Profile: %s\n", baseline.Profile)
	}
	fmt.Fprintf(w, "Changes: %s\n", strings.Join(overrides, ", "))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-12s %-14s %-14s %s\n", "", "Baseline", "Modified", "Delta")
	fmt.Fprintf(w, "%-12s %-14s %-14s %s (%s)\n", "Total:",
		f.Tonnes(baseline.Result.Total),
		f.Tonnes(modified.Result.Total),
		signedTonnes(f, delta.Total),
		signedPercent(delta.TotalPercent))
	fmt.Fprintf(w, "%-12s %-14s %-14s %s\n", "Per person:",
		f.Tonnes(baseline.Result.PerPerson),
		f.Tonnes(modified.Result.PerPerson),
		signedTonnes(f, delta.PerPerson))
	fmt.Fprintf(w, "%-12s %-14s %-14s %s\n", "Tier:",
		fmt.Sprintf("%s (%s)", baseline.Result.Tier, baseline.Result.Tier.Label()),
		fmt.Sprintf("%s (%s)", modified.Result.Tier, modified.Result.Tier.Label()),
		delta.TierMovement)
	if delta.AvoidedKgDelta != 0 {
		fmt.Fprintf(w, "%-12s %-14s %-14s %s\n", "Avoided:",
			f.Kg(baseline.Result.AvoidedKg),
			f.Kg(modified.Result.AvoidedKg),
			signedKg(f, delta.AvoidedKgDelta))
	}
	return nil
}

// signedTonnes formats a tonnes delta with an explicit plus sign for
// increases. Negative values already carry the locale's minus sign.
func signedTonnes(f *render.Formatter, v float64) string {
	if v > 0 {
		return "+" + f.Tonnes(v)
	}
	return f.Tonnes(v)
}

func signedKg(f *render.Formatter, v float64) string {
	if v > 0 {
		return "+" + f.Kg(v)
	}
	return f.Kg(v)
}

func signedPercent(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}
