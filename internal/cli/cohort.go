package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/greensteps/ecofoot/internal/config"
	"github.com/greensteps/ecofoot/internal/footprint"
	"github.com/greensteps/ecofoot/internal/logging"
	"github.com/greensteps/ecofoot/internal/profile"
	"github.com/greensteps/ecofoot/internal/render"
)

// CohortParams holds the parameters for the cohort command execution.
// Exported for testing.
type CohortParams struct {
	Paths []string

	Concurrency int
	Output      string
	Locale      string
}

// cohortStats summarizes the per-person totals of a cohort.
type cohortStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// tierCount is one row of a cohort tier distribution.
type tierCount struct {
	Tier  string `json:"tier"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// cohortResponse is the JSON shape of a cohort summary.
type cohortResponse struct {
	Profiles []render.Report `json:"profiles"`
	Stats    cohortStats     `json:"perPersonStats"`
	Tiers    []tierCount     `json:"tierDistribution"`
}

// NewCohortCmd creates the "cohort" command.
//
// Profiles are loaded and estimated concurrently; output preserves the
// argument order.
func NewCohortCmd() *cobra.Command {
	var params CohortParams

	cmd := &cobra.Command{
		Use:   "cohort <profile>...",
		Short: "Estimate a set of profiles and summarize the cohort",
		Long: `Estimate every given profile and summarize the cohort.

The summary reports each profile's total, per-person figure, and tier,
followed by per-person statistics (mean, median, standard deviation,
range) and the tier distribution.

Examples:
  # Compare the whole street
  ecofoot cohort house1.yaml house2.yaml house3.yaml

  # Machine-readable, one report per line
  ecofoot cohort profiles/*.yaml --output ndjson`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params.Paths = args
			return executeCohort(cmd, params)
		},
	}

	cmd.Flags().IntVar(&params.Concurrency, "concurrency", runtime.NumCPU(),
		"Maximum profiles estimated in parallel")
	cmd.Flags().StringVar(&params.Output, "output", "", "Output format (table, json, ndjson)")
	cmd.Flags().StringVar(&params.Locale, "locale", "", "Number formatting locale (e.g. en, de)")

	return cmd
}

// executeCohort loads and estimates all profiles concurrently, then
// renders the summary.
func executeCohort(cmd *cobra.Command, params CohortParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	start := time.Now()

	if params.Concurrency < 1 {
		params.Concurrency = 1
	}

	log.Debug().Ctx(ctx).
		Str("operation", "cohort").
		Int("profiles", len(params.Paths)).
		Int("concurrency", params.Concurrency).
		Msg("starting cohort estimation")

	reports, err := estimateCohort(cmd, params)
	if err != nil {
		return err
	}

	err = renderCohort(cmd.OutOrStdout(), outputFormat(params.Output), reports, params)
	if err != nil {
		return err
	}

	log.Info().Ctx(ctx).
		Str("operation", "cohort").
		Int("profiles", len(reports)).
		Dur("duration_ms", time.Since(start)).
		Msg("cohort estimation complete")

	return nil
}

// estimateCohort loads and estimates the profiles with bounded
// concurrency. Results keep the argument order; the first load error
// cancels the remaining work.
func estimateCohort(cmd *cobra.Command, params CohortParams) ([]render.Report, error) {
	memo, err := footprint.NewMemoizer(footprint.DefaultMemoSize)
	if err != nil {
		return nil, err
	}

	reports := make([]render.Report, len(params.Paths))

	g, gCtx := errgroup.WithContext(cmd.Context())
	g.SetLimit(params.Concurrency)

	for i, path := range params.Paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			p, err := profile.Load(path)
			if err != nil {
				return fmt.Errorf("loading profile %s: %w", path, err)
			}
			bonus := p.Bonus()
			reports[i] = render.NewReport(p.Name, p.Household, bonus, memo.Estimate(p.Household, bonus))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// buildCohortStats computes the per-person statistics of the cohort.
func buildCohortStats(reports []render.Report) cohortStats {
	values := make([]float64, len(reports))
	for i, rpt := range reports {
		values[i] = rpt.Result.PerPerson
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	stats := cohortStats{
		Count:  len(values),
		Mean:   stat.Mean(values, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil), //nolint:mnd // Median quantile.
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
	// Sample standard deviation needs at least two observations.
	if len(values) > 1 {
		stats.StdDev = stat.StdDev(values, nil)
	}
	return stats
}

// buildTierDistribution counts profiles per tier, best to worst.
func buildTierDistribution(reports []render.Report) []tierCount {
	counts := make(map[footprint.Tier]int, len(reports))
	for _, rpt := range reports {
		counts[rpt.Result.Tier]++
	}
	dist := make([]tierCount, 0, len(footprint.Tiers()))
	for _, t := range footprint.Tiers() {
		dist = append(dist, tierCount{Tier: t.String(), Label: t.Label(), Count: counts[t]})
	}
	return dist
}

// renderCohort renders the cohort summary in the requested format.
func renderCohort(w io.Writer, format string, reports []render.Report, params CohortParams) error {
	switch format {
	case config.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(cohortResponse{
			Profiles: reports,
			Stats:    buildCohortStats(reports),
			Tiers:    buildTierDistribution(reports),
		})
	case config.FormatNDJSON:
		return render.WriteNDJSON(w, reports...)
	default:
		return renderCohortTable(w, reports, newFormatter(params.Locale))
	}
}

// renderCohortTable renders the cohort summary as a plain table.
func renderCohortTable(w io.Writer, reports []render.Report, f *render.Formatter) error {
	fmt.Fprintln(w, "Cohort Footprint Summary")
	fmt.Fprintln(w, "========================")
	fmt.Fprintf(w, "Profiles: %d\n", len(reports))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-20s %-8s %-12s %-12s %s\n", "Profile", "People", "Total", "Per person", "Tier")
	for i, rpt := range reports {
		name := rpt.Profile
		if name == "" {
			name = fmt.Sprintf("profile %d", i+1)
		}
		fmt.Fprintf(w, "%-20s %-8s %-12s %-12s %s\n",
			name,
			f.Int(rpt.Household.People),
			f.Tonnes(rpt.Result.Total),
			f.Tonnes(rpt.Result.PerPerson),
			rpt.Result.Tier)
	}

	stats := buildCohortStats(reports)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Per-Person Statistics")
	fmt.Fprintln(w, "---------------------")
	fmt.Fprintf(w, "Mean:    %s\n", f.Tonnes(stats.Mean))
	fmt.Fprintf(w, "Median:  %s\n", f.Tonnes(stats.Median))
	fmt.Fprintf(w, "Std dev: %s\n", f.Tonnes(stats.StdDev))
	fmt.Fprintf(w, "Range:   %s to %s\n", f.Tonnes(stats.Min), f.Tonnes(stats.Max))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tier Distribution")
	fmt.Fprintln(w, "-----------------")
	for _, tc := range buildTierDistribution(reports) {
		fmt.Fprintf(w, "%s  %3d  %s\n", tc.Tier, tc.Count, tc.Label)
	}
	return nil
}
