package render

import (
	"fmt"
	"io"
	"strings"
)

// TableOptions controls the optional sections of the table report.
type TableOptions struct {
	Chart      bool
	ChartWidth int
}

// WriteTable renders a report as a human-readable table. Numbers go
// through the Formatter so the output honors the configured locale.
func WriteTable(w io.Writer, rpt Report, f *Formatter, opts TableOptions) error {
	title := "Household Footprint Estimate"
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
	fmt.Fprintln(w)

	if rpt.Profile != "" {
		fmt.Fprintf(w, "Profile: %s\n", rpt.Profile)
	}
	fmt.Fprintf(w, "People:  %s\n", f.Int(rpt.Household.People))
	fmt.Fprintf(w, "Report:  %s\n", rpt.ID)
	fmt.Fprintln(w)

	section := "Annual Emissions by Category"
	fmt.Fprintln(w, section)
	fmt.Fprintln(w, strings.Repeat("-", len(section)))
	fmt.Fprintln(w, Legend(rpt.Result, f))
	if opts.Chart {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %s\n", Chart(rpt.Result, opts.ChartWidth))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Subtotal:          %s\n", f.Tonnes(rpt.Result.Subtotal))
	fmt.Fprintf(w, "Practice factor:   x%s\n", f.Factor(rpt.Result.PracticeFactor))
	fmt.Fprintf(w, "Engagement factor: x%s (bonus %s)\n", f.Factor(rpt.Result.EngagementFactor), f.Int(int(rpt.Bonus)))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Total:      %s CO2e/year\n", f.Tonnes(rpt.Result.Total))
	fmt.Fprintf(w, "Per person: %s CO2e/year\n", f.Tonnes(rpt.Result.PerPerson))
	fmt.Fprintf(w, "Tier:       %s (%s)\n", rpt.Result.Tier, rpt.TierLabel)

	if rpt.Household.WalkedKmToday > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Walking today avoided %s CO2e (%s).\n",
			f.Kg(rpt.Result.AvoidedKg), f.Km(rpt.Household.WalkedKmToday))
	}

	return nil
}
