package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/greensteps/ecofoot/internal/footprint"
)

// Chart drawing characters.
const (
	chartBlock  = "█"
	legendMark  = "■"
	minBarWidth = 10
)

// categoryColors is the shared category palette. The interactive view
// uses the same colors so both surfaces stay consistent.
//
//nolint:gochecknoglobals // Shared palette, read-only after init.
var categoryColors = map[footprint.Category]lipgloss.Color{
	footprint.CategoryHome:      lipgloss.Color("214"), // orange
	footprint.CategoryTransport: lipgloss.Color("39"),  // blue
	footprint.CategoryFood:      lipgloss.Color("42"),  // green
	footprint.CategoryOther:     lipgloss.Color("170"), // purple
	footprint.CategoryFlights:   lipgloss.Color("203"), // red
}

// CategoryColor returns the palette color for a category. Unknown
// categories get the default foreground.
func CategoryColor(c footprint.Category) lipgloss.Color {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return lipgloss.Color("")
}

// CategoryStyle returns a foreground style in the category's color.
func CategoryStyle(c footprint.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CategoryColor(c))
}

// Chart renders a single horizontal bar in which each category's share
// of the subtotal maps to a proportional run of colored blocks. The
// bar is exactly width cells wide; cumulative rounding keeps the total
// stable regardless of how the shares split.
func Chart(result footprint.Result, width int) string {
	if width < minBarWidth {
		width = minBarWidth
	}
	if result.Subtotal <= 0 {
		return strings.Repeat(" ", width)
	}

	var sb strings.Builder
	filled := 0
	cumulative := 0.0
	for _, amount := range result.Breakdown {
		cumulative += amount.Tonnes / result.Subtotal
		cells := int(math.Round(cumulative*float64(width))) - filled
		if cells <= 0 {
			continue
		}
		sb.WriteString(CategoryStyle(amount.Category).Render(strings.Repeat(chartBlock, cells)))
		filled += cells
	}
	return sb.String()
}

// Legend renders one line per category: a colored marker, the category
// label, the formatted amount, and its share of the subtotal.
func Legend(result footprint.Result, f *Formatter) string {
	var sb strings.Builder
	for i, amount := range result.Breakdown {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("  ")
		sb.WriteString(CategoryStyle(amount.Category).Render(legendMark))
		sb.WriteString(" ")
		sb.WriteString(padRight(amount.Category.Label(), categoryLabelWidth))
		sb.WriteString(padLeft(f.Tonnes(amount.Tonnes), amountColumnWidth))
		sb.WriteString("  ")
		sb.WriteString(padLeft(f.Percent(Share(amount, result.Subtotal)), percentColumnWidth))
	}
	return sb.String()
}

// Column widths for the legend layout.
const (
	categoryLabelWidth = 18
	amountColumnWidth  = 10
	percentColumnWidth = 7
)

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
