package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/greensteps/ecofoot/internal/footprint"
	"github.com/greensteps/ecofoot/internal/render"
	"github.com/greensteps/ecofoot/internal/survey"
)

// Layout constants for the calculator field table.
const (
	fieldLabelWidth = 22
	resultBarWidth  = 40
)

// fieldLabel returns the display label for a fixed household row.
//
//nolint:exhaustive // Practice rows are rendered separately.
func fieldLabel(row calcRow) string {
	switch row {
	case rowPeople:
		return "People"
	case rowTransport:
		return "Transport"
	case rowDiet:
		return "Diet"
	case rowEnergy:
		return "Energy saving"
	case rowSpending:
		return "Spending"
	case rowFlights:
		return "Annual flights"
	default:
		return ""
	}
}

// fieldValue returns the display value for a fixed household row.
//
//nolint:exhaustive // Practice rows are rendered separately.
func fieldValue(h footprint.Household, row calcRow) string {
	switch row {
	case rowPeople:
		return fmt.Sprintf("%d", h.People)
	case rowTransport:
		return h.TransportMode.Label()
	case rowDiet:
		return h.Diet.Label()
	case rowEnergy:
		return h.EnergySaving.Label()
	case rowSpending:
		return h.Spending.Label()
	case rowFlights:
		return h.Flights.Label()
	default:
		return ""
	}
}

// RenderCalculator renders the full calculator screen.
func RenderCalculator(m *CalculatorModel) string {
	var sb strings.Builder

	sb.WriteString(RenderCalculatorHeader(m.bonus))
	sb.WriteString("\n\n")

	// Fixed household fields
	for row := rowPeople; row < rowFirstPractice; row++ {
		focused := m.focusedRow == int(row)
		sb.WriteString(renderFieldRow(fieldLabel(row), fieldValue(m.household, row), focused))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	// Practice toggles
	sb.WriteString(HeaderStyle.Render("Green practices:"))
	sb.WriteString("\n")
	for i, p := range footprint.Practices() {
		focused := m.focusedRow == int(rowFirstPractice)+i
		sb.WriteString(renderChoiceRow(p.Label(), focused, true, m.household.Practices.Has(p)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	// Walked distance
	sb.WriteString(renderWalkedKmRow(m))
	sb.WriteString("\n\n")

	sb.WriteString(RenderResultPanel(m.result, m.formatter))
	sb.WriteString("\n\n")

	sb.WriteString(m.helpView())

	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(sb.String())
	}
	return sb.String()
}

// RenderCalculatorHeader renders the title and the survey bonus line.
func RenderCalculatorHeader(bonus survey.Bonus) string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("Footprint Calculator"))
	sb.WriteString("\n\n")

	sb.WriteString(LabelStyle.Render("Survey bonus: "))
	sb.WriteString(ValueStyle.Render(fmt.Sprintf("%d", int(bonus))))
	discount := int(bonus) * 2 //nolint:mnd // Two percent discount per bonus point.
	sb.WriteString(SubtleStyle.Render(fmt.Sprintf(" (%d%% engagement discount)", discount)))

	return sb.String()
}

// renderFieldRow renders one adjustable field line.
func renderFieldRow(label, value string, focused bool) string {
	var sb strings.Builder

	if focused {
		sb.WriteString(IconArrowRight + " ")
	} else {
		sb.WriteString("  ")
	}

	sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s", fieldLabelWidth, label)))

	if focused {
		sb.WriteString(ValueStyle.Render("< " + value + " >"))
	} else {
		sb.WriteString(ValueStyle.Render(value))
	}

	return sb.String()
}

// renderWalkedKmRow renders the walked distance line, inlining the
// text input while it is being edited.
func renderWalkedKmRow(m *CalculatorModel) string {
	focused := m.focusedRow == walkedKmRow()

	var sb strings.Builder
	if focused {
		sb.WriteString(IconArrowRight + " ")
	} else {
		sb.WriteString("  ")
	}
	sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s", fieldLabelWidth, "Walked today (km)")))

	if m.editMode && focused {
		sb.WriteString(m.kmInput.View())
	} else {
		sb.WriteString(ValueStyle.Render(m.formatter.Km(m.household.WalkedKmToday)))
	}

	return sb.String()
}

// TierStyle returns the style for a tier: green for the two best
// bands, orange for average, red below that.
func TierStyle(t footprint.Tier) lipgloss.Style {
	var color lipgloss.Color
	switch t {
	case footprint.TierS, footprint.TierA:
		color = ColorOK
	case footprint.TierB:
		color = ColorWarning
	case footprint.TierC, footprint.TierD:
		color = ColorCritical
	default:
		color = ColorValue
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

// RenderResultPanel renders the live estimate below the fields: the
// factors, totals, tier, and the category bar with its legend.
func RenderResultPanel(result footprint.Result, f *render.Formatter) string {
	var sb strings.Builder

	sb.WriteString(HeaderStyle.Render("Estimate:"))
	sb.WriteString("\n")

	sb.WriteString(render.Legend(result, f))
	sb.WriteString("\n\n")
	sb.WriteString("  ")
	sb.WriteString(render.Chart(result, resultBarWidth))
	sb.WriteString("\n\n")

	sb.WriteString(LabelStyle.Render("Subtotal:   "))
	sb.WriteString(ValueStyle.Render(f.Tonnes(result.Subtotal)))
	sb.WriteString(SubtleStyle.Render(fmt.Sprintf("  (practices x%s, engagement x%s)",
		f.Factor(result.PracticeFactor), f.Factor(result.EngagementFactor))))
	sb.WriteString("\n")

	sb.WriteString(LabelStyle.Render("Total:      "))
	sb.WriteString(ValueStyle.Render(f.Tonnes(result.Total) + " CO2e/year"))
	sb.WriteString("\n")

	sb.WriteString(LabelStyle.Render("Per person: "))
	sb.WriteString(ValueStyle.Render(f.Tonnes(result.PerPerson) + " CO2e/year"))
	sb.WriteString("\n")

	sb.WriteString(LabelStyle.Render("Tier:       "))
	sb.WriteString(TierStyle(result.Tier).Render(fmt.Sprintf("%s (%s)", result.Tier, result.Tier.Label())))

	if result.AvoidedKg > 0 {
		sb.WriteString("\n")
		sb.WriteString(SubtleStyle.Render(fmt.Sprintf("Walking today avoided %s CO2e.", f.Kg(result.AvoidedKg))))
	}

	return sb.String()
}
