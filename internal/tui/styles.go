// Package tui implements the interactive survey and footprint
// calculator built on Bubble Tea.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette shared across all interactive views.
const (
	ColorHeader   = lipgloss.Color("39")  // blue
	ColorBorder   = lipgloss.Color("240") // gray
	ColorLabel    = lipgloss.Color("245") // light gray
	ColorValue    = lipgloss.Color("252") // near white
	ColorMuted    = lipgloss.Color("241") // dim gray
	ColorOK       = lipgloss.Color("42")  // green
	ColorWarning  = lipgloss.Color("214") // orange
	ColorCritical = lipgloss.Color("203") // red
)

// IconArrowRight marks the active row in step lists.
const IconArrowRight = "→"

// Default display dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Shared styles built from the palette.
//
//nolint:gochecknoglobals // Lipgloss styles are package-level by convention.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)
