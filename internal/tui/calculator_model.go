package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/greensteps/ecofoot/internal/footprint"
	"github.com/greensteps/ecofoot/internal/render"
	"github.com/greensteps/ecofoot/internal/survey"
)

// CalculatorState represents the current state of the calculator TUI.
type CalculatorState int

const (
	// CalculatorStateEditing indicates the user is adjusting household fields.
	CalculatorStateEditing CalculatorState = iota
	// CalculatorStateQuitting indicates the application is exiting.
	CalculatorStateQuitting
)

// calcRow identifies one editable row. The fixed household fields come
// first, then one row per practice, then the walked distance.
type calcRow int

const (
	rowPeople calcRow = iota
	rowTransport
	rowDiet
	rowEnergy
	rowSpending
	rowFlights
	rowFirstPractice
)

// kmInputWidth bounds the walked distance text input.
const kmInputWidth = 8

// CalculatorModel is the Bubble Tea model for the interactive
// footprint calculator. Every field change recomputes the estimate
// immediately; the calculation is pure and cheap, so no asynchronous
// command is needed.
type CalculatorModel struct {
	household footprint.Household
	bonus     survey.Bonus
	result    footprint.Result

	// Row focus and walked-km editing
	focusedRow int
	editMode   bool
	kmInput    textinput.Model

	keys     calcKeyMap
	editKeys editKeyMap
	help     help.Model

	formatter *render.Formatter

	state  CalculatorState
	width  int
	height int
}

// NewCalculatorModel creates a calculator seeded with the given
// household and survey bonus. The initial estimate is computed up
// front so the first frame already shows a result.
func NewCalculatorModel(h footprint.Household, bonus survey.Bonus, f *render.Formatter) *CalculatorModel {
	input := textinput.New()
	input.Placeholder = "0.0"
	input.CharLimit = kmInputWidth
	input.Width = kmInputWidth

	m := &CalculatorModel{
		household: h,
		bonus:     bonus,
		kmInput:   input,
		keys:      newCalcKeyMap(),
		editKeys:  newEditKeyMap(),
		help:      help.New(),
		formatter: f,
		state:     CalculatorStateEditing,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.recompute()
	return m
}

// rowCount returns the total number of editable rows.
func rowCount() int {
	return int(rowFirstPractice) + len(footprint.Practices()) + 1
}

// walkedKmRow returns the index of the walked distance row, which is
// always last.
func walkedKmRow() int {
	return rowCount() - 1
}

// practiceAt maps a row index to its practice. The second return is
// false for non-practice rows.
func practiceAt(row int) (footprint.Practice, bool) {
	idx := row - int(rowFirstPractice)
	practices := footprint.Practices()
	if idx < 0 || idx >= len(practices) {
		return 0, false
	}
	return practices[idx], true
}

// recompute refreshes the estimate from the current household state.
func (m *CalculatorModel) recompute() {
	m.result = footprint.Estimate(m.household, m.bonus)
}

// Init initializes the model.
func (m *CalculatorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.editMode {
			return m.handleEditModeKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *CalculatorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Done):
		m.state = CalculatorStateQuitting
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.focusedRow > 0 {
			m.focusedRow--
		}

	case key.Matches(msg, m.keys.Down):
		if m.focusedRow < rowCount()-1 {
			m.focusedRow++
		}

	case key.Matches(msg, m.keys.Left):
		m.adjust(-1)

	case key.Matches(msg, m.keys.Right):
		m.adjust(1)

	case key.Matches(msg, m.keys.Toggle):
		if p, ok := practiceAt(m.focusedRow); ok {
			m.household.Practices = m.household.Practices.Toggle(p)
			m.recompute()
		}

	case key.Matches(msg, m.keys.Edit):
		if m.focusedRow == walkedKmRow() {
			m.editMode = true
			m.kmInput.SetValue(strconv.FormatFloat(m.household.WalkedKmToday, 'f', -1, 64))
			m.kmInput.Focus()
			return m, textinput.Blink
		}
		if p, ok := practiceAt(m.focusedRow); ok {
			m.household.Practices = m.household.Practices.Toggle(p)
			m.recompute()
		}
	}

	return m, nil
}

// handleEditModeKey routes input to the walked distance text field.
func (m *CalculatorModel) handleEditModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.editKeys.Apply):
		if km, err := strconv.ParseFloat(m.kmInput.Value(), 64); err == nil && km >= 0 {
			m.household.WalkedKmToday = km
			m.recompute()
		}
		m.editMode = false
		m.kmInput.Blur()
		return m, nil

	case key.Matches(msg, m.editKeys.Cancel):
		m.editMode = false
		m.kmInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.kmInput, cmd = m.kmInput.Update(msg)
	return m, cmd
}

// adjust applies a left/right change to the focused row. Enum rows
// cycle with wraparound; people steps down to its lower bound of one.
// Practice toggles and the distance field ignore left/right.
//
//nolint:exhaustive // Practice and walked-km rows are filtered out above the switch.
func (m *CalculatorModel) adjust(delta int) {
	if m.focusedRow >= int(rowFirstPractice) {
		return
	}

	switch calcRow(m.focusedRow) {
	case rowPeople:
		people := m.household.People + delta
		if people < 1 {
			people = 1
		}
		m.household.People = people

	case rowTransport:
		next := cycle(int(m.household.TransportMode), delta, int(footprint.TransportActive)+1)
		m.household.TransportMode = footprint.TransportMode(next)

	case rowDiet:
		next := cycle(int(m.household.Diet), delta, int(footprint.DietVeg)+1)
		m.household.Diet = footprint.Diet(next)

	case rowEnergy:
		next := cycle(int(m.household.EnergySaving), delta, int(footprint.EnergyLow)+1)
		m.household.EnergySaving = footprint.EnergySaving(next)

	case rowSpending:
		next := cycle(int(m.household.Spending), delta, int(footprint.SpendingSpend)+1)
		m.household.Spending = footprint.Spending(next)

	case rowFlights:
		next := cycle(int(m.household.Flights), delta, int(footprint.FlightsMany)+1)
		m.household.Flights = footprint.Flights(next)
	}
	m.recompute()
}

// cycle steps value by delta within [0, count) with wraparound.
func cycle(value, delta, count int) int {
	return ((value+delta)%count + count) % count
}

// View renders the current view.
func (m *CalculatorModel) View() string {
	if m.state == CalculatorStateQuitting {
		return ""
	}
	return RenderCalculator(m)
}

// helpView renders the footer for whichever key set is active.
func (m *CalculatorModel) helpView() string {
	if m.editMode {
		return m.help.View(m.editKeys)
	}
	return m.help.View(m.keys)
}

// GetHousehold returns the household as currently edited.
func (m *CalculatorModel) GetHousehold() footprint.Household {
	return m.household
}

// GetBonus returns the survey bonus the calculator was seeded with.
func (m *CalculatorModel) GetBonus() survey.Bonus {
	return m.bonus
}

// GetResult returns the estimate for the current household state.
func (m *CalculatorModel) GetResult() footprint.Result {
	return m.result
}
