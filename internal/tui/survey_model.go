package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/greensteps/ecofoot/internal/survey"
)

// SurveyState represents the current state of the survey TUI.
type SurveyState int

const (
	// SurveyStateAnswering indicates the user is answering questions.
	SurveyStateAnswering SurveyState = iota
	// SurveyStateDone indicates all questions have been answered.
	SurveyStateDone
	// SurveyStateQuitting indicates the user aborted the survey.
	SurveyStateQuitting
)

// surveyQuestion identifies one question in the fixed question order.
type surveyQuestion int

const (
	questionKnowsTrail surveyQuestion = iota
	questionWalkedTrail
	questionReasons
	questionSatisfaction
	numSurveyQuestions
)

// SurveyModel is the Bubble Tea model for the trail survey. It walks
// through the four questions and collects a survey.Answers.
type SurveyModel struct {
	question surveyQuestion
	cursor   int
	answers  survey.Answers

	// Multi-select working state, keyed by option index.
	reasonChecked       map[int]bool
	satisfactionChecked map[int]bool

	keys surveyKeyMap
	help help.Model

	state  SurveyState
	width  int
	height int
}

// NewSurveyModel creates a survey model positioned at the first
// question.
func NewSurveyModel() *SurveyModel {
	m := &SurveyModel{
		question:            questionKnowsTrail,
		reasonChecked:       make(map[int]bool),
		satisfactionChecked: make(map[int]bool),
		keys:                newSurveyKeyMap(),
		help:                help.New(),
		state:               SurveyStateAnswering,
		width:               defaultWidth,
		height:              defaultHeight,
	}
	m.syncKeys()
	return m
}

// Init initializes the model.
func (m *SurveyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *SurveyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *SurveyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = SurveyStateQuitting
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.optionCount()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		m.toggleCurrent()

	case key.Matches(msg, m.keys.Next):
		return m.commitQuestion()
	}

	return m, nil
}

// syncKeys enables the toggle binding only on multi-select questions.
func (m *SurveyModel) syncKeys() {
	multi := m.question == questionReasons || m.question == questionSatisfaction
	m.keys.Toggle.SetEnabled(multi)
}

// optionCount returns the number of selectable options for the current
// question.
func (m *SurveyModel) optionCount() int {
	switch m.question {
	case questionKnowsTrail, questionWalkedTrail:
		return 2 //nolint:mnd // Yes / No.
	case questionReasons:
		return len(survey.Reasons())
	case questionSatisfaction:
		return len(survey.Satisfactions())
	default:
		return 0
	}
}

// toggleCurrent flips the checkbox under the cursor on multi-select
// questions. Yes/no questions commit on enter instead.
func (m *SurveyModel) toggleCurrent() {
	switch m.question {
	case questionReasons:
		m.reasonChecked[m.cursor] = !m.reasonChecked[m.cursor]
	case questionSatisfaction:
		m.satisfactionChecked[m.cursor] = !m.satisfactionChecked[m.cursor]
	case questionKnowsTrail, questionWalkedTrail:
	}
}

// commitQuestion records the current answer and advances to the next
// question, finishing the survey after the last one.
func (m *SurveyModel) commitQuestion() (tea.Model, tea.Cmd) {
	switch m.question {
	case questionKnowsTrail:
		m.answers.KnowsTrail = m.cursor == 0
	case questionWalkedTrail:
		m.answers.HasWalkedTrail = m.cursor == 0
	case questionReasons:
		m.answers.Reasons = nil
		for i, r := range survey.Reasons() {
			if m.reasonChecked[i] {
				m.answers.Reasons = append(m.answers.Reasons, r)
			}
		}
	case questionSatisfaction:
		m.answers.Satisfaction = nil
		for i, s := range survey.Satisfactions() {
			if m.satisfactionChecked[i] {
				m.answers.Satisfaction = append(m.answers.Satisfaction, s)
			}
		}
	}

	if m.question == numSurveyQuestions-1 {
		m.state = SurveyStateDone
		return m, tea.Quit
	}
	m.question++
	m.cursor = 0
	m.syncKeys()
	return m, nil
}

// View renders the current question.
func (m *SurveyModel) View() string {
	switch m.state {
	case SurveyStateQuitting, SurveyStateDone:
		return ""
	case SurveyStateAnswering:
	}
	return RenderSurveyQuestion(m)
}

// Completed reports whether the survey ran to the end rather than
// being aborted.
func (m *SurveyModel) Completed() bool {
	return m.state == SurveyStateDone
}

// GetAnswers returns the collected answers.
func (m *SurveyModel) GetAnswers() survey.Answers {
	return m.answers
}
