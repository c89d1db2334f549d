package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greensteps/ecofoot/internal/survey"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// TestNewSurveyModel tests SurveyModel initialization.
func TestNewSurveyModel(t *testing.T) {
	model := NewSurveyModel()

	require.NotNil(t, model)
	assert.Equal(t, SurveyStateAnswering, model.state)
	assert.Equal(t, questionKnowsTrail, model.question)
	assert.Equal(t, 0, model.cursor)
	assert.False(t, model.Completed())
}

// TestSurveyModel_Update tests message handling.
func TestSurveyModel_Update(t *testing.T) {
	t.Run("handles quit key", func(t *testing.T) {
		model := NewSurveyModel()

		newModel, cmd := model.Update(keyRune('q'))

		updated := newModel.(*SurveyModel)
		assert.Equal(t, SurveyStateQuitting, updated.state)
		assert.NotNil(t, cmd)
		assert.False(t, updated.Completed())
	})

	t.Run("handles ctrl+c", func(t *testing.T) {
		model := NewSurveyModel()

		newModel, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

		updated := newModel.(*SurveyModel)
		assert.Equal(t, SurveyStateQuitting, updated.state)
		assert.NotNil(t, cmd)
	})

	t.Run("cursor stays within option bounds", func(t *testing.T) {
		model := NewSurveyModel()

		newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyUp})
		updated := newModel.(*SurveyModel)
		assert.Equal(t, 0, updated.cursor, "up at the first option is a no-op")

		for i := 0; i < 5; i++ {
			newModel, _ = updated.Update(tea.KeyMsg{Type: tea.KeyDown})
			updated = newModel.(*SurveyModel)
		}
		assert.Equal(t, 1, updated.cursor, "yes/no questions have two options")
	})

	t.Run("enter on yes records true and advances", func(t *testing.T) {
		model := NewSurveyModel()

		newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

		updated := newModel.(*SurveyModel)
		assert.True(t, updated.answers.KnowsTrail)
		assert.Equal(t, questionWalkedTrail, updated.question)
		assert.Equal(t, 0, updated.cursor, "cursor resets for the next question")
	})

	t.Run("enter on no records false", func(t *testing.T) {
		model := NewSurveyModel()

		newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})
		newModel, _ = newModel.(*SurveyModel).Update(tea.KeyMsg{Type: tea.KeyEnter})

		updated := newModel.(*SurveyModel)
		assert.False(t, updated.answers.KnowsTrail)
	})

	t.Run("space toggles multi-select options", func(t *testing.T) {
		model := NewSurveyModel()
		model.question = questionReasons
		model.syncKeys()

		newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeySpace})
		updated := newModel.(*SurveyModel)
		assert.True(t, updated.reasonChecked[0])

		newModel, _ = updated.Update(tea.KeyMsg{Type: tea.KeySpace})
		updated = newModel.(*SurveyModel)
		assert.False(t, updated.reasonChecked[0], "second space unchecks")
	})

	t.Run("space does nothing on yes/no questions", func(t *testing.T) {
		model := NewSurveyModel()

		newModel, _ := model.Update(tea.KeyMsg{Type: tea.KeySpace})

		updated := newModel.(*SurveyModel)
		assert.Equal(t, questionKnowsTrail, updated.question)
		assert.Empty(t, updated.reasonChecked)
	})
}

// TestSurveyModel_FullRun walks every question and checks the
// collected answers and the derived bonus.
func TestSurveyModel_FullRun(t *testing.T) {
	var model tea.Model = NewSurveyModel()

	// Q1: knows the trail (Yes).
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	// Q2: has walked it (Yes).
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	// Q3: check the first two reasons.
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeySpace})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeySpace})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	// Q4: no satisfaction selections.
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	final := model.(*SurveyModel)
	require.True(t, final.Completed())
	assert.NotNil(t, cmd, "finishing the last question quits the program")

	answers := final.GetAnswers()
	assert.True(t, answers.KnowsTrail)
	assert.True(t, answers.HasWalkedTrail)
	assert.Equal(t, []survey.Reason{survey.ReasonExercise, survey.ReasonNature}, answers.Reasons)
	assert.Empty(t, answers.Satisfaction)
	assert.Equal(t, survey.Bonus(4), survey.Score(answers))
}

// TestSurveyModel_View tests question rendering.
func TestSurveyModel_View(t *testing.T) {
	model := NewSurveyModel()

	view := model.View()
	assert.Contains(t, view, "Trail Survey")
	assert.Contains(t, view, "Question 1 of 4")
	assert.Contains(t, view, "Do you know the riverside trail?")
	assert.Contains(t, view, "Yes")
	assert.Contains(t, view, "No")
	assert.Contains(t, view, "navigate")
	assert.NotContains(t, view, "toggle", "toggle is hidden on yes/no questions")

	model.question = questionReasons
	model.syncKeys()
	view = model.View()
	assert.Contains(t, view, "[ ]")
	assert.Contains(t, view, "toggle")
	for _, r := range survey.Reasons() {
		assert.Contains(t, view, r.Label())
	}

	model.state = SurveyStateQuitting
	assert.Empty(t, model.View())
}
