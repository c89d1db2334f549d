package tui

import (
	"fmt"
	"strings"

	"github.com/greensteps/ecofoot/internal/survey"
)

// yesNoOptions is the fixed option order for the two trail questions.
//
//nolint:gochecknoglobals // Fixed presentation order.
var yesNoOptions = []string{"Yes", "No"}

// surveyPrompt returns the prompt text for a question.
func surveyPrompt(q surveyQuestion) string {
	switch q {
	case questionKnowsTrail:
		return "Do you know the riverside trail?"
	case questionWalkedTrail:
		return "Have you walked the riverside trail?"
	case questionReasons:
		return "Why do you visit? (select all that apply)"
	case questionSatisfaction:
		return "Which aspects are you satisfied with? (select all that apply)"
	default:
		return ""
	}
}

// RenderSurveyQuestion renders the survey screen for the model's
// current question.
func RenderSurveyQuestion(m *SurveyModel) string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("Trail Survey"))
	sb.WriteString("\n\n")

	sb.WriteString(SubtleStyle.Render(fmt.Sprintf("Question %d of %d", int(m.question)+1, int(numSurveyQuestions))))
	sb.WriteString("\n")
	sb.WriteString(HeaderStyle.Render(surveyPrompt(m.question)))
	sb.WriteString("\n\n")

	switch m.question {
	case questionKnowsTrail, questionWalkedTrail:
		for i, opt := range yesNoOptions {
			sb.WriteString(renderChoiceRow(opt, i == m.cursor, false, false))
			sb.WriteString("\n")
		}
	case questionReasons:
		for i, r := range survey.Reasons() {
			sb.WriteString(renderChoiceRow(r.Label(), i == m.cursor, true, m.reasonChecked[i]))
			sb.WriteString("\n")
		}
	case questionSatisfaction:
		for i, s := range survey.Satisfactions() {
			sb.WriteString(renderChoiceRow(s.Label(), i == m.cursor, true, m.satisfactionChecked[i]))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

// renderChoiceRow renders one option line with a cursor marker and,
// for multi-select questions, a checkbox.
func renderChoiceRow(label string, focused, checkable, checked bool) string {
	var sb strings.Builder

	if focused {
		sb.WriteString(IconArrowRight + " ")
	} else {
		sb.WriteString("  ")
	}

	if checkable {
		if checked {
			sb.WriteString("[x] ")
		} else {
			sb.WriteString("[ ] ")
		}
	}

	if focused {
		sb.WriteString(ValueStyle.Render(label))
	} else {
		sb.WriteString(LabelStyle.Render(label))
	}

	return sb.String()
}
