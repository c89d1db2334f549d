package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/greensteps/ecofoot/internal/config"
	"github.com/greensteps/ecofoot/internal/footprint"
	"github.com/greensteps/ecofoot/internal/logging"
	"github.com/greensteps/ecofoot/internal/profile"
	"github.com/greensteps/ecofoot/internal/render"
	"github.com/greensteps/ecofoot/internal/survey"
	"github.com/greensteps/ecofoot/internal/tui"
)

// SurveyParams holds the parameters for the survey command execution.
// Exported for testing.
type SurveyParams struct {
	// Answer flags (non-interactive mode)
	KnowsTrail    bool
	WalkedTrail   bool
	Reasons       []string
	Satisfactions []string

	// Estimate chains the household calculator after the survey.
	Estimate bool

	// ProfilePath seeds the chained calculator with a saved household.
	ProfilePath string

	// Common flags
	Output  string
	Locale  string
	NoChart bool
}

// answerFlagNames are the flags that switch the survey command into
// non-interactive scoring.
//
//nolint:gochecknoglobals // Static flag name list.
var answerFlagNames = []string{"knows-trail", "walked-trail", "reason", "satisfaction"}

// surveyScore is the JSON shape of a scored survey.
type surveyScore struct {
	KnowsTrail      bool                  `json:"knowsTrail"`
	HasWalkedTrail  bool                  `json:"hasWalkedTrail"`
	Reasons         []survey.Reason       `json:"reasons,omitempty"`
	Satisfaction    []survey.Satisfaction `json:"satisfaction,omitempty"`
	Bonus           int                   `json:"bonus"`
	MaxBonus        int                   `json:"maxBonus"`
	DiscountPercent float64               `json:"discountPercent"`
}

// NewSurveyCmd creates the "survey" command.
//
// Without answer flags the command runs the interactive trail survey and
// scores the answers. With --estimate the scored bonus feeds straight into
// the household calculator, so one session produces a full report.
func NewSurveyCmd() *cobra.Command {
	var params SurveyParams

	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Run the trail survey and score the engagement bonus",
		Long: `Run the riverside trail survey and score the engagement bonus.

Knowing the trail is worth 1 point and having walked it 3, for a bonus
of up to 4. Each point shaves 2% off the estimated footprint. Visit
reasons and satisfaction answers are recorded but never scored.

Examples:
  # Interactive survey
  ecofoot survey

  # Survey, then adjust the household and print the full report
  ecofoot survey --estimate --profile family.yaml

  # Score answers without the TUI
  ecofoot survey --knows-trail --walked-trail --reason exercise --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeSurvey(cmd, params, anyAnswerFlagChanged(cmd))
		},
	}

	cmd.Flags().BoolVar(&params.KnowsTrail, "knows-trail", false, "Respondent knows the riverside trail")
	cmd.Flags().BoolVar(&params.WalkedTrail, "walked-trail", false, "Respondent has walked the riverside trail")
	cmd.Flags().StringArrayVar(&params.Reasons, "reason", nil,
		"Reason for visiting (exercise, nature, scenery, relaxation, social; repeatable)")
	cmd.Flags().StringArrayVar(&params.Satisfactions, "satisfaction", nil,
		"Satisfying aspect (scenery, cleanliness, facilities, access, safety; repeatable)")
	cmd.Flags().BoolVar(&params.Estimate, "estimate", false, "Chain into the household calculator after the survey")
	cmd.Flags().StringVar(&params.ProfilePath, "profile", "", "Profile seeding the chained calculator")
	cmd.Flags().StringVar(&params.Output, "output", "", "Output format (table, json, ndjson)")
	cmd.Flags().StringVar(&params.Locale, "locale", "", "Number formatting locale (e.g. en, de)")
	cmd.Flags().BoolVar(&params.NoChart, "no-chart", false, "Suppress the category bar in table output")

	return cmd
}

// anyAnswerFlagChanged reports whether the user answered the survey with
// flags instead of the TUI.
func anyAnswerFlagChanged(cmd *cobra.Command) bool {
	for _, name := range answerFlagNames {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// BuildAnswersFromParams converts flag values into validated survey
// answers. Exported for testing.
func BuildAnswersFromParams(params SurveyParams) (survey.Answers, error) {
	a := survey.Answers{
		KnowsTrail:     params.KnowsTrail,
		HasWalkedTrail: params.WalkedTrail,
	}
	for _, name := range params.Reasons {
		r, err := survey.ParseReason(name)
		if err != nil {
			return a, err
		}
		a.Reasons = append(a.Reasons, r)
	}
	for _, name := range params.Satisfactions {
		s, err := survey.ParseSatisfaction(name)
		if err != nil {
			return a, err
		}
		a.Satisfaction = append(a.Satisfaction, s)
	}
	if err := a.Validate(); err != nil {
		return a, err
	}
	return a, nil
}

// executeSurvey scores the survey, interactively or from flags, and
// optionally chains the calculator.
func executeSurvey(cmd *cobra.Command, params SurveyParams, answersFromFlags bool) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	start := time.Now()

	var answers survey.Answers
	if answersFromFlags {
		var err error
		answers, err = BuildAnswersFromParams(params)
		if err != nil {
			return err
		}
	} else {
		if !isTerminal(os.Stdin) {
			return errors.New("interactive survey requires a terminal; answer with --knows-trail/--walked-trail instead")
		}
		model := tui.NewSurveyModel()
		program := tea.NewProgram(model)
		finalModel, err := program.Run()
		if err != nil {
			return fmt.Errorf("running survey: %w", err)
		}
		surveyModel, ok := finalModel.(*tui.SurveyModel)
		if !ok {
			return fmt.Errorf("unexpected model type: %T, expected *tui.SurveyModel", finalModel)
		}
		if !surveyModel.Completed() {
			cmd.Println("Survey canceled.")
			return nil
		}
		answers = surveyModel.GetAnswers()
	}

	bonus := survey.Score(answers)

	log.Debug().Ctx(ctx).
		Str("operation", "survey").
		Bool("knows_trail", answers.KnowsTrail).
		Bool("walked_trail", answers.HasWalkedTrail).
		Int("bonus", int(bonus)).
		Msg("survey scored")

	if err := renderSurveyScore(cmd.OutOrStdout(), outputFormat(params.Output), answers, bonus); err != nil {
		return err
	}

	if params.Estimate {
		if err := executeChainedEstimate(cmd, params, bonus); err != nil {
			return err
		}
	}

	log.Info().Ctx(ctx).
		Str("operation", "survey").
		Dur("duration_ms", time.Since(start)).
		Msg("survey complete")

	return nil
}

// executeChainedEstimate runs the calculator seeded with the scored bonus
// and the profile household (or the neutral default), then prints the
// final report.
func executeChainedEstimate(cmd *cobra.Command, params SurveyParams, bonus survey.Bonus) error {
	h := footprint.DefaultHousehold()
	name := ""
	if params.ProfilePath != "" {
		p, err := profile.Load(params.ProfilePath)
		if err != nil {
			return fmt.Errorf("loading profile: %w", err)
		}
		h = p.Household
		name = p.Name
	}

	if !isTerminal(os.Stdin) {
		return errors.New("interactive mode requires a terminal")
	}

	model := tui.NewCalculatorModel(h, bonus, newFormatter(params.Locale))
	program := tea.NewProgram(model)

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("running interactive calculator: %w", err)
	}

	calcModel, ok := finalModel.(*tui.CalculatorModel)
	if !ok {
		return fmt.Errorf("unexpected model type: %T, expected *tui.CalculatorModel", finalModel)
	}

	rpt := render.NewReport(name, calcModel.GetHousehold(), calcModel.GetBonus(), calcModel.GetResult())
	cmd.Println("\nFinal Estimate:")
	estParams := EstimateParams{Output: params.Output, Locale: params.Locale, NoChart: params.NoChart}
	return renderReport(cmd.OutOrStdout(), outputFormat(params.Output), rpt, estParams)
}

// renderSurveyScore renders the scored survey in the requested format.
func renderSurveyScore(w io.Writer, format string, answers survey.Answers, bonus survey.Bonus) error {
	discount := (1 - footprint.EngagementMultiplier(bonus)) * 100 //nolint:mnd // Fraction to percent.

	switch format {
	case config.FormatJSON, config.FormatNDJSON:
		score := surveyScore{
			KnowsTrail:      answers.KnowsTrail,
			HasWalkedTrail:  answers.HasWalkedTrail,
			Reasons:         answers.Reasons,
			Satisfaction:    answers.Satisfaction,
			Bonus:           int(bonus),
			MaxBonus:        survey.MaxBonus,
			DiscountPercent: discount,
		}
		encoder := json.NewEncoder(w)
		if format == config.FormatJSON {
			encoder.SetIndent("", "  ")
		}
		return encoder.Encode(score)
	default:
		return renderSurveyScoreTable(w, answers, bonus, discount)
	}
}

// renderSurveyScoreTable renders the scored survey as a plain table.
func renderSurveyScoreTable(w io.Writer, answers survey.Answers, bonus survey.Bonus, discount float64) error {
	fmt.Fprintln(w, "Trail Survey Score")
	fmt.Fprintln(w, "==================")
	fmt.Fprintf(w, "Knows the trail:  %s\n", yesNo(answers.KnowsTrail))
	fmt.Fprintf(w, "Walked the trail: %s\n", yesNo(answers.HasWalkedTrail))
	if len(answers.Reasons) > 0 {
		fmt.Fprintln(w, "\nVisit reasons:")
		for _, r := range answers.Reasons {
			fmt.Fprintf(w, "  - %s\n", r.Label())
		}
	}
	if len(answers.Satisfaction) > 0 {
		fmt.Fprintln(w, "\nSatisfied with:")
		for _, s := range answers.Satisfaction {
			fmt.Fprintf(w, "  - %s\n", s.Label())
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Bonus:               %d of %d\n", int(bonus), survey.MaxBonus)
	fmt.Fprintf(w, "Engagement discount: %.1f%%\n", discount)
	return nil
}

// yesNo renders a boolean answer.
func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
