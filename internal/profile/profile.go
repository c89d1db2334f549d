// Package profile reads household profile documents, the persisted form of
// one estimator input: the household snapshot plus the survey answers.
//
// Profiles are YAML or JSON files with a schema version gate. Every
// categorical value is validated against its closed set at load time and
// rejected with the offending field path; nothing is silently defaulted.
package profile

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/greensteps/ecofoot/internal/footprint"
	"github.com/greensteps/ecofoot/internal/survey"
)

// SchemaVersion is the schema line written into new profiles.
const SchemaVersion = "1.0"

// schemaConstraint accepts any 1.x profile.
const schemaConstraint = "^1.0"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for profile loading. Comparable with errors.Is().
var (
	// ErrProfileValidation indicates a malformed or out-of-domain profile field.
	ErrProfileValidation = constError("profile validation failed")

	// ErrSchemaVersion indicates an unsupported profile schema version.
	ErrSchemaVersion = constError("unsupported profile schema version")
)

// Profile is a fully validated estimator input.
type Profile struct {
	// Name labels the profile in multi-profile output. Defaults to the file
	// base name when the document has none.
	Name string

	// Household is the validated input snapshot.
	Household footprint.Household

	// Survey holds the validated survey answers.
	Survey survey.Answers
}

// Bonus scores the profile's survey answers.
func (p *Profile) Bonus() survey.Bonus {
	return survey.Score(p.Survey)
}

// Document is the raw on-disk shape of a profile. Categorical fields stay
// strings here; ToProfile performs the closed-set parsing.
type Document struct {
	Version   string       `json:"version"`
	Name      string       `json:"name"`
	Household HouseholdDoc `json:"household"`
	Survey    SurveyDoc    `json:"survey"`
}

// HouseholdDoc mirrors footprint.Household with string-typed selections.
type HouseholdDoc struct {
	People        int      `json:"people"`
	TransportMode string   `json:"transportMode"`
	Diet          string   `json:"diet"`
	EnergySaving  string   `json:"energySaving"`
	Spending      string   `json:"lifestyleSpending"`
	Flights       string   `json:"annualFlights"`
	Practices     []string `json:"practices"`
	WalkedKmToday float64  `json:"walkedKmToday"`
}

// SurveyDoc mirrors survey.Answers with string-typed multi-selects.
type SurveyDoc struct {
	KnowsTrail     bool     `json:"knowsTrail"`
	HasWalkedTrail bool     `json:"hasWalkedTrail"`
	Reasons        []string `json:"reasons"`
	Satisfaction   []string `json:"satisfaction"`
}

// ToProfile validates the document and converts it to a Profile. The error
// message names the offending field path.
func (d Document) ToProfile() (*Profile, error) {
	if err := checkSchemaVersion(d.Version); err != nil {
		return nil, err
	}

	h := footprint.Household{
		People:        d.Household.People,
		WalkedKmToday: d.Household.WalkedKmToday,
	}

	var err error
	if h.TransportMode, err = footprint.ParseTransportMode(d.Household.TransportMode); err != nil {
		return nil, fmt.Errorf("household.transportMode: %w", err)
	}
	if h.Diet, err = footprint.ParseDiet(d.Household.Diet); err != nil {
		return nil, fmt.Errorf("household.diet: %w", err)
	}
	if h.EnergySaving, err = footprint.ParseEnergySaving(d.Household.EnergySaving); err != nil {
		return nil, fmt.Errorf("household.energySaving: %w", err)
	}
	if h.Spending, err = footprint.ParseSpending(d.Household.Spending); err != nil {
		return nil, fmt.Errorf("household.lifestyleSpending: %w", err)
	}
	if h.Flights, err = footprint.ParseFlights(d.Household.Flights); err != nil {
		return nil, fmt.Errorf("household.annualFlights: %w", err)
	}
	for _, raw := range d.Household.Practices {
		p, perr := footprint.ParsePractice(raw)
		if perr != nil {
			return nil, fmt.Errorf("household.practices: %w", perr)
		}
		h.Practices = h.Practices.With(p)
	}
	if err = h.Validate(); err != nil {
		return nil, fmt.Errorf("household: %w", err)
	}

	answers := survey.Answers{
		KnowsTrail:     d.Survey.KnowsTrail,
		HasWalkedTrail: d.Survey.HasWalkedTrail,
	}
	for _, raw := range d.Survey.Reasons {
		r, rerr := survey.ParseReason(raw)
		if rerr != nil {
			return nil, fmt.Errorf("survey.reasons: %w", rerr)
		}
		answers.Reasons = append(answers.Reasons, r)
	}
	for _, raw := range d.Survey.Satisfaction {
		s, serr := survey.ParseSatisfaction(raw)
		if serr != nil {
			return nil, fmt.Errorf("survey.satisfaction: %w", serr)
		}
		answers.Satisfaction = append(answers.Satisfaction, s)
	}

	return &Profile{
		Name:      d.Name,
		Household: h,
		Survey:    answers,
	}, nil
}

// checkSchemaVersion gates the document on the supported schema line.
func checkSchemaVersion(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: version field is required (current schema is %q)", ErrSchemaVersion, SchemaVersion)
	}

	v, err := semver.NewVersion(raw)
	if err != nil {
		return fmt.Errorf("%w: cannot parse version %q: %v", ErrSchemaVersion, raw, err)
	}

	constraint, err := semver.NewConstraint(schemaConstraint)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrSchemaVersion, raw, schemaConstraint)
	}
	return nil
}

// FromHousehold builds a Document from validated inputs, for writing
// profiles back out.
func FromHousehold(name string, h footprint.Household, a survey.Answers) Document {
	doc := Document{
		Version: SchemaVersion,
		Name:    name,
		Household: HouseholdDoc{
			People:        h.People,
			TransportMode: h.TransportMode.String(),
			Diet:          h.Diet.String(),
			EnergySaving:  h.EnergySaving.String(),
			Spending:      h.Spending.String(),
			Flights:       h.Flights.String(),
			WalkedKmToday: h.WalkedKmToday,
		},
		Survey: SurveyDoc{
			KnowsTrail:     a.KnowsTrail,
			HasWalkedTrail: a.HasWalkedTrail,
		},
	}
	for _, p := range h.Practices.Practices() {
		doc.Household.Practices = append(doc.Household.Practices, p.String())
	}
	for _, r := range a.Reasons {
		doc.Survey.Reasons = append(doc.Survey.Reasons, r.String())
	}
	for _, s := range a.Satisfaction {
		doc.Survey.Satisfaction = append(doc.Survey.Satisfaction, s.String())
	}
	return doc
}
