// Package survey models the trail-engagement survey that precedes the
// footprint calculator and scores it into a bounded bonus value.
//
// Only the two yes/no trail questions affect the score. The reason and
// satisfaction multi-selects are collected for display alongside the
// estimate but are excluded from the scoring contract.
package survey

import (
	"encoding/json"
	"fmt"
)

// Reason identifies why the respondent visits the trail.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type Reason int

const (
	// ReasonExercise indicates the respondent walks the trail for exercise.
	ReasonExercise Reason = iota
	// ReasonNature indicates the respondent visits for contact with nature.
	ReasonNature
	// ReasonScenery indicates the respondent visits for the views.
	ReasonScenery
	// ReasonRelaxation indicates the respondent visits to unwind.
	ReasonRelaxation
	// ReasonSocial indicates the respondent visits for company.
	ReasonSocial
)

// String returns the canonical label for a Reason.
func (r Reason) String() string {
	switch r {
	case ReasonExercise:
		return "exercise"
	case ReasonNature:
		return "nature"
	case ReasonScenery:
		return "scenery"
	case ReasonRelaxation:
		return "relaxation"
	case ReasonSocial:
		return "social"
	default:
		return fmt.Sprintf("unknown(%d)", int(r))
	}
}

// MarshalJSON implements json.Marshaler to output Reason as string.
func (r Reason) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse Reason from string.
func (r *Reason) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing reason: %w", err)
	}
	parsed, err := ParseReason(str)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseReason converts a label to its Reason value.
func ParseReason(s string) (Reason, error) {
	switch s {
	case "exercise":
		return ReasonExercise, nil
	case "nature":
		return ReasonNature, nil
	case "scenery":
		return ReasonScenery, nil
	case "relaxation":
		return ReasonRelaxation, nil
	case "social":
		return ReasonSocial, nil
	default:
		return 0, fmt.Errorf("%w: unknown reason %q", ErrSurveyValidation, s)
	}
}

// Label returns the display text for a Reason.
func (r Reason) Label() string {
	switch r {
	case ReasonExercise:
		return "Exercise"
	case ReasonNature:
		return "Being in nature"
	case ReasonScenery:
		return "The scenery"
	case ReasonRelaxation:
		return "Relaxation"
	case ReasonSocial:
		return "Time with others"
	default:
		return r.String()
	}
}

// isValidReason returns true if the reason is within the valid range.
func isValidReason(r Reason) bool {
	return r >= ReasonExercise && r <= ReasonSocial
}

// Reasons returns all reasons in presentation order.
func Reasons() []Reason {
	return []Reason{ReasonExercise, ReasonNature, ReasonScenery, ReasonRelaxation, ReasonSocial}
}

// Satisfaction identifies a trail aspect the respondent is satisfied with.
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type Satisfaction int

const (
	// SatisfactionScenery indicates satisfaction with the views.
	SatisfactionScenery Satisfaction = iota
	// SatisfactionCleanliness indicates satisfaction with trail upkeep.
	SatisfactionCleanliness
	// SatisfactionFacilities indicates satisfaction with rest areas and amenities.
	SatisfactionFacilities
	// SatisfactionAccess indicates satisfaction with how easy the trail is to reach.
	SatisfactionAccess
	// SatisfactionSafety indicates satisfaction with lighting and path condition.
	SatisfactionSafety
)

// String returns the canonical label for a Satisfaction.
func (s Satisfaction) String() string {
	switch s {
	case SatisfactionScenery:
		return "scenery"
	case SatisfactionCleanliness:
		return "cleanliness"
	case SatisfactionFacilities:
		return "facilities"
	case SatisfactionAccess:
		return "access"
	case SatisfactionSafety:
		return "safety"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// MarshalJSON implements json.Marshaler to output Satisfaction as string.
func (s Satisfaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse Satisfaction from string.
func (s *Satisfaction) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing satisfaction: %w", err)
	}
	parsed, err := ParseSatisfaction(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSatisfaction converts a label to its Satisfaction value.
func ParseSatisfaction(s string) (Satisfaction, error) {
	switch s {
	case "scenery":
		return SatisfactionScenery, nil
	case "cleanliness":
		return SatisfactionCleanliness, nil
	case "facilities":
		return SatisfactionFacilities, nil
	case "access":
		return SatisfactionAccess, nil
	case "safety":
		return SatisfactionSafety, nil
	default:
		return 0, fmt.Errorf("%w: unknown satisfaction %q", ErrSurveyValidation, s)
	}
}

// Label returns the display text for a Satisfaction.
func (s Satisfaction) Label() string {
	switch s {
	case SatisfactionScenery:
		return "Scenery"
	case SatisfactionCleanliness:
		return "Cleanliness"
	case SatisfactionFacilities:
		return "Facilities"
	case SatisfactionAccess:
		return "Ease of access"
	case SatisfactionSafety:
		return "Safety"
	default:
		return s.String()
	}
}

// isValidSatisfaction returns true if the satisfaction is within the valid range.
func isValidSatisfaction(s Satisfaction) bool {
	return s >= SatisfactionScenery && s <= SatisfactionSafety
}

// Satisfactions returns all satisfaction aspects in presentation order.
func Satisfactions() []Satisfaction {
	return []Satisfaction{
		SatisfactionScenery,
		SatisfactionCleanliness,
		SatisfactionFacilities,
		SatisfactionAccess,
		SatisfactionSafety,
	}
}

// Answers is the complete survey response snapshot.
type Answers struct {
	// KnowsTrail records whether the respondent knows the trail.
	KnowsTrail bool `json:"knowsTrail"`

	// HasWalkedTrail records whether the respondent has walked the trail.
	HasWalkedTrail bool `json:"hasWalkedTrail"`

	// Reasons lists why the respondent visits. Display-only, never scored.
	Reasons []Reason `json:"reasons,omitempty"`

	// Satisfaction lists the aspects the respondent rates well. Display-only,
	// never scored.
	Satisfaction []Satisfaction `json:"satisfaction,omitempty"`
}

// Validate checks that every multi-select entry is within its closed set.
func (a Answers) Validate() error {
	for _, r := range a.Reasons {
		if !isValidReason(r) {
			return fmt.Errorf("%w: invalid reason: %d", ErrSurveyValidation, r)
		}
	}
	for _, s := range a.Satisfaction {
		if !isValidSatisfaction(s) {
			return fmt.Errorf("%w: invalid satisfaction: %d", ErrSurveyValidation, s)
		}
	}
	return nil
}
