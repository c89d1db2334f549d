package render

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/greensteps/ecofoot/internal/footprint"
	"github.com/greensteps/ecofoot/internal/survey"
)

// Report bundles one estimate with the inputs that produced it and a
// unique identifier, ready for any output format.
type Report struct {
	ID          string              `json:"id"`
	GeneratedAt time.Time           `json:"generatedAt"`
	Profile     string              `json:"profile,omitempty"`
	Household   footprint.Household `json:"household"`
	Bonus       survey.Bonus        `json:"bonus"`
	Result      footprint.Result    `json:"result"`
	TierLabel   string              `json:"tierLabel"`
}

// NewReport assembles a Report for the given inputs. The ID is a fresh
// ULID so reports sort by creation time.
func NewReport(profile string, h footprint.Household, bonus survey.Bonus, result footprint.Result) Report {
	return Report{
		ID:          ulid.Make().String(),
		GeneratedAt: time.Now().UTC(),
		Profile:     profile,
		Household:   h,
		Bonus:       bonus,
		Result:      result,
		TierLabel:   result.Tier.Label(),
	}
}
