package footprint

import (
	"encoding/json"
	"fmt"
)

// Tier thresholds are inclusive upper bounds on the per-person annual total
// in tonnes CO2e. A per-person figure of exactly 3.0 is still TierS.
const (
	// TierThresholdS is the upper bound for an excellent footprint.
	TierThresholdS = 3.0

	// TierThresholdA is the upper bound for a good footprint.
	TierThresholdA = 5.0

	// TierThresholdB is the upper bound for an average footprint.
	TierThresholdB = 7.0

	// TierThresholdC is the upper bound before the worst tier.
	TierThresholdC = 9.0
)

// Tier is the per-person footprint classification. Order runs from TierS
// (best) to TierD (worst).
//
//nolint:recvcheck // UnmarshalJSON requires pointer receiver; String/MarshalJSON use value receivers.
type Tier int

const (
	// TierS is an excellent per-person footprint.
	TierS Tier = iota
	// TierA is a good per-person footprint.
	TierA
	// TierB is an average per-person footprint.
	TierB
	// TierC is a footprint that needs improvement.
	TierC
	// TierD is a footprint that needs significant improvement.
	TierD
)

// Tiers returns all tiers from best to worst.
func Tiers() []Tier {
	return []Tier{TierS, TierA, TierB, TierC, TierD}
}

// TierFor classifies a per-person annual total by scanning the ascending
// thresholds and taking the first band whose inclusive upper bound holds.
// TierD is the unconditional catch-all, so every input classifies.
func TierFor(perPerson float64) Tier {
	switch {
	case perPerson <= TierThresholdS:
		return TierS
	case perPerson <= TierThresholdA:
		return TierA
	case perPerson <= TierThresholdB:
		return TierB
	case perPerson <= TierThresholdC:
		return TierC
	default:
		return TierD
	}
}

// String returns the short tier code.
func (t Tier) String() string {
	switch t {
	case TierS:
		return "S"
	case TierA:
		return "A"
	case TierB:
		return "B"
	case TierC:
		return "C"
	case TierD:
		return "D"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// Label returns the long tier description, displayed separately from the code.
func (t Tier) Label() string {
	switch t {
	case TierS:
		return "excellent"
	case TierA:
		return "good"
	case TierB:
		return "average"
	case TierC:
		return "needs improvement"
	case TierD:
		return "needs significant improvement"
	default:
		return fmt.Sprintf("unknown (%d)", int(t))
	}
}

// MarshalJSON implements json.Marshaler to output Tier as its short code.
func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler to parse Tier from its short code.
func (t *Tier) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("parsing tier: %w", err)
	}
	parsed, err := ParseTier(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTier converts a short code to its Tier value.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "S":
		return TierS, nil
	case "A":
		return TierA, nil
	case "B":
		return TierB, nil
	case "C":
		return TierC, nil
	case "D":
		return TierD, nil
	default:
		return 0, fmt.Errorf("%w: unknown tier %q", ErrHouseholdValidation, s)
	}
}
