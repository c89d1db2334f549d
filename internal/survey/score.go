package survey

import "fmt"

// Scoring weights for the two trail questions. Only these two answers carry
// points; the multi-selects never contribute.
const (
	// KnowsTrailPoints is awarded when the respondent knows the trail.
	KnowsTrailPoints = 1

	// WalkedTrailPoints is awarded when the respondent has walked the trail.
	WalkedTrailPoints = 3

	// MaxBonus is the highest achievable bonus score.
	MaxBonus = KnowsTrailPoints + WalkedTrailPoints
)

// Bonus is the survey-engagement score in [0, MaxBonus]. The estimator turns
// it into a flat percentage discount on the household total.
type Bonus int

// Validate checks that the bonus is within [0, MaxBonus].
func (b Bonus) Validate() error {
	if b < 0 || b > MaxBonus {
		return fmt.Errorf("%w: %d (want 0..%d)", ErrBonusRange, int(b), MaxBonus)
	}
	return nil
}

// Score maps survey answers to a bonus in [0, MaxBonus].
//
// The score is exactly KnowsTrailPoints for a known trail plus
// WalkedTrailPoints for a walked trail. Reasons and satisfaction entries are
// ignored.
func Score(a Answers) Bonus {
	var b Bonus
	if a.KnowsTrail {
		b += KnowsTrailPoints
	}
	if a.HasWalkedTrail {
		b += WalkedTrailPoints
	}
	return b
}
